package laws

import (
	"github.com/KasperOmsK/monadfn"
)

// ComonadLeftIdentity checks extend extract == id.
func ComonadLeftIdentity[A, WA any](
	extend monadfn.ExtendFunc[A, WA, WA],
	extract monadfn.ExtractFunc[A, WA],
	eq monadfn.EqualFunc[WA],
	w WA) bool {

	return eq(extend(w, extract), w)
}

// ComonadRightIdentity checks extract . extend f == f.
func ComonadRightIdentity[B, WA, WB any](
	extend monadfn.ExtendFunc[B, WA, WB],
	extract monadfn.ExtractFunc[B, WB],
	eq monadfn.EqualFunc[B],
	w WA, f func(WA) B) bool {

	return eq(extract(extend(w, f)), f(w))
}

// ComonadAssociativity checks extend g . extend f == extend (g . extend f).
func ComonadAssociativity[B, C, WA, WB, WC any](
	extendF monadfn.ExtendFunc[B, WA, WB],
	extendG monadfn.ExtendFunc[C, WB, WC],
	extendGF monadfn.ExtendFunc[C, WA, WC],
	eq monadfn.EqualFunc[WC],
	w WA, f func(WA) B, g func(WB) C) bool {

	left := extendG(extendF(w, f), g)
	right := extendGF(w, monadfn.ComposeCoK(extendF, f, g))
	return eq(left, right)
}

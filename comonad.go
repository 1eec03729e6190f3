package monadfn

// Duplicate derives the comonadic duplicate from Extend:
// Duplicate(extend, w) == extend(w, Id).
func Duplicate[WA, WWA any](extend ExtendFunc[WA, WA, WWA], wa WA) WWA {
	return extend(wa, Id[WA])
}

// ComposeCoK is left-to-right co-Kleisli composition (=>=):
//
//	ComposeCoK(extend, f, g)(w) == g(extend(w, f))
func ComposeCoK[B, C, WA, WB any](extend ExtendFunc[B, WA, WB], f func(WA) B, g func(WB) C) func(WA) C {
	return func(wa WA) C {
		return g(extend(wa, f))
	}
}

// Package writer implements a computation that produces a value together
// with an append-only log.
//
// Writer makes effect order observable: every combinator appends the logs of
// its operands in evaluation order. It is the reference instance for the
// ordering of Then and Skip in package monadfn: both keep the effects of
// both operands, left operand first.
package writer

import (
	"fmt"
	"slices"

	"github.com/KasperOmsK/monadfn"
)

// Writer is a value of type A paired with the log of entries of type W
// written while computing it.
type Writer[W, A any] struct {
	value A
	log   []W
}

// Pure produces a with an empty log.
func Pure[W, A any](a A) Writer[W, A] {
	return Writer[W, A]{value: a}
}

// Tell writes entries to the log and produces U.
func Tell[W any](entries ...W) Writer[W, monadfn.Unit] {
	return Writer[W, monadfn.Unit]{value: monadfn.U, log: slices.Clone(entries)}
}

// New builds a Writer from a value and the log that produced it.
func New[W, A any](a A, log ...W) Writer[W, A] {
	return Writer[W, A]{value: a, log: slices.Clone(log)}
}

// Run returns the value and a copy of the log.
func Run[W, A any](w Writer[W, A]) (A, []W) {
	return w.value, slices.Clone(w.log)
}

func (w Writer[W, A]) String() string {
	return fmt.Sprintf("Writer(%v, %v)", w.value, w.log)
}

// Equal compares values and logs. An empty log equals a nil one.
func Equal[W, A comparable](x, y Writer[W, A]) bool {
	return x.value == y.value && slices.Equal(x.log, y.log)
}

func Map[W, A, B any](w Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{value: f(w.value), log: w.log}
}

// Apply runs wf, then wa; the log of wf comes first.
func Apply[W, A, B any](wf Writer[W, func(A) B], wa Writer[W, A]) Writer[W, B] {
	return Writer[W, B]{value: wf.value(wa.value), log: concat(wf.log, wa.log)}
}

func Bind[W, A, B any](w Writer[W, A], k func(A) Writer[W, B]) Writer[W, B] {
	next := k(w.value)
	return Writer[W, B]{value: next.value, log: concat(w.log, next.log)}
}

func Join[W, A any](ww Writer[W, Writer[W, A]]) Writer[W, A] {
	return monadfn.Join(Bind[W, Writer[W, A], A], ww)
}

// Listen exposes the log written by w as part of its value.
func Listen[W, A any](w Writer[W, A]) Writer[W, monadfn.Pair[A, []W]] {
	return Writer[W, monadfn.Pair[A, []W]]{
		value: monadfn.MakePair(w.value, slices.Clone(w.log)),
		log:   w.log,
	}
}

// Then keeps y's value; the log is x's followed by y's.
func Then[W, A, B any](x Writer[W, A], y Writer[W, B]) Writer[W, B] {
	return monadfn.Then(Map[W, A, func(B) B], Apply[W, B, B], x, y)
}

// Skip keeps x's value; the log is still x's followed by y's.
func Skip[W, A, B any](x Writer[W, A], y Writer[W, B]) Writer[W, A] {
	return monadfn.Skip(Map[W, A, func(B) A], Apply[W, B, A], x, y)
}

func LiftA2[W, A, B, C any](f func(A, B) C) func(Writer[W, A], Writer[W, B]) Writer[W, C] {
	return monadfn.LiftA2(Map[W, A, func(B) C], Apply[W, B, C], f)
}

func ComposeK[W, A, B, C any](f func(A) Writer[W, B], g func(B) Writer[W, C]) func(A) Writer[W, C] {
	return monadfn.ComposeK(Bind[W, B, C], f, g)
}

// concat never aliases either input, so Writers sharing a prefix stay
// independent.
func concat[W any](a, b []W) []W {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]W, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

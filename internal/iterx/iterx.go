package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Repeat yields v forever. Callers must bound it, e.g. with Take.
func Repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(v) {
				return
			}
		}
	}
}

func Take[T any](in iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for item := range in {
			if !yield(item) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

func Concat[T any](ins ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, in := range ins {
			for item := range in {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Collect drains in. It never returns for an infinite sequence.
func Collect[T any](in iter.Seq[T]) []T {
	out := make([]T, 0)
	for item := range in {
		out = append(out, item)
	}
	return out
}

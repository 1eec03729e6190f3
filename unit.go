package monadfn

// Unit is the type with exactly one value. It stands in for "no meaningful
// result" wherever a type parameter needs filling, e.g. Option[Unit] as a
// success flag or Writer[string, Unit] for a computation that only logs.
//
// Any two Unit values are equal, both with == and reflect.DeepEqual.
type Unit struct{}

// U is the Unit value.
var U = Unit{}

func (Unit) String() string {
	return "()"
}

package mealy

import "fmt"

// Output is the optional output symbol produced by a firing transition.
type Output[O any] struct {
	Value   O
	Present bool
}

// Emit returns a present output carrying v.
func Emit[O any](v O) Output[O] {
	return Output[O]{Value: v, Present: true}
}

// NoOutput returns an empty output.
func NoOutput[O any]() Output[O] {
	return Output[O]{}
}

// Get returns the value and whether it is present.
func (o Output[O]) Get() (O, bool) {
	return o.Value, o.Present
}

func (o Output[O]) String() string {
	if !o.Present {
		return "-"
	}
	return fmt.Sprint(o.Value)
}

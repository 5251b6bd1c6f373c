package mealy

// Condition decides whether a transition is eligible for the current payload and input.
// It must be pure.
type Condition[I, P any] func(payload P, input I) bool

// Compute produces the next payload and the output of a selected transition.
// It must be pure and must not mutate payload in place.
type Compute[I, P, O any] func(payload P, input I) (P, Output[O])

// Transition is one guarded edge of the machine graph.
type Transition[I, P, O any] struct {
	Source    string
	Target    string
	Condition Condition[I, P]
	Compute   Compute[I, P, O]
}

// Equals matches inputs equal to want, regardless of payload.
func Equals[P any, I comparable](want I) Condition[I, P] {
	return func(_ P, input I) bool {
		return input == want
	}
}

// OneOf matches any of the given inputs, regardless of payload.
func OneOf[P any, I comparable](want ...I) Condition[I, P] {
	set := make(map[I]struct{}, len(want))
	for _, w := range want {
		set[w] = struct{}{}
	}
	return func(_ P, input I) bool {
		_, ok := set[input]
		return ok
	}
}

// Always matches every input.
func Always[I, P any]() Condition[I, P] {
	return func(P, I) bool { return true }
}

// Constant keeps the payload unchanged and always produces out.
func Constant[I, P, O any](out Output[O]) Compute[I, P, O] {
	return func(payload P, _ I) (P, Output[O]) {
		return payload, out
	}
}

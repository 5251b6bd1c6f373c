package mealy

// Observer is notified synchronously for every firing transition, before the occupied state
// is replaced. out may be empty.
type Observer[O any] interface {
	OnTransition(from, to string, out Output[O])
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[O any] func(from, to string, out Output[O])

// OnTransition calls f.
func (f ObserverFunc[O]) OnTransition(from, to string, out Output[O]) {
	f(from, to, out)
}

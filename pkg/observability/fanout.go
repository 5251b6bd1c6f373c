package observability

import "github.com/aretw0/mealy"

type fanout[O any] []mealy.Observer[O]

// Fanout returns an observer forwarding each notification to every non-nil observer, in order.
func Fanout[O any](observers ...mealy.Observer[O]) mealy.Observer[O] {
	var f fanout[O]
	for _, o := range observers {
		if o != nil {
			f = append(f, o)
		}
	}
	return f
}

func (f fanout[O]) OnTransition(from, to string, out mealy.Output[O]) {
	for _, o := range f {
		o.OnTransition(from, to, out)
	}
}

package observability

import (
	"time"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/pkg/domain"
)

// Record is one fired transition.
type Record[O any] struct {
	From   string
	To     string
	Output mealy.Output[O]
}

// Recorder keeps every notification it receives, in order.
type Recorder[O any] struct {
	records []Record[O]
}

// NewRecorder returns an empty recorder.
func NewRecorder[O any]() *Recorder[O] {
	return &Recorder[O]{}
}

// OnTransition implements mealy.Observer.
func (r *Recorder[O]) OnTransition(from, to string, out mealy.Output[O]) {
	r.records = append(r.records, Record[O]{From: from, To: to, Output: out})
}

// Records returns a copy of the recorded transitions.
func (r *Recorder[O]) Records() []Record[O] {
	out := make([]Record[O], len(r.records))
	copy(out, r.records)
	return out
}

// Outputs returns only the present outputs, in order.
func (r *Recorder[O]) Outputs() []O {
	var out []O
	for _, rec := range r.records {
		if v, ok := rec.Output.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder[O]) Reset() {
	r.records = nil
}

// Event flattens a record for JSON streaming.
func (rec Record[O]) Event(machine string, input any) domain.TransitionEvent {
	ev := domain.TransitionEvent{
		Timestamp: time.Now().UTC(),
		Machine:   machine,
		From:      rec.From,
		To:        rec.To,
		Input:     input,
		HasOutput: rec.Output.Present,
	}
	if rec.Output.Present {
		ev.Output = rec.Output.Value
	}
	return ev
}

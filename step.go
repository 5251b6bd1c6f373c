package mealy

import (
	"github.com/aretw0/mealy/pkg/domain"
)

// Step consumes one input.
//
// All transitions leaving the occupied state are evaluated in registration order. No match
// leaves the machine untouched. One match computes the next payload and output, notifies the
// observer and then commits the new occupied state. More than one match returns a
// *domain.DeterminismError and changes nothing.
func (m *Machine[I, P, O]) Step(input I) error {
	if !m.running {
		return m.configError("step", "", "", domain.ErrNotStarted)
	}

	from := m.current
	candidates := m.transitions[from.ID]
	if len(candidates) == 0 {
		m.logger.Debug("no transitions", "state", from.ID)
		return nil
	}

	matched := -1
	var collisions []domain.TransitionRef
	for i, t := range candidates {
		if !t.Condition(from.Payload, input) {
			continue
		}
		if matched < 0 {
			matched = i
			continue
		}
		if collisions == nil {
			collisions = append(collisions, ref(matched, candidates[matched]))
		}
		collisions = append(collisions, ref(i, t))
	}

	if collisions != nil {
		err := &domain.DeterminismError{
			Machine: m.name,
			StateID: from.ID,
			Input:   input,
			Matches: collisions,
		}
		m.logger.Error("nondeterministic transitions", "state", from.ID, "error", err)
		return err
	}

	if matched < 0 {
		m.logger.Debug("no transition matched", "state", from.ID)
		return nil
	}

	// RegisterTransition only accepts registered targets, so the commit below always lands on a
	// registered state.
	t := candidates[matched]
	payload, out := t.Compute(from.Payload, input)

	if m.observer != nil {
		m.observer.OnTransition(from.ID, t.Target, out)
	}

	m.current = Occupied[P]{ID: t.Target, Payload: payload}
	m.logger.Debug("transition fired", "from", from.ID, "to", t.Target, "output", out.String())
	return nil
}

// Feed steps every input in order and stops at the first error.
func (m *Machine[I, P, O]) Feed(inputs ...I) error {
	for _, in := range inputs {
		if err := m.Step(in); err != nil {
			return err
		}
	}
	return nil
}

func ref[I, P, O any](i int, t Transition[I, P, O]) domain.TransitionRef {
	return domain.TransitionRef{Index: i, Source: t.Source, Target: t.Target}
}

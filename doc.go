/*
Package mealy is a generic Mealy-machine engine designed to be embedded in protocol decoders,
dispensing controllers, signal classifiers and similar components.

A Machine owns a set of named states, an ordered list of guarded transitions per source state
and a single occupied state (id plus payload). Each call to Step consumes one input: every
transition leaving the occupied state is evaluated, at most one may match, and the matching
transition computes the next payload and an optional output. The observer is notified before
the new state is committed.

# Concept

The engine is parameterized over three independent types: the input alphabet I, the payload P
carried by the occupied state and the output alphabet O. Guards and computations are plain Go
functions supplied at registration time, so the same engine drives coin slots, bit streams or
any other alphabet.

# Key Properties

  - Deterministic: more than one matching transition is reported as a *domain.DeterminismError.
  - Strict: transitions to unregistered states are rejected at registration time.
  - Wholesale updates: a payload-only change counts as a transition and is notified.
  - Synchronous: no goroutines, no locks, no blocking. Callers serialize access.

# Usage

	m := mealy.New[string, struct{}, string](mealy.WithName("door"))
	m.MustRegisterState("closed")
	m.MustRegisterState("open")
	m.MustRegisterTransition("closed", "open",
		mealy.Equals[struct{}]("push"),
		mealy.Constant[string, struct{}](mealy.Emit("creak")))
	m.SetObserver(mealy.ObserverFunc[string](func(from, to string, out mealy.Output[string]) {
		log.Printf("%s -> %s %v", from, to, out)
	}))

	if err := m.Start("closed", struct{}{}); err != nil {
		log.Fatal(err)
	}
	if err := m.Step("push"); err != nil {
		log.Fatal(err)
	}
*/
package mealy

package domain

// StateInfo is the introspection view of a registered state.
type StateInfo struct {
	// ID is the registered state identifier.
	ID string `json:"id" yaml:"id"`

	// Targets lists the target ids of the outgoing transitions, in registration order.
	// Duplicates are kept: two guarded transitions may lead to the same state.
	Targets []string `json:"targets" yaml:"targets"`

	// Current is true when the machine is running and occupies this state.
	Current bool `json:"current,omitempty" yaml:"current,omitempty"`
}

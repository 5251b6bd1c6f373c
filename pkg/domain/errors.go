package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Precondition sentinels. They are always returned wrapped in a *ConfigError.
var (
	// ErrAlreadyStarted is returned when the structure is mutated after Start.
	ErrAlreadyStarted = errors.New("machine already started")

	// ErrNotStarted is returned when Step is called before Start.
	ErrNotStarted = errors.New("machine not started")

	// ErrDuplicateState is returned when a state id is registered twice.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrUnknownState is returned when a source or initial state id was never registered.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownTarget is returned when a transition points to an unregistered state id.
	ErrUnknownTarget = errors.New("unknown target state")

	// ErrEmptyStateID is returned when a state is registered with an empty id.
	ErrEmptyStateID = errors.New("empty state id")

	// ErrNilFunc is returned when a transition is registered without a condition or compute.
	ErrNilFunc = errors.New("nil condition or compute")
)

// ErrNondeterministic matches every *DeterminismError through errors.Is.
var ErrNondeterministic = errors.New("nondeterministic transitions")

// ConfigError reports a precondition violation. It is a programming error: callers are
// expected to fix the machine definition, not to retry.
type ConfigError struct {
	Op       string // "register state", "register transition", "start" or "step"
	Machine  string
	StateID  string
	TargetID string
	Err      error
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	if e.Machine != "" {
		fmt.Fprintf(&sb, "machine %q: ", e.Machine)
	}
	sb.WriteString(e.Op)
	if e.StateID != "" {
		fmt.Fprintf(&sb, " %q", e.StateID)
	}
	if e.TargetID != "" {
		fmt.Fprintf(&sb, " -> %q", e.TargetID)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DeterminismError reports that more than one transition matched the same input.
type DeterminismError struct {
	Machine string
	StateID string
	Input   any
	Matches []TransitionRef
}

func (e *DeterminismError) Error() string {
	refs := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		refs[i] = m.String()
	}
	prefix := ""
	if e.Machine != "" {
		prefix = fmt.Sprintf("machine %q: ", e.Machine)
	}
	return fmt.Sprintf("%s%d transitions from %q match input %v: %s",
		prefix, len(e.Matches), e.StateID, e.Input, strings.Join(refs, ", "))
}

// Is makes errors.Is(err, ErrNondeterministic) true for any DeterminismError.
func (e *DeterminismError) Is(target error) bool {
	return target == ErrNondeterministic
}

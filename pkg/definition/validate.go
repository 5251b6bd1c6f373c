package definition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilDefinition is returned when a nil *Definition is validated or compiled.
var ErrNilDefinition = errors.New("definition is nil")

// Validation issue codes.
const (
	CodeMissingName      = "MISSING_NAME"
	CodeMissingInitial   = "MISSING_INITIAL"
	CodeInitialNotFound  = "INITIAL_NOT_FOUND"
	CodeNoStates         = "NO_STATES"
	CodeEmptyStateID     = "EMPTY_STATE_ID"
	CodeDuplicateState   = "DUPLICATE_STATE"
	CodeInvalidTarget    = "INVALID_TARGET"
	CodeMissingGuard     = "MISSING_GUARD"
	CodeOverlappingGuard = "OVERLAPPING_GUARD"
)

// Issue is one problem found in a definition.
type Issue struct {
	Code    string
	Message string
	Path    string // e.g. "states[1].transitions[0]"
}

func (i Issue) String() string {
	if i.Path != "" {
		return fmt.Sprintf("[%s] %s (at %s)", i.Code, i.Message, i.Path)
	}
	return fmt.Sprintf("[%s] %s", i.Code, i.Message)
}

// ValidationError aggregates every issue of a definition.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, issue)
	}
	return b.String()
}

func (e *ValidationError) add(code, path, format string, args ...any) {
	e.Issues = append(e.Issues, Issue{Code: code, Message: fmt.Sprintf(format, args...), Path: path})
}

// Validate checks the definition for structural problems and for guards that can be proven to
// overlap: the same literal twice in one state, or an `any` transition next to another one.
// Overlaps that only show up at run time are still caught by the engine.
func (d *Definition) Validate() error {
	if d == nil {
		return ErrNilDefinition
	}
	errs := &ValidationError{}

	if d.Name == "" {
		errs.add(CodeMissingName, "name", "name is required")
	}
	if len(d.States) == 0 {
		errs.add(CodeNoStates, "states", "at least one state is required")
	}

	ids := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		path := fmt.Sprintf("states[%d]", i)
		switch {
		case s.ID == "":
			errs.add(CodeEmptyStateID, path, "state id is required")
		case ids[s.ID]:
			errs.add(CodeDuplicateState, path, "duplicate state %q", s.ID)
		}
		ids[s.ID] = true
	}

	if d.Initial == "" {
		errs.add(CodeMissingInitial, "initial", "initial state is required")
	} else if !ids[d.Initial] {
		errs.add(CodeInitialNotFound, "initial", "initial state %q is not declared", d.Initial)
	}

	for i, s := range d.States {
		seen := make(map[string]int)
		for j, t := range s.Transitions {
			path := fmt.Sprintf("states[%d].transitions[%d]", i, j)
			if !ids[t.To] {
				errs.add(CodeInvalidTarget, path, "target %q is not declared", t.To)
			}
			if !t.Any && len(t.On) == 0 {
				errs.add(CodeMissingGuard, path, "transition needs `on` or `any: true`")
			}
			if t.Any && len(s.Transitions) > 1 {
				errs.add(CodeOverlappingGuard, path, "`any` overlaps the other transitions of %q", s.ID)
			}
			for _, lit := range t.On {
				if prev, ok := seen[lit]; ok && prev != j {
					errs.add(CodeOverlappingGuard, path, "input %q already handled by transitions[%d] of %q", lit, prev, s.ID)
					continue
				}
				seen[lit] = j
			}
		}
	}

	if len(errs.Issues) > 0 {
		return errs
	}
	return nil
}

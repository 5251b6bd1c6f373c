package domain

import "fmt"

// TransitionRef identifies one registered transition.
type TransitionRef struct {
	// Index is the position of the transition in its source's outgoing list.
	Index  int    `json:"index"`
	Source string `json:"source"`
	Target string `json:"target"`
}

func (r TransitionRef) String() string {
	return fmt.Sprintf("#%d %s -> %s", r.Index, r.Source, r.Target)
}

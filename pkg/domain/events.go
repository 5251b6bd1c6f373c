package domain

import "time"

// TransitionEvent is a fired transition flattened for logging and JSON streaming.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id,omitempty"`
	Machine   string    `json:"machine,omitempty"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Input     any       `json:"input,omitempty"`
	Output    any       `json:"output,omitempty"`
	HasOutput bool      `json:"has_output"`
}

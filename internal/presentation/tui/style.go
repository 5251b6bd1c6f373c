package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler colors CLI output according to the capabilities of the destination.
// Writers that are not terminals get plain text.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the color profile of w.
func NewStyler(w io.Writer) *Styler {
	return &Styler{out: termenv.NewOutput(w)}
}

// Current styles the occupied state.
func (s *Styler) Current(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#fbc02d")).Bold().String()
}

// Output styles an emitted output symbol.
func (s *Styler) Output(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#4ade80")).String()
}

// Muted styles secondary information.
func (s *Styler) Muted(text string) string {
	return s.out.String(text).Faint().String()
}

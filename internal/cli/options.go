package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/mealy/internal/logging"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Path    string   // Definition file
	Inputs  []string // Inputs from the command line; stdin is read when empty
	Initial string   // Overrides the definition's initial state
	JSON    bool     // NDJSON transition events instead of text; metrics and graph go to Err
	Metrics bool     // Print transition counters at the end
	Graph   bool     // Print a Mermaid graph of the visited states at the end

	// Interactive shows a prompt before each stdin line.
	Interactive bool

	Log LogOptions
	IO  IO
}

// LogOptions configures the diagnostic logger.
type LogOptions struct {
	Level string
	Debug bool
}

// IO groups the streams a command uses.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Logger builds the diagnostic logger on stderr. --debug wins over --log-level.
func (o LogOptions) Logger(w io.Writer) (*slog.Logger, error) {
	if o.Debug {
		return logging.New(w, slog.LevelDebug), nil
	}
	level, err := logging.ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level), nil
}

package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/mealy"
)

// Logger logs every fired transition at the given level.
type Logger[O any] struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogger returns an observer writing to logger.
func NewLogger[O any](logger *slog.Logger, level slog.Level) *Logger[O] {
	return &Logger[O]{logger: logger, level: level}
}

// OnTransition implements mealy.Observer.
func (l *Logger[O]) OnTransition(from, to string, out mealy.Output[O]) {
	attrs := []any{"from", from, "to", to}
	if v, ok := out.Get(); ok {
		attrs = append(attrs, "output", v)
	}
	l.logger.Log(context.Background(), l.level, "transition", attrs...)
}

package mealy

import (
	"log/slog"

	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/pkg/domain"
)

// Occupied is the state the machine currently occupies.
type Occupied[P any] struct {
	ID      string
	Payload P
}

// Machine is a Mealy machine over inputs I, payloads P and outputs O.
// It is not safe for concurrent use.
type Machine[I, P, O any] struct {
	name        string
	logger      *slog.Logger
	states      []string
	registered  map[string]struct{}
	transitions map[string][]Transition[I, P, O]
	observer    Observer[O]

	running bool
	current Occupied[P]
}

// Option configures a Machine.
type Option func(*settings)

type settings struct {
	name   string
	logger *slog.Logger
}

// WithName labels the machine in logs, errors and metrics.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets a structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New creates an empty, unstarted machine.
func New[I, P, O any](opts ...Option) *Machine[I, P, O] {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	// Never keep a nil logger around.
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.name != "" {
		s.logger = s.logger.With("machine", s.name)
	}

	return &Machine[I, P, O]{
		name:        s.name,
		logger:      s.logger,
		registered:  make(map[string]struct{}),
		transitions: make(map[string][]Transition[I, P, O]),
	}
}

// Name returns the label given with WithName.
func (m *Machine[I, P, O]) Name() string {
	return m.name
}

// SetObserver replaces the observer. A nil observer detaches notifications.
func (m *Machine[I, P, O]) SetObserver(o Observer[O]) {
	m.observer = o
}

// RegisterState adds a state id. It fails after Start and for duplicate or empty ids.
func (m *Machine[I, P, O]) RegisterState(id string) error {
	if m.running {
		return m.configError("register state", id, "", domain.ErrAlreadyStarted)
	}
	if id == "" {
		return m.configError("register state", id, "", domain.ErrEmptyStateID)
	}
	if m.hasState(id) {
		return m.configError("register state", id, "", domain.ErrDuplicateState)
	}

	m.registered[id] = struct{}{}
	m.states = append(m.states, id)
	m.transitions[id] = nil
	return nil
}

// RegisterTransition appends a transition to the outgoing list of source.
// Both source and target must already be registered.
func (m *Machine[I, P, O]) RegisterTransition(source, target string, cond Condition[I, P], compute Compute[I, P, O]) error {
	const op = "register transition"
	if m.running {
		return m.configError(op, source, target, domain.ErrAlreadyStarted)
	}
	if !m.hasState(source) {
		return m.configError(op, source, target, domain.ErrUnknownState)
	}
	if !m.hasState(target) {
		return m.configError(op, source, target, domain.ErrUnknownTarget)
	}
	if cond == nil || compute == nil {
		return m.configError(op, source, target, domain.ErrNilFunc)
	}

	m.transitions[source] = append(m.transitions[source], Transition[I, P, O]{
		Source:    source,
		Target:    target,
		Condition: cond,
		Compute:   compute,
	})
	return nil
}

// MustRegisterState is like RegisterState but panics on error.
func (m *Machine[I, P, O]) MustRegisterState(id string) {
	if err := m.RegisterState(id); err != nil {
		panic(err)
	}
}

// MustRegisterTransition is like RegisterTransition but panics on error.
func (m *Machine[I, P, O]) MustRegisterTransition(source, target string, cond Condition[I, P], compute Compute[I, P, O]) {
	if err := m.RegisterTransition(source, target, cond, compute); err != nil {
		panic(err)
	}
}

// Start occupies initial with payload. Any previous occupied state is discarded, so calling
// Start on a running machine is a fresh restart.
func (m *Machine[I, P, O]) Start(initial string, payload P) error {
	if !m.hasState(initial) {
		return m.configError("start", initial, "", domain.ErrUnknownState)
	}

	m.current = Occupied[P]{ID: initial, Payload: payload}
	m.running = true
	m.logger.Debug("machine started", "state", initial)
	return nil
}

// IsRunning reports whether Start has been called.
func (m *Machine[I, P, O]) IsRunning() bool {
	return m.running
}

// Current returns the occupied state. ok is false before Start.
func (m *Machine[I, P, O]) Current() (Occupied[P], bool) {
	return m.current, m.running
}

// CurrentStateID returns the occupied state id. ok is false before Start.
func (m *Machine[I, P, O]) CurrentStateID() (string, bool) {
	return m.current.ID, m.running
}

// CurrentPayload returns the payload of the occupied state. ok is false before Start.
func (m *Machine[I, P, O]) CurrentPayload() (P, bool) {
	return m.current.Payload, m.running
}

// States returns the registered ids in registration order.
func (m *Machine[I, P, O]) States() []string {
	out := make([]string, len(m.states))
	copy(out, m.states)
	return out
}

func (m *Machine[I, P, O]) hasState(id string) bool {
	_, ok := m.registered[id]
	return ok
}

func (m *Machine[I, P, O]) configError(op, state, target string, err error) error {
	return &domain.ConfigError{
		Op:       op,
		Machine:  m.name,
		StateID:  state,
		TargetID: target,
		Err:      err,
	}
}

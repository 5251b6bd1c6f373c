package dsl

import (
	"fmt"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/pkg/definition"
)

// Builder manages the definition construction.
type Builder struct {
	name    string
	initial string
	order   []string
	states  map[string]*StateBuilder
}

// New creates a new definition builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[string]*StateBuilder),
	}
}

// Initial sets the state the machine starts in.
// If unset, the first added state is used.
func (b *Builder) Initial(id string) *Builder {
	b.initial = id
	return b
}

// Add creates a new state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{state: definition.StateDef{ID: id}}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build assembles and validates the definition.
func (b *Builder) Build() (*definition.Definition, error) {
	def := &definition.Definition{
		Name:    b.name,
		Initial: b.initial,
	}
	if def.Initial == "" && len(b.order) > 0 {
		def.Initial = b.order[0]
	}

	for _, id := range b.order {
		def.States = append(def.States, b.states[id].state)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build definition: %w", err)
	}
	return def, nil
}

// Compile builds the definition and compiles it into a started machine.
func (b *Builder) Compile(opts ...mealy.Option) (*definition.Machine, error) {
	def, err := b.Build()
	if err != nil {
		return nil, err
	}
	return definition.Compile(def, opts...)
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state definition.StateDef
}

// On starts a transition accepting any of the given inputs.
func (s *StateBuilder) On(inputs ...string) *TransitionBuilder {
	return &TransitionBuilder{state: s, def: definition.TransitionDef{On: inputs}}
}

// Otherwise starts a transition accepting every input.
func (s *StateBuilder) Otherwise() *TransitionBuilder {
	return &TransitionBuilder{state: s, def: definition.TransitionDef{Any: true}}
}

// TransitionBuilder configures one transition until Go closes it.
type TransitionBuilder struct {
	state *StateBuilder
	def   definition.TransitionDef
}

// Emit sets the output produced when the transition fires.
func (t *TransitionBuilder) Emit(output string) *TransitionBuilder {
	t.def.Output = output
	return t
}

// Go sets the target and appends the transition to its state.
func (t *TransitionBuilder) Go(target string) *StateBuilder {
	t.def.To = target
	t.state.state.Transitions = append(t.state.state.Transitions, t.def)
	return t.state
}

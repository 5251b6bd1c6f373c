package definition

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition is a declarative machine over string inputs and outputs.
type Definition struct {
	Name    string     `json:"name" yaml:"name" mapstructure:"name"`
	Initial string     `json:"initial" yaml:"initial" mapstructure:"initial"`
	States  []StateDef `json:"states" yaml:"states" mapstructure:"states"`
}

// StateDef declares one state and its outgoing transitions.
type StateDef struct {
	ID          string          `json:"id" yaml:"id" mapstructure:"id"`
	Transitions []TransitionDef `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`
}

// TransitionDef declares one guarded edge.
type TransitionDef struct {
	// On lists the input literals accepted by this transition.
	On []string `json:"on,omitempty" yaml:"on,omitempty" mapstructure:"on"`

	// Any accepts every input.
	Any bool `json:"any,omitempty" yaml:"any,omitempty" mapstructure:"any"`

	To string `json:"to" yaml:"to" mapstructure:"to"`

	// Output is emitted when the transition fires. Empty means no output.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
}

// Parse decodes a YAML definition. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to parse definition: empty document")
	}

	var def Definition
	// WeaklyTypedInput lets `on: nickel` stand for `on: [nickel]` and numeric literals decode
	// as strings.
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}

// Load reads and parses the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return Parse(data)
}

package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/mealy/internal/presentation/graph"
	"github.com/aretw0/mealy/internal/presentation/tui"
	"github.com/aretw0/mealy/internal/validator"
	"github.com/aretw0/mealy/pkg/definition"
)

// Graph writes the Mermaid flowchart of the definition at path.
func Graph(path string, w io.Writer) error {
	def, m, err := compileFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(m.Inspect(), &graph.GraphOverlay{InitialState: def.Initial}))
	return err
}

// Inspect writes the state table of the definition at path, as started at its initial state.
// plain skips markdown rendering and uses the engine's own dump.
func Inspect(path string, w io.Writer, plain bool) error {
	_, m, err := compileFile(path)
	if err != nil {
		return err
	}
	if plain {
		return m.Dump(w)
	}

	render, err := tui.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to init renderer: %w", err)
	}
	out, err := render(tui.MarkdownTable(m.Name(), m.Inspect()))
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// Validate loads and validates the definition at path. It also returns the states that can
// never be reached from the initial state; those are warnings, not errors.
func Validate(path string) (*definition.Definition, []string, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, nil, err
	}
	return def, validator.Unreachable(def), nil
}

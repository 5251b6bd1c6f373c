package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/internal/presentation/graph"
	"github.com/aretw0/mealy/internal/presentation/tui"
	"github.com/aretw0/mealy/pkg/definition"
	"github.com/aretw0/mealy/pkg/observability"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Run compiles the definition and feeds it every input, printing one line per step.
func Run(opts RunOptions) error {
	logger, err := opts.Log.Logger(opts.IO.Err)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With("run", runID)

	def, err := definition.Load(opts.Path)
	if err != nil {
		return err
	}

	m, err := definition.Compile(def, mealy.WithLogger(logger))
	if err != nil {
		return err
	}
	if opts.Initial != "" {
		if err := m.Start(opts.Initial, struct{}{}); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics[string](reg, m.Name())
	if err != nil {
		return err
	}

	var fired *observability.Record[string]
	m.SetObserver(observability.Fanout[string](
		observability.NewLogger[string](logger, slog.LevelInfo),
		metrics,
		mealy.ObserverFunc[string](func(from, to string, out mealy.Output[string]) {
			fired = &observability.Record[string]{From: from, To: to, Output: out}
		}),
	))

	style := tui.NewStyler(opts.IO.Out)
	enc := json.NewEncoder(opts.IO.Out)
	start, _ := m.CurrentStateID()
	visited := []string{start}

	step := func(input string) error {
		from, _ := m.CurrentStateID()
		fired = nil
		if err := m.Step(input); err != nil {
			return err
		}
		if fired != nil {
			visited = append(visited, fired.To)
		}

		if opts.JSON {
			if fired == nil {
				return nil
			}
			ev := fired.Event(m.Name(), input)
			ev.RunID = runID
			return enc.Encode(ev)
		}

		if fired == nil {
			_, err := fmt.Fprintf(opts.IO.Out, "%s --%s--> %s\n", from, input, style.Muted("(no transition)"))
			return err
		}
		line := fmt.Sprintf("%s --%s--> %s", fired.From, input, style.Current(fired.To))
		if v, ok := fired.Output.Get(); ok {
			line += " [" + style.Output(v) + "]"
		}
		_, err := fmt.Fprintln(opts.IO.Out, line)
		return err
	}

	if len(opts.Inputs) > 0 {
		for _, in := range opts.Inputs {
			if err := step(in); err != nil {
				return err
			}
		}
	} else if err := readInputs(opts, step); err != nil {
		return err
	}

	// In JSON mode stdout carries only NDJSON; trailers go to stderr.
	trailer := opts.IO.Out
	if opts.JSON {
		trailer = opts.IO.Err
	}
	if opts.Metrics {
		if err := printMetrics(trailer, reg); err != nil {
			return err
		}
	}
	if opts.Graph {
		current, _ := m.CurrentStateID()
		_, err := fmt.Fprint(trailer, graph.GenerateMermaid(m.Inspect(), &graph.GraphOverlay{
			VisitedStates: visited,
			CurrentState:  current,
			InitialState:  def.Initial,
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

// readInputs feeds one trimmed stdin line per step. Blank lines are skipped, exit/quit stop.
func readInputs(opts RunOptions, step func(string) error) error {
	if opts.IO.In == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	scanner := bufio.NewScanner(opts.IO.In)
	for {
		if opts.Interactive {
			if _, err := fmt.Fprint(opts.IO.Out, "> "); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		if err := step(input); err != nil {
			return err
		}
	}
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// compileFile is shared by the read-only commands.
func compileFile(path string) (*definition.Definition, *definition.Machine, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := definition.Compile(def)
	if err != nil {
		return nil, nil, err
	}
	return def, m, nil
}

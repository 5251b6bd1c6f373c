package observability_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterMachine(t *testing.T) *mealy.Machine[int, int, string] {
	t.Helper()
	m := mealy.New[int, int, string](mealy.WithName("parity"))
	m.MustRegisterState("even")
	m.MustRegisterState("odd")
	flip := func(sum, in int) (int, mealy.Output[string]) {
		if in == 0 {
			return sum, mealy.NoOutput[string]()
		}
		return sum + in, mealy.Emit("flip")
	}
	isOdd := func(_ int, in int) bool { return in%2 != 0 }
	isEven := func(_ int, in int) bool { return in%2 == 0 }
	m.MustRegisterTransition("even", "odd", isOdd, flip)
	m.MustRegisterTransition("even", "even", isEven, flip)
	m.MustRegisterTransition("odd", "even", isOdd, flip)
	m.MustRegisterTransition("odd", "odd", isEven, flip)
	return m
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics[string](reg, "parity")
	require.NoError(t, err)

	m := counterMachine(t)
	m.SetObserver(metrics)
	require.NoError(t, m.Start("even", 0))
	require.NoError(t, m.Feed(1, 0, 3, 2))

	// Same registry, second machine: collectors are shared.
	again, err := observability.NewMetrics[string](reg, "parity")
	require.NoError(t, err)
	again.OnTransition("even", "odd", mealy.Emit("flip"))

	expected := `
# HELP mealy_transitions_total Total number of fired transitions by machine, from_state and to_state
# TYPE mealy_transitions_total counter
mealy_transitions_total{from_state="even",machine="parity",to_state="even"} 1
mealy_transitions_total{from_state="even",machine="parity",to_state="odd"} 2
mealy_transitions_total{from_state="odd",machine="parity",to_state="even"} 1
mealy_transitions_total{from_state="odd",machine="parity",to_state="odd"} 1
# HELP mealy_outputs_total Total number of transitions that produced an output, by machine
# TYPE mealy_outputs_total counter
mealy_outputs_total{machine="parity"} 4
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "mealy_transitions_total", "mealy_outputs_total")
	assert.NoError(t, err)
}

func TestRecorder(t *testing.T) {
	rec := observability.NewRecorder[string]()
	m := counterMachine(t)
	m.SetObserver(rec)
	require.NoError(t, m.Start("even", 0))
	require.NoError(t, m.Feed(1, 0, 2))

	assert.Equal(t, []observability.Record[string]{
		{From: "even", To: "odd", Output: mealy.Emit("flip")},
		{From: "odd", To: "odd", Output: mealy.NoOutput[string]()},
		{From: "odd", To: "odd", Output: mealy.Emit("flip")},
	}, rec.Records())
	assert.Equal(t, []string{"flip", "flip"}, rec.Outputs())

	ev := rec.Records()[0].Event("parity", 1)
	assert.Equal(t, "even", ev.From)
	assert.Equal(t, "flip", ev.Output)
	assert.True(t, ev.HasOutput)

	rec.Reset()
	assert.Empty(t, rec.Records())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewLogger[string](logging.New(&buf, slog.LevelDebug), slog.LevelInfo)

	obs.OnTransition("a", "b", mealy.Emit("x"))
	obs.OnTransition("b", "b", mealy.NoOutput[string]())

	out := buf.String()
	assert.Contains(t, out, "from=a to=b output=x")
	assert.Contains(t, out, "from=b to=b\n")
}

func TestFanout(t *testing.T) {
	first := observability.NewRecorder[string]()
	second := observability.NewRecorder[string]()

	obs := observability.Fanout[string](first, nil, second)
	obs.OnTransition("a", "b", mealy.Emit("x"))

	assert.Len(t, first.Records(), 1)
	assert.Equal(t, first.Records(), second.Records())
}

package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/mealy/internal/cli"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candyPath = filepath.Join("testdata", "candy.yaml")

func runOpts(in string, args ...string) (cli.RunOptions, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return cli.RunOptions{
		Path:   candyPath,
		Inputs: args,
		Log:    cli.LogOptions{Level: "info"},
		IO:     cli.IO{In: strings.NewReader(in), Out: &out, Err: &errOut},
	}, &out, &errOut
}

func TestRun_Args(t *testing.T) {
	opts, out, _ := runOpts("", "nickel", "dime", "penny", "quarter")
	require.NoError(t, cli.Run(opts))

	assert.Equal(t, strings.Join([]string{
		"Zero --nickel--> Five",
		"Five --dime--> Fifteen",
		"Fifteen --penny--> (no transition)",
		"Fifteen --quarter--> Zero [candy4]",
	}, "\n")+"\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	opts, out, _ := runOpts("dime\n\n  dime \nquit\nnickel\n")
	require.NoError(t, cli.Run(opts))

	assert.Equal(t, "Ten --dime--> Zero [candy0]\n", strings.SplitAfter(out.String(), "\n")[1])
	assert.NotContains(t, out.String(), "nickel")
}

func TestRun_Initial(t *testing.T) {
	opts, out, _ := runOpts("", "nickel")
	opts.Initial = "Fifteen"
	require.NoError(t, cli.Run(opts))
	assert.Equal(t, "Fifteen --nickel--> Zero [candy0]\n", out.String())

	opts.Initial = "Twenty"
	assert.Error(t, cli.Run(opts))
}

func TestRun_JSON(t *testing.T) {
	opts, out, _ := runOpts("", "quarter", "penny")
	opts.JSON = true
	require.NoError(t, cli.Run(opts))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var ev domain.TransitionEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, "candy", ev.Machine)
	assert.Equal(t, "Zero", ev.From)
	assert.Equal(t, "Zero", ev.To)
	assert.Equal(t, "quarter", ev.Input)
	assert.Equal(t, "candy1", ev.Output)
	assert.True(t, ev.HasOutput)
	assert.NotEmpty(t, ev.RunID)
}

func TestRun_MetricsAndGraph(t *testing.T) {
	opts, out, _ := runOpts("", "quarter", "quarter", "dime")
	opts.Metrics = true
	opts.Graph = true
	require.NoError(t, cli.Run(opts))

	got := out.String()
	assert.Contains(t, got, "# TYPE mealy_transitions_total counter\n")
	assert.Contains(t, got, "# HELP mealy_outputs_total ")
	assert.Contains(t, got, `mealy_transitions_total{from_state="Zero",machine="candy",to_state="Zero"} 2`)
	assert.Contains(t, got, `mealy_outputs_total{machine="candy"} 2`)
	assert.Contains(t, got, "graph TD\n")
	assert.Contains(t, got, "class Ten current;")
	assert.Contains(t, got, "class Zero visited;")
}

func TestRun_JSONGraph(t *testing.T) {
	opts, out, errOut := runOpts("", "nickel", "nickel")
	opts.Log.Level = "warn"
	opts.JSON = true
	opts.Graph = true
	opts.Metrics = true
	require.NoError(t, cli.Run(opts))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var ev domain.TransitionEvent
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
	}

	trailer := errOut.String()
	assert.Contains(t, trailer, "graph TD\n")
	assert.Contains(t, trailer, "class Zero visited;")
	assert.Contains(t, trailer, "class Five visited;")
	assert.Contains(t, trailer, "class Ten current;")
	assert.Contains(t, trailer, `mealy_transitions_total{from_state="Five",machine="candy",to_state="Ten"} 1`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_TrailerWriteError(t *testing.T) {
	opts, _, _ := runOpts("", "nickel")
	opts.Log.Level = "warn"
	opts.JSON = true
	opts.Graph = true
	opts.IO.Err = failingWriter{}

	assert.ErrorContains(t, cli.Run(opts), "disk full")
}

func TestRun_TransitionLoggedOnce(t *testing.T) {
	opts, _, errOut := runOpts("", "dime")
	require.NoError(t, cli.Run(opts))
	assert.Equal(t, 1, strings.Count(errOut.String(), "msg=transition"))

	opts, _, errOut = runOpts("", "dime")
	opts.Log.Level = "warn"
	require.NoError(t, cli.Run(opts))
	assert.NotContains(t, errOut.String(), "transition")
}

func TestRun_DebugLogsToErr(t *testing.T) {
	opts, _, errOut := runOpts("", "dime")
	opts.Log.Debug = true
	require.NoError(t, cli.Run(opts))
	assert.Contains(t, errOut.String(), "transition")
	assert.Contains(t, errOut.String(), "machine=candy")
}

func TestRun_Errors(t *testing.T) {
	opts, _, _ := runOpts("")
	opts.Log.Level = "loud"
	assert.Error(t, cli.Run(opts))

	opts, _, _ = runOpts("")
	opts.Path = filepath.Join("testdata", "missing.yaml")
	assert.Error(t, cli.Run(opts))

	opts, _, _ = runOpts("")
	opts.IO.In = nil
	assert.Error(t, cli.Run(opts))
}

func TestGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cli.Graph(candyPath, &out))
	assert.Contains(t, out.String(), `Zero(("Zero"))`)
	assert.Contains(t, out.String(), "class Zero current;")
}

func TestInspect(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, cli.Inspect(candyPath, &plain, true))
	assert.Contains(t, plain.String(), "* Zero -> Five, Ten, Zero\n")

	var rendered bytes.Buffer
	require.NoError(t, cli.Inspect(candyPath, &rendered, false))
	assert.Contains(t, rendered.String(), "Fifteen")
}

func TestValidate(t *testing.T) {
	def, unreachable, err := cli.Validate(candyPath)
	require.NoError(t, err)
	assert.Equal(t, "candy", def.Name)
	assert.Empty(t, unreachable)

	_, unreachable, err = cli.Validate(filepath.Join("testdata", "island.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"island"}, unreachable)

	_, _, err = cli.Validate(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

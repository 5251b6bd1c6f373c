package main

import (
	"os"

	"github.com/aretw0/mealy/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE [INPUT...]",
	Short: "Feed inputs to a machine",
	Long: `Compiles the definition and steps it once per input. Inputs come from the
arguments, or one per line from stdin when none are given ("exit" or "quit" stops).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		metrics, _ := cmd.Flags().GetBool("metrics")
		graph, _ := cmd.Flags().GetBool("graph")
		initial, _ := cmd.Flags().GetString("initial")

		return cli.Run(cli.RunOptions{
			Path:        args[0],
			Inputs:      args[1:],
			Initial:     initial,
			JSON:        jsonMode,
			Metrics:     metrics,
			Graph:       graph,
			Interactive: !jsonMode && term.IsTerminal(int(os.Stdin.Fd())),
			Log:         logOptions(cmd),
			IO:          cli.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print fired transitions as NDJSON events")
	runCmd.Flags().Bool("metrics", false, "Print transition counters when done")
	runCmd.Flags().Bool("graph", false, "Print a Mermaid graph of the visited states when done")
	runCmd.Flags().String("initial", "", "Start at this state instead of the definition's initial state")
}

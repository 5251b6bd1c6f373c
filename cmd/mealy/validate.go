package main

import (
	"fmt"

	"github.com/aretw0/mealy/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check the definition for consistency",
	Long: `Reports missing or duplicate states, dangling targets and guards that provably overlap.
States unreachable from the initial state are printed as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, unreachable, err := cli.Validate(args[0])
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, id := range unreachable {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: state %q is unreachable from %q\n", id, def.Initial)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Machine %q is valid (%d states) ✅\n", def.Name, len(def.States))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

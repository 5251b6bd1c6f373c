package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mealy/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mealy",
	Short: "mealy runs deterministic Mealy machines described in YAML",
	Long: `mealy loads a machine definition (states, guarded transitions and outputs),
feeds it inputs one at a time and reports every fired transition.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		envConfig = cfg
		return nil
	},
}

var envConfig = Config{LogLevel: "warn"}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Shortcut for --log-level=debug")
}

// logOptions resolves the log flags, falling back to MEALY_LOG_LEVEL and MEALY_DEBUG when a
// flag was not given.
func logOptions(cmd *cobra.Command) cli.LogOptions {
	opts := cli.LogOptions{Level: envConfig.LogLevel, Debug: envConfig.Debug}
	if cmd.Flags().Changed("log-level") {
		opts.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("debug") {
		opts.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return opts
}

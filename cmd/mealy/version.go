package main

import (
	"fmt"

	"github.com/aretw0/mealy"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mealy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mealy version %s\n", mealy.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

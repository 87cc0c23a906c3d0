package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "manifest",
	Short:   "Manage the competition manifest file",
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("expected a subcommand: add, format or init")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

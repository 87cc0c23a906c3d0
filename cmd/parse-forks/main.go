package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/forks"
	"github.com/forkcomp/forkcomp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "parse-forks <forks-json-file>",
	Short: "Print pipe-delimited fork records from a forks JSON file",
	Long: "Reads a forks JSON file produced by fetch-forks and prints one line\n" +
		"per fork to stdout in the form login|clone_url|avatar_url|html_url.\n" +
		"Fields absent from a fork are printed as empty strings.",
	Args:    cobra.ExactArgs(1),
	Version: version.Version,
	RunE:    runParse,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	list, err := forks.Load(args[0])
	if err != nil {
		return err
	}

	records, err := list.Records()
	if err != nil {
		return err
	}

	// stdout carries records only; everything else belongs on stderr.
	for _, rec := range records {
		fmt.Println(rec)
	}
	return nil
}

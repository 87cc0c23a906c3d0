package main

import (
	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/manifest"
)

func init() {
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format <manifest-file> <output-file>",
	Short: "Write an indented copy of the manifest",
	Long: "Re-serializes the manifest with two-space indentation into the output\n" +
		"file. The source manifest is left untouched.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		return m.Format(args[1])
	},
}

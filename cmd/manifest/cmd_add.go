package main

import (
	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/manifest"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <manifest-file> <username> <avatar-url> <fork-url>",
	Short: "Append a participant entry to the manifest",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}

		m.Add(manifest.Entry{
			Username: args[1],
			Avatar:   args[2],
			ForkURL:  args[3],
		})

		return m.Save(args[0])
	},
}

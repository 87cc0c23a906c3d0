package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/manifest"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <manifest-file>",
	Short: "Create an empty manifest",
	Long: "Creates the manifest file with an empty participant list. add requires\n" +
		"an existing valid manifest, so new competitions start here.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manifest.Init(args[0]); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", args[0])
		return nil
	},
}

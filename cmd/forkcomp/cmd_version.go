package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/updater"
	"github.com/forkcomp/forkcomp/internal/version"
)

var versionCheck bool

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("forkcomp %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)

		if !versionCheck {
			return nil
		}

		fmt.Println("\nChecking for updates...")
		status, err := updater.New().CheckLatestRelease(version.Version)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !status.Available {
			fmt.Println("Already up to date.")
			return nil
		}

		fmt.Printf("Update available: v%s", status.Latest)
		if status.Release != nil && status.Release.URL != "" {
			fmt.Printf(" (%s)", status.Release.URL)
		}
		fmt.Println()
		return nil
	},
}

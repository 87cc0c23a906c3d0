package main

import (
	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/config"
	"github.com/forkcomp/forkcomp/internal/setup"
)

var (
	initConfigPath  string
	initUseDefaults bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initConfigPath, "config", config.DefaultConfigPath, "path to write the config file")
	initCmd.Flags().BoolVar(&initUseDefaults, "defaults", false, "skip the form and write stock defaults")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the toolkit configuration interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setup.Run(initConfigPath, initUseDefaults)
	},
}

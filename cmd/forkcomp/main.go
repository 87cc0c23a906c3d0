package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/ui"
	"github.com/forkcomp/forkcomp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "forkcomp",
	Short:   "forkcomp — fork competition toolkit",
	Version: version.Version,
}

func init() {
	rootCmd.Long = ui.Green.Render("forkcomp") + " " + ui.Cyan.Render(version.Version) + "\n" +
		ui.Dim.Render("Companion utility for the fork competition tools: sets up the toolkit config, reviews recorded fetch runs, and checks for new releases.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

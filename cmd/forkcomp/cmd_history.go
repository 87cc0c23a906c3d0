package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/config"
	"github.com/forkcomp/forkcomp/internal/journal"
	"github.com/forkcomp/forkcomp/internal/ui"
)

var (
	historyConfigPath string
	historyLimit      int
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyConfigPath, "config", config.DefaultConfigPath, "path to config file")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded fetch runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		var err error
		if cmd.Flags().Changed("config") {
			cfg, err = config.Load(historyConfigPath)
		} else {
			cfg, err = config.LoadOrDefault(historyConfigPath)
		}
		if err != nil {
			return err
		}

		if !cfg.Journal.Enabled {
			return fmt.Errorf("journal is not enabled; run 'forkcomp init' and turn it on")
		}
		if _, err := os.Stat(cfg.Journal.Path); err != nil {
			return fmt.Errorf("no journal found at %s; it appears after the first fetch", cfg.Journal.Path)
		}

		store, err := journal.NewStore(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No fetch runs recorded yet.")
			return nil
		}

		for _, run := range runs {
			status := ui.Green.Render(run.Status)
			if run.Status != journal.StatusCompleted {
				status = ui.Red.Render(run.Status)
			}
			// Pad before styling so the escape codes stay out of the width.
			fmt.Printf("%s  %s  %5d forks  %3d pages  %s  %s\n",
				ui.Dim.Render(run.StartedAt.Local().Format("2006-01-02 15:04:05")),
				ui.White.Render(fmt.Sprintf("%-30s", run.Owner+"/"+run.Repo)),
				run.Forks, run.Pages, status,
				ui.Dim.Render(run.Duration.Truncate(10*time.Millisecond).String()),
			)
			if run.Error != "" {
				fmt.Printf("    %s\n", ui.Dim.Render(run.Error))
			}
		}
		return nil
	},
}

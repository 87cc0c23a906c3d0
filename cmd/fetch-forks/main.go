package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/forkcomp/forkcomp/internal/config"
	"github.com/forkcomp/forkcomp/internal/forks"
	"github.com/forkcomp/forkcomp/internal/github"
	"github.com/forkcomp/forkcomp/internal/journal"
	"github.com/forkcomp/forkcomp/internal/ui"
	"github.com/forkcomp/forkcomp/internal/version"
)

// fetchTemplate shows the repo, current page and running fork count on stderr.
const fetchTemplate pb.ProgressBarTemplate = `{{string . "repo" | cyan}} page {{string . "page"}}: {{counter .}} forks`

var (
	fetchConfigPath string
	fetchToken      string
)

var rootCmd = &cobra.Command{
	Use:     "fetch-forks <owner> <repo> <output-file>",
	Short:   "Fetch all forks of a GitHub repository into a JSON file",
	Args:    cobra.ExactArgs(3),
	Version: version.Version,
	RunE:    runFetch,
}

func init() {
	rootCmd.Flags().StringVar(&fetchToken, "token", "", "GitHub API token")
	rootCmd.Flags().StringVar(&fetchConfigPath, "config", config.DefaultConfigPath, "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	owner, repo, outPath := args[0], args[1], args[2]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := github.NewClient(github.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Token:   fetchToken,
		Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second,
	})
	if err != nil {
		return err
	}

	started := time.Now()

	bar := fetchTemplate.New(0)
	bar.SetWriter(os.Stderr)
	bar.Set("repo", owner+"/"+repo).Set("page", "1")
	bar.Start()

	var pages int
	all, fetchErr := client.ListAllForks(cmd.Context(), owner, repo, func(p github.ForkPage) {
		pages = p.Page
		bar.Set("page", strconv.Itoa(p.Page))
		bar.Add64(int64(p.Count))
	})
	bar.Finish()

	if fetchErr != nil {
		reportFetchError(fetchErr)
	}

	fmt.Fprintln(os.Stderr, ui.Green.Render(fmt.Sprintf("Found %d forks total", len(all))))

	// The output file is written no matter how paging ended, so a partial
	// fetch still leaves a usable array behind.
	if err := forks.List(all).Save(outPath); err != nil {
		return err
	}

	if cfg.Journal.Enabled {
		if err := recordRun(cfg.Journal.Path, owner, repo, pages, len(all), outPath, fetchErr, started); err != nil {
			fmt.Fprintf(os.Stderr, "warning: journal: %v\n", err)
		}
	}

	return nil
}

// loadConfig treats a missing file at the default path as "use defaults",
// but an explicitly passed --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(fetchConfigPath)
	}
	return config.LoadOrDefault(fetchConfigPath)
}

// reportFetchError explains why paging stopped early. The partial results
// are still written, so this never turns into a non-zero exit.
func reportFetchError(err error) {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, ui.Red.Render("ERROR: "+apiErr.Error()))
		fmt.Fprintf(os.Stderr, "Response: %s\n", apiErr.BodySnippet(500))
		return
	}
	fmt.Fprintln(os.Stderr, ui.Red.Render("ERROR: "+err.Error()))
}

func recordRun(dbPath, owner, repo string, pages, count int, output string, fetchErr error, started time.Time) error {
	store, err := journal.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run := &journal.Run{
		Owner:     owner,
		Repo:      repo,
		Pages:     pages,
		Forks:     count,
		Output:    output,
		Status:    journal.StatusCompleted,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	if fetchErr != nil {
		run.Status = journal.StatusPartial
		run.Error = fetchErr.Error()
	}
	return store.RecordRun(run)
}

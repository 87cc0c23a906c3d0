package setup

import (
	"github.com/charmbracelet/huh"
)

// BuildForm constructs the setup form over the given answers.
func BuildForm(answers *Answers) *huh.Form {
	return huh.NewForm(
		welcomeGroup(),
		apiGroup(answers),
		journalGroup(answers),
		journalPathGroup(answers),
		manifestGroup(answers),
		confirmGroup(answers),
	).WithTheme(huh.ThemeCatppuccin())
}

func welcomeGroup() *huh.Group {
	return huh.NewGroup(
		huh.NewNote().
			Title("Fork Competition Toolkit Setup").
			Description("Configures the fetch/parse/manifest tools for this checkout.\n\n" +
				"Answers land in forkcomp.yml next to where the tools run."),
	)
}

func apiGroup(answers *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("GitHub API base URL").
			Description("Point this at a GitHub Enterprise endpoint if needed.").
			Value(&answers.BaseURL).
			Validate(ValidateHTTPURL),
		huh.NewInput().
			Title("Request timeout (seconds)").
			Value(&answers.TimeoutSecStr).
			Validate(ValidatePositiveInt),
	)
}

func journalGroup(answers *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewConfirm().
			Title("Record fetch runs in a journal?").
			Description("Keeps a local SQLite history of fetches for later review.").
			Value(&answers.JournalEnabled),
	)
}

func journalPathGroup(answers *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Journal database path").
			Value(&answers.JournalPath).
			Validate(ValidateNonEmpty),
	).WithHideFunc(func() bool { return !answers.JournalEnabled })
}

func manifestGroup(answers *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Manifest file").
			Description("Created with an empty participant list if absent.").
			Value(&answers.ManifestPath).
			Validate(ValidateNonEmpty),
	)
}

func confirmGroup(answers *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewNote().
			Title("Ready").
			Description("Setup will now:\n"+
				"  1. Write the toolkit config\n"+
				"  2. Create the manifest file if missing\n"),
		huh.NewConfirm().
			Title("Proceed?").
			Value(&answers.Confirmed),
	)
}

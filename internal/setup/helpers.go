package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forkcomp/forkcomp/internal/config"
)

// Answers holds raw string values from the setup form.
// Numeric fields are strings because huh.Input binds to *string.
type Answers struct {
	BaseURL       string
	TimeoutSecStr string

	JournalEnabled bool
	JournalPath    string

	ManifestPath string

	Confirmed bool
}

// DefaultAnswers returns Answers prefilled with the stock defaults.
func DefaultAnswers() *Answers {
	return &Answers{
		BaseURL:       config.DefaultAPIBaseURL,
		TimeoutSecStr: fmt.Sprintf("%d", config.DefaultTimeoutSec),
		JournalPath:   config.DefaultJournalPath,
		ManifestPath:  config.DefaultManifestPath,
	}
}

// Config converts the answers into a validated Config.
func (a *Answers) Config() (*config.Config, error) {
	timeout, err := strconv.Atoi(strings.TrimSpace(a.TimeoutSecStr))
	if err != nil || timeout < 1 {
		return nil, fmt.Errorf("timeout must be a positive integer, got %q", a.TimeoutSecStr)
	}

	cfg := config.Default()
	cfg.API.BaseURL = strings.TrimSpace(a.BaseURL)
	cfg.API.TimeoutSec = timeout
	cfg.Journal.Enabled = a.JournalEnabled
	cfg.Journal.Path = strings.TrimSpace(a.JournalPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidatePositiveInt returns nil if s is a positive integer.
func ValidatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 1 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// ValidateHTTPURL returns nil if s looks like an http(s) URL.
func ValidateHTTPURL(s string) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

// ValidateNonEmpty returns nil if s has non-space content.
func ValidateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

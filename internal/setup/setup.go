// Package setup drives the interactive toolkit configuration flow.
package setup

import (
	"fmt"
	"os"

	"github.com/forkcomp/forkcomp/internal/manifest"
)

// Run walks through toolkit setup and writes the resulting config. With
// useDefaults set the form is skipped and stock defaults are written as-is.
func Run(configPath string, useDefaults bool) error {
	answers := DefaultAnswers()

	if !useDefaults {
		form := BuildForm(answers)
		if err := form.Run(); err != nil {
			return fmt.Errorf("setup cancelled: %w", err)
		}
		if !answers.Confirmed {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	cfg, err := answers.Config()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	created, err := ensureManifest(answers.ManifestPath)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Setup complete!")
	fmt.Println()
	fmt.Printf("  Config:    %s\n", configPath)
	if created {
		fmt.Printf("  Manifest:  %s (created)\n", answers.ManifestPath)
	} else {
		fmt.Printf("  Manifest:  %s (kept)\n", answers.ManifestPath)
	}
	if cfg.Journal.Enabled {
		fmt.Printf("  Journal:   %s\n", cfg.Journal.Path)
	}
	fmt.Println()

	return nil
}

// ensureManifest creates an empty manifest unless one already exists.
func ensureManifest(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking manifest: %w", err)
	}

	if err := manifest.Init(path); err != nil {
		return false, fmt.Errorf("creating manifest: %w", err)
	}
	return true, nil
}

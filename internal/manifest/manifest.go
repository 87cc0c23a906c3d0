// Package manifest manages the competition manifest file, a JSON array of
// participant entries.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one participant record.
type Entry struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	ForkURL  string `json:"forkUrl"`
}

// Manifest is the participant collection. Elements stay verbatim, so fields
// beyond the known ones survive a rewrite.
type Manifest []json.RawMessage

// Load reads the manifest at path. The file must exist and hold a JSON array.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	// Unmarshal turns a top-level null into a nil slice without erroring.
	if m == nil {
		return nil, fmt.Errorf("parsing manifest: top-level value is null, not an array")
	}
	return m, nil
}

// Add appends a participant entry. Duplicates are allowed; callers that
// re-run an add get a second element.
func (m *Manifest) Add(e Entry) {
	raw, _ := json.Marshal(e)
	*m = append(*m, json.RawMessage(raw))
}

// Save writes the manifest to path as a compact JSON array. A nil manifest
// is written as [].
func (m Manifest) Save(path string) error {
	if m == nil {
		m = Manifest{}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Format writes the manifest to path indented with two spaces.
func (m Manifest) Format(path string) error {
	if m == nil {
		m = Manifest{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Init creates an empty manifest at path. It refuses to overwrite an
// existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("manifest already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking manifest: %w", err)
	}

	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

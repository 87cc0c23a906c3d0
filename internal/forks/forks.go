// Package forks handles fork-list files: the JSON arrays produced by the
// fetcher and consumed by the parser.
package forks

import (
	"encoding/json"
	"fmt"
	"os"
)

// List is a fork collection as returned by the GitHub API. Elements stay
// verbatim, so unknown fields survive a load/save round trip.
type List []json.RawMessage

// Load reads a fork list from path. The top level must be a JSON array.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading forks file: %w", err)
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing forks file: %w", err)
	}
	// Unmarshal turns a top-level null into a nil slice without erroring.
	if l == nil {
		return nil, fmt.Errorf("parsing forks file: top-level value is null, not an array")
	}
	return l, nil
}

// Save writes the list to path as a compact JSON array. A nil list is
// written as [].
func (l List) Save(path string) error {
	if l == nil {
		l = List{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling forks: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing forks file: %w", err)
	}
	return nil
}

// Owner identifies the account that owns a fork.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Record is the subset of a fork object the competition pipeline consumes.
// Fields absent from the source object stay empty.
type Record struct {
	Owner    Owner  `json:"owner"`
	CloneURL string `json:"clone_url"`
	HTMLURL  string `json:"html_url"`
}

// String renders the record in the pipe-delimited exchange format:
// login|clone_url|avatar_url|html_url.
func (r Record) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", r.Owner.Login, r.CloneURL, r.Owner.AvatarURL, r.HTMLURL)
}

// Records decodes every element of the list into Record form.
func (l List) Records() ([]Record, error) {
	records := make([]Record, 0, len(l))
	for i, raw := range l {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("fork %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Package updater checks GitHub releases for newer toolkit versions.
package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ReleaseInfo describes a GitHub release.
type ReleaseInfo struct {
	Version     string `json:"version"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
}

// UpdateStatus is the result of an update check.
type UpdateStatus struct {
	Current   string       `json:"current"`
	Latest    string       `json:"latest"`
	Available bool         `json:"available"`
	Release   *ReleaseInfo `json:"release,omitempty"`
	CheckedAt string       `json:"checked_at"`
}

// Updater manages update checks with caching.
type Updater struct {
	mu     sync.Mutex
	cached *UpdateStatus
	ttl    time.Duration
}

// New creates an Updater with a 1-hour cache TTL.
func New() *Updater {
	return &Updater{ttl: 1 * time.Hour}
}

const releasesURL = "https://api.github.com/repos/forkcomp/forkcomp/releases/latest"

// githubRelease is the subset of the GitHub API response we need.
type githubRelease struct {
	TagName     string `json:"tag_name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// CheckLatestRelease checks GitHub for the latest release and compares with
// currentVersion. Results are cached for the configured TTL.
func (u *Updater) CheckLatestRelease(currentVersion string) (*UpdateStatus, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Return cached result if fresh
	if u.cached != nil {
		checkedAt, err := time.Parse(time.RFC3339, u.cached.CheckedAt)
		if err == nil && time.Since(checkedAt) < u.ttl {
			result := *u.cached
			result.Current = currentVersion
			result.Available = isNewerVersion(result.Latest, currentVersion)
			return &result, nil
		}
	}

	rel, err := fetchLatestRelease()
	if err != nil {
		return nil, err
	}

	latestVersion := strings.TrimPrefix(rel.TagName, "v")

	status := &UpdateStatus{
		Current:   currentVersion,
		Latest:    latestVersion,
		Available: isNewerVersion(latestVersion, currentVersion),
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if status.Available {
		status.Release = &ReleaseInfo{
			Version:     latestVersion,
			PublishedAt: rel.PublishedAt,
			URL:         rel.HTMLURL,
		}
	}

	u.cached = status
	return status, nil
}

// fetchLatestRelease fetches the latest release from the GitHub API.
func fetchLatestRelease() (*githubRelease, error) {
	req, err := http.NewRequest("GET", releasesURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "forkcomp-updater")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	var rel githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decoding GitHub response: %w", err)
	}
	return &rel, nil
}

// isNewerVersion returns true if latest is strictly greater than current.
// Parses "major.minor.patch" semver (strips leading "v").
func isNewerVersion(latest, current string) bool {
	parse := func(s string) (int, int, int, bool) {
		s = strings.TrimPrefix(s, "v")
		parts := strings.SplitN(s, ".", 3)
		if len(parts) != 3 {
			return 0, 0, 0, false
		}
		major, e1 := strconv.Atoi(parts[0])
		minor, e2 := strconv.Atoi(parts[1])
		patchStr := strings.SplitN(parts[2], "-", 2)[0]
		patch, e3 := strconv.Atoi(patchStr)
		if e1 != nil || e2 != nil || e3 != nil {
			return 0, 0, 0, false
		}
		return major, minor, patch, true
	}

	lMaj, lMin, lPat, lok := parse(latest)
	cMaj, cMin, cPat, cok := parse(current)
	if !lok || !cok {
		return latest != current && latest > current
	}

	if lMaj != cMaj {
		return lMaj > cMaj
	}
	if lMin != cMin {
		return lMin > cMin
	}
	return lPat > cPat
}

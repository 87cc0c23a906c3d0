package github

import "fmt"

// APIError represents an HTTP error response from the GitHub API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API returned HTTP %d", e.StatusCode)
}

// BodySnippet returns at most n characters of the response body.
func (e *APIError) BodySnippet(n int) string {
	r := []rune(e.Body)
	if len(r) <= n {
		return e.Body
	}
	return string(r[:n])
}

package journal

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeRun(owner string, forks int) *Run {
	return &Run{
		Owner:     owner,
		Repo:      "hello",
		Pages:     (forks + 99) / 100,
		Forks:     forks,
		Output:    "forks.json",
		Status:    StatusCompleted,
		StartedAt: time.Now().Truncate(time.Second),
		Duration:  1500 * time.Millisecond,
	}
}

func TestNewStore(t *testing.T) {
	s := newTestStore(t)
	if s == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestNewStoreBadPath(t *testing.T) {
	_, err := NewStore("/nonexistent/dir/test.db")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestRecordAndListRuns(t *testing.T) {
	s := newTestStore(t)

	run := makeRun("octo", 237)
	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if run.ID == 0 {
		t.Error("expected run ID to be set")
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}

	got := runs[0]
	if got.Owner != "octo" {
		t.Errorf("Owner = %q, want %q", got.Owner, "octo")
	}
	if got.Forks != 237 {
		t.Errorf("Forks = %d, want 237", got.Forks)
	}
	if got.Pages != 3 {
		t.Errorf("Pages = %d, want 3", got.Pages)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", got.Status, StatusCompleted)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", got.Duration)
	}
	if !got.StartedAt.Equal(run.StartedAt.UTC().Truncate(time.Second)) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, run.StartedAt)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.RecordRun(makeRun(fmt.Sprintf("owner%d", i), i*100)); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := s.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	if runs[0].Owner != "owner4" || runs[2].Owner != "owner2" {
		t.Errorf("order = %q..%q, want owner4..owner2", runs[0].Owner, runs[2].Owner)
	}
}

func TestRecordPartialRun(t *testing.T) {
	s := newTestStore(t)

	run := makeRun("octo", 100)
	run.Status = StatusPartial
	run.Error = "GitHub API returned HTTP 403"
	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := s.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if runs[0].Status != StatusPartial {
		t.Errorf("Status = %q, want %q", runs[0].Status, StatusPartial)
	}
	if runs[0].Error == "" {
		t.Error("expected error text to be kept")
	}
}

func TestListRunsEmpty(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}

func TestMigrateIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s1, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s1.RecordRun(makeRun("octo", 50)); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	s1.Close()

	// Reopening runs the migration again against existing tables.
	s2, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore reopen: %v", err)
	}
	defer s2.Close()

	runs, err := s2.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("runs = %d, want 1", len(runs))
	}
}

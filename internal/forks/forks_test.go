package forks

import (
	"os"
	"path/filepath"
	"testing"
)

func writeForksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forks.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing forks file: %v", err)
	}
	return path
}

func TestLoadAndRecords(t *testing.T) {
	path := writeForksFile(t, `[
		{"owner":{"login":"alice","avatar_url":"https://a.test/alice"},"clone_url":"https://g.test/alice/r.git","html_url":"https://g.test/alice/r"},
		{"owner":{"login":"bob"},"clone_url":"C","html_url":"H"}
	]`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(l) != 2 {
		t.Fatalf("elements = %d, want 2", len(l))
	}

	records, err := l.Records()
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}

	want := "alice|https://g.test/alice/r.git|https://a.test/alice|https://g.test/alice/r"
	if got := records[0].String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Missing avatar_url renders as an empty field.
	if got, want := records[1].String(), "bob|C||H"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRecordsMissingOwner(t *testing.T) {
	path := writeForksFile(t, `[{"clone_url":"C","html_url":"H"}]`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	records, err := l.Records()
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}

	if got, want := records[0].String(), "|C||H"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRecordsNullOwner(t *testing.T) {
	path := writeForksFile(t, `[{"owner":null,"clone_url":"C"}]`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	records, err := l.Records()
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}
	if got, want := records[0].String(), "|C||"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRecordsBadElement(t *testing.T) {
	path := writeForksFile(t, `[{"owner":"not-an-object"}]`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := l.Records(); err == nil {
		t.Fatal("expected error for non-object owner")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeForksFile(t, `[{"owner":`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadNonArray(t *testing.T) {
	path := writeForksFile(t, `{"message":"not a list"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-array top level")
	}
}

func TestLoadNull(t *testing.T) {
	path := writeForksFile(t, `null`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for null top level")
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forks.json")

	var l List
	if err := l.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %q, want %q", string(data), "[]")
	}
}

func TestRoundTripPreservesElements(t *testing.T) {
	const src = `[{"owner":{"login":"zed","plan":{"name":"pro"}},"clone_url":"C","stargazers_count":7,"topics":["a","b"]}]`
	path := writeForksFile(t, src)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.json")
	if err := l.Save(out); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != src {
		t.Errorf("round trip changed content:\n got %s\nwant %s", data, src)
	}
}

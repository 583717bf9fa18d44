package seen

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "seen.json"), 90)

	l := s.Load()
	if len(l.Wikipedia) != 0 || len(l.Obituaries) != 0 {
		t.Errorf("missing file should load as empty ledger, got %+v", l)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewStore(path, 90).Load()
	if len(l.Wikipedia) != 0 || len(l.Obituaries) != 0 {
		t.Errorf("corrupt file should load as empty ledger, got %+v", l)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	s := NewStore(path, 90)
	s.now = fixedNow

	l := &Ledger{}
	err := s.Save(l,
		[]string{"Ada Lovelace", "Niels Bohr"},
		[]ObituaryEntry{{URL: "https://example.com/obit", Name: "Jane Doe"}})
	if err != nil {
		t.Fatal(err)
	}

	got := NewStore(path, 90).Load()
	if len(got.Wikipedia) != 2 || len(got.Obituaries) != 1 {
		t.Fatalf("reloaded ledger = %+v", got)
	}
	if !got.SeenTitles()["Ada Lovelace"] {
		t.Error("saved title not present after reload")
	}
	if !got.SeenURLs()["https://example.com/obit"] {
		t.Error("saved obituary URL not present after reload")
	}
	if got.Wikipedia[0].Date != "2026-08-23" {
		t.Errorf("entry date = %q, want 2026-08-23", got.Wikipedia[0].Date)
	}
}

func TestSavePrunesOldEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	s := NewStore(path, 90)
	s.now = fixedNow

	l := &Ledger{
		Wikipedia: []WikipediaEntry{
			{Title: "Ancient Entry", Date: "2026-01-01"}, // past retention
			{Title: "Recent Entry", Date: "2026-08-01"},  // inside retention
		},
		Obituaries: []ObituaryEntry{
			{URL: "https://example.com/old", Date: "2025-12-31"},
		},
	}
	if err := s.Save(l, nil, nil); err != nil {
		t.Fatal(err)
	}

	got := NewStore(path, 90).Load()
	if got.SeenTitles()["Ancient Entry"] {
		t.Error("entry past retention survived the save")
	}
	if !got.SeenTitles()["Recent Entry"] {
		t.Error("entry inside retention was pruned")
	}
	if len(got.Obituaries) != 0 {
		t.Errorf("old obituary survived: %+v", got.Obituaries)
	}
}

func TestPruneIdempotent(t *testing.T) {
	l := &Ledger{
		Wikipedia: []WikipediaEntry{
			{Title: "Keep", Date: "2026-08-01"},
			{Title: "Drop", Date: "2026-01-01"},
		},
	}

	l.Prune("2026-06-01")
	first := len(l.Wikipedia)
	l.Prune("2026-06-01")
	if len(l.Wikipedia) != first || first != 1 {
		t.Errorf("prune not idempotent: first %d, second %d", first, len(l.Wikipedia))
	}
}

func TestFilterFresh(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	identity := func(s string) string { return s }
	seenSet := map[string]bool{"a": true, "b": true}

	got := FilterFresh(items, identity, seenSet, 2)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("FilterFresh = %v, want [c d]", got)
	}

	// Below the floor the filter is dropped for the run.
	relaxed := FilterFresh(items, identity, seenSet, 3)
	if len(relaxed) != 4 {
		t.Errorf("FilterFresh relaxed = %v, want the full pool", relaxed)
	}

	// minFresh zero means never relax.
	all := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	strict := FilterFresh(items, identity, all, 0)
	if len(strict) != 0 {
		t.Errorf("FilterFresh strict = %v, want empty", strict)
	}
}

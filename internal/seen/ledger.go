// Package seen persists the registry of previously surfaced items: the
// only state shared between runs. An identity present in the ledger
// blocks reselection until its entry ages past the retention window.
package seen

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"biodigest/internal/logger"
)

const dateLayout = "2006-01-02"

type WikipediaEntry struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ObituaryEntry struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Ledger mirrors the on-disk JSON shape. Unknown extra fields are
// ignored on load for forward compatibility.
type Ledger struct {
	Wikipedia  []WikipediaEntry `json:"wikipedia"`
	Obituaries []ObituaryEntry  `json:"obituaries"`
}

func (l *Ledger) SeenTitles() map[string]bool {
	out := make(map[string]bool, len(l.Wikipedia))
	for _, e := range l.Wikipedia {
		out[e.Title] = true
	}
	return out
}

func (l *Ledger) SeenURLs() map[string]bool {
	out := make(map[string]bool, len(l.Obituaries))
	for _, e := range l.Obituaries {
		out[e.URL] = true
	}
	return out
}

// Prune drops entries dated before cutoff (ISO date string compare).
// Idempotent: pruning twice yields the same ledger.
func (l *Ledger) Prune(cutoff string) {
	kept := l.Wikipedia[:0]
	for _, e := range l.Wikipedia {
		if e.Date >= cutoff {
			kept = append(kept, e)
		}
	}
	l.Wikipedia = kept

	keptObits := l.Obituaries[:0]
	for _, e := range l.Obituaries {
		if e.Date >= cutoff {
			keptObits = append(keptObits, e)
		}
	}
	l.Obituaries = keptObits
}

// Store handles the load / append / prune / save lifecycle of the
// ledger file.
type Store struct {
	path          string
	retentionDays int
	now           func() time.Time // injectable for tests
}

func NewStore(path string, retentionDays int) *Store {
	return &Store{
		path:          path,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// Load returns the persisted ledger, or an empty one when the file is
// missing or unreadable. Corruption is logged and treated as empty,
// never fatal: losing dedup history must not block the daily run.
func (s *Store) Load() *Ledger {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no seen-items file found, starting fresh", "path", s.path)
		} else {
			logger.Warn("could not read seen-items file, starting fresh", "path", s.path, "error", err)
		}
		return &Ledger{}
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		logger.Warn("could not parse seen-items file, starting fresh", "path", s.path, "error", err)
		return &Ledger{}
	}

	logger.Info("loaded seen-items ledger",
		"wikipedia", len(l.Wikipedia), "obituaries", len(l.Obituaries))
	return &l
}

// Save appends today's identities, prunes entries older than the
// retention window and writes the ledger back.
func (s *Store) Save(l *Ledger, titles []string, obits []ObituaryEntry) error {
	today := s.now().Format(dateLayout)
	cutoff := s.now().AddDate(0, 0, -s.retentionDays).Format(dateLayout)

	for _, t := range titles {
		l.Wikipedia = append(l.Wikipedia, WikipediaEntry{Title: t, Date: today})
	}
	for _, o := range obits {
		o.Date = today
		l.Obituaries = append(l.Obituaries, o)
	}

	l.Prune(cutoff)

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seen-items ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write seen-items file: %w", err)
	}

	logger.Info("saved seen-items ledger",
		"wikipedia", len(l.Wikipedia), "obituaries", len(l.Obituaries))
	return nil
}

// FilterFresh removes already-seen identities, but discards the filter
// entirely when fewer than minFresh would remain; a daily run must not
// fail purely because a date has few entries.
func FilterFresh[T any](items []T, identity func(T) string, seenSet map[string]bool, minFresh int) []T {
	fresh := make([]T, 0, len(items))
	for _, it := range items {
		if !seenSet[identity(it)] {
			fresh = append(fresh, it)
		}
	}
	if len(fresh) < minFresh {
		logger.Warn("seen filter relaxed for this run",
			"fresh", len(fresh), "total", len(items))
		return items
	}
	return fresh
}

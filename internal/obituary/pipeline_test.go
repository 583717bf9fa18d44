package obituary

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractYears(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		desc      string
		text      string
		wantBirth string
		wantDeath string
	}{
		{
			name:      "age in headline",
			title:     "Jane Doe, 85, Dies; Pioneered Deep-Sea Photography",
			wantBirth: "1941",
			wantDeath: "2026",
		},
		{
			name:      "explicit birth year",
			title:     "John Smith has died",
			text:      "Smith, born in 1950, spent his life restoring pipe organs. He died in 2026.",
			wantBirth: "1950",
			wantDeath: "2026",
		},
		{
			name:      "explicit death year in text",
			title:     "A Quiet Legend of the Alps",
			text:      "The climber died in January 2025 after a short illness.",
			wantBirth: "?",
			wantDeath: "2025",
		},
		{
			name:      "nothing found",
			title:     "An Untitled Life",
			wantBirth: "?",
			wantDeath: "2026",
		},
	}

	for _, tt := range tests {
		birth, death := extractYears(tt.title, tt.desc, tt.text, 2026)
		if birth != tt.wantBirth || death != tt.wantDeath {
			t.Errorf("%s: got (%s, %s), want (%s, %s)",
				tt.name, birth, death, tt.wantBirth, tt.wantDeath)
		}
	}
}

func TestCleanTagline(t *testing.T) {
	tests := []struct {
		name  string
		title string
		desc  string
		want  string
	}{
		{
			name:  "obituary suffix stripped",
			title: "Margot Fonteyn obituary",
			desc:  "",
			want:  "Margot Fonteyn.",
		},
		{
			name:  "description preferred and html stripped",
			title: "Short title",
			desc:  "<p>Celebrated conductor who rebuilt a provincial orchestra into a touring force.</p>",
			want:  "Celebrated conductor who rebuilt a provincial orchestra into a touring force.",
		},
		{
			name:  "first sentence only",
			title: "x",
			desc:  "She taught herself celestial navigation at sea. Her crossing logs are now archived.",
			want:  "She taught herself celestial navigation at sea.",
		},
	}

	for _, tt := range tests {
		if got := cleanTagline(tt.title, tt.desc); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCleanTaglineTruncationKeepsRunesWhole(t *testing.T) {
	// One long unbroken "sentence" of multibyte runes so the 250-byte
	// cap lands mid-rune without a boundary-aware cut.
	desc := "A " + strings.Repeat("あ", 120)

	got := cleanTagline("x", desc)
	if !utf8.ValidString(got) {
		t.Errorf("tagline contains invalid UTF-8: %q", got)
	}
	if len(got) > 250 {
		t.Errorf("tagline length = %d bytes, want at most 250", len(got))
	}
}

func TestPersonName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"John Smith, Innovator of the Folding Kayak, Dies at 85", "John Smith"},
		{"Jane Roe obituary", "Jane Roe"},
		{"Ada Quinn: artist who painted with smoke, has died aged 91", "Ada Quinn"},
		{"A Title With No Death Phrasing", "A Title With No Death Phrasing"},
	}

	for _, tt := range tests {
		if got := personName(tt.title); got != tt.want {
			t.Errorf("personName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSelectBest(t *testing.T) {
	candidates := []Obituary{
		{Name: "n1", Source: "The New York Times", Score: 5},
		{Name: "n2", Source: "The New York Times", Score: 9},
		{Name: "n3", Source: "The New York Times", Score: 7},
		{Name: "g1", Source: "The Guardian", Score: 4},
		{Name: "g2", Source: "The Guardian", Score: 8},
	}

	got := SelectBest(candidates, 2)
	if len(got) != 4 {
		t.Fatalf("got %d obituaries, want 4", len(got))
	}

	wantNames := []string{"n2", "n3", "g2", "g1"}
	for i, w := range wantNames {
		if got[i].Name != w {
			t.Errorf("position %d = %s, want %s", i, got[i].Name, w)
		}
	}
}

func TestSelectBestFewerThanCap(t *testing.T) {
	candidates := []Obituary{
		{Name: "only", Source: "The Guardian", Score: 1},
	}
	got := SelectBest(candidates, 2)
	if len(got) != 1 || got[0].Name != "only" {
		t.Errorf("SelectBest = %+v, want the single candidate", got)
	}
}

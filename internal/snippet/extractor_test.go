package snippet

import (
	"strings"
	"testing"
)

const bodyA = "Peter built a small observatory behind the family farmhouse in rural Denmark. " +
	"Every evening the neighbours watched him drag the brass telescope up the hill. " +
	"The village children were convinced the machine could see all the way to the moon."

const bodyB = "Maria kept a notebook of every conversation she had overheard on the tram. " +
	"The notebooks eventually filled an entire wall of the apartment in Vienna. " +
	"Nobody in the family was allowed to read a single page of them."

func TestAnecdotesDedupesGenericLabels(t *testing.T) {
	extract := "Overview\n\n" + bodyA + "\n\nBackground\n\n" + bodyB

	snips := NewExtractor().Anecdotes(extract, nil)
	if len(snips) < 2 {
		t.Fatalf("got %d snippets, want at least 2", len(snips))
	}
	if snips[0].Label != "Life & Character" {
		t.Errorf("first label = %q, want Life & Character", snips[0].Label)
	}
	if snips[1].Label != "Life & Character (II)" {
		t.Errorf("second label = %q, want Life & Character (II)", snips[1].Label)
	}
}

func TestAnecdotesPrefersPersonalSections(t *testing.T) {
	extract := "Career\n\n" + bodyA + "\n\nPersonal life\n\n" + bodyB

	snips := NewExtractor().Anecdotes(extract, nil)
	if len(snips) == 0 {
		t.Fatal("no snippets extracted")
	}
	// Preferred sections are tried first even though Career comes first
	// in the document.
	if snips[0].Label != "Personal Life" {
		t.Errorf("first label = %q, want Personal Life", snips[0].Label)
	}
}

func TestAnecdotesSkipSectionsNeverContribute(t *testing.T) {
	extract := "Filmography\n\n" + bodyA + "\n\nPersonal life\n\n" + bodyB

	snips := NewExtractor().Anecdotes(extract, nil)
	for _, s := range snips {
		if strings.Contains(s.Text, "observatory") {
			t.Errorf("snippet %q drawn from a skip section", s.Label)
		}
	}
}

func TestAnecdotesRespectsLimits(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteString("Chapter\n\n")
		sb.WriteString(bodyA)
		sb.WriteString("\n\n")
	}

	e := NewExtractor()
	snips := e.Anecdotes(sb.String(), nil)
	if len(snips) > e.MaxSnippets {
		t.Errorf("got %d snippets, want at most %d", len(snips), e.MaxSnippets)
	}
	for _, s := range snips {
		if s.Words < e.MinWords {
			t.Errorf("snippet %q has %d words, below the floor of %d", s.Label, s.Words, e.MinWords)
		}
	}
}

func TestAnecdotesNeverExceedTotalBudget(t *testing.T) {
	// One unbroken ~262-word sentence per section: each window overruns
	// the per-snippet budget on its own.
	long := "He was " + strings.Repeat("quite remarkably ", 130) + "tall."
	extract := "Early years\n\n" + long + "\n\nLater years\n\n" + long

	e := NewExtractor()
	snips := e.Anecdotes(extract, nil)

	total := 0
	for _, s := range snips {
		total += s.Words
	}
	if total > e.TotalBudget {
		t.Errorf("total snippet words = %d, above the cap of %d", total, e.TotalBudget)
	}
	if len(snips) != 1 {
		t.Errorf("got %d snippets, want 1 once the first window spends the budget", len(snips))
	}
}

func TestAnecdotesFallsBackToWholeDocument(t *testing.T) {
	e := NewExtractor()
	e.MinWords = 60 // force every section window below the floor

	extract := "Overview\n\nA single usable sentence about the subject lives here alone."
	snips := e.Anecdotes(extract, nil)
	if len(snips) != 1 {
		t.Fatalf("got %d snippets, want 1 fallback", len(snips))
	}
	if snips[0].Label != "Life & Character" {
		t.Errorf("fallback label = %q, want Life & Character", snips[0].Label)
	}
	if snips[0].Text == "" {
		t.Error("fallback snippet has empty text")
	}
}

func TestRich(t *testing.T) {
	tests := []struct {
		name  string
		snips []Snippet
		want  bool
	}{
		{"none", nil, false},
		{"single thin", []Snippet{{Words: 40}}, false},
		{"single heavy", []Snippet{{Words: 120}}, true},
		{"two thin", []Snippet{{Words: 30}, {Words: 30}}, true},
	}

	for _, tt := range tests {
		if got := Rich(tt.snips); got != tt.want {
			t.Errorf("%s: Rich = %v, want %v", tt.name, got, tt.want)
		}
	}
}

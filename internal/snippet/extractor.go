// Package snippet extracts bounded, labelled excerpts from scored
// documents: multi-snippet anecdotes for biographies and a
// paragraph-first teaser for obituaries. Both paths share one
// block-scoring primitive and the rule that assembled text keeps its
// original document order, so excerpts read as narrative rather than
// scattered high-scoring lines.
package snippet

import (
	"regexp"
	"strings"

	"biodigest/internal/sections"
	"biodigest/internal/signals"
)

type Snippet struct {
	Label string
	Text  string
	Words int
}

type Extractor struct {
	TotalBudget     int // words across all snippets of one document
	PerSnippetWords int
	MinWords        int // thinner snippets are discarded
	MaxSnippets     int
	FallbackWords   int // whole-document fallback cap
}

func NewExtractor() *Extractor {
	return &Extractor{
		TotalBudget:     500,
		PerSnippetWords: 200,
		MinWords:        20,
		MaxSnippets:     3,
		FallbackWords:   400,
	}
}

const defaultLabel = "Life & Character"

var genericLabels = map[string]bool{
	"biography": true, "life": true, "overview": true,
	"introduction": true, "background": true, "": true,
}

var romanSuffixes = []string{"II", "III", "IV", "V"}

// Anecdotes selects up to MaxSnippets excerpts from a section-split
// biography, preferred sections first, each snippet windowed around its
// most signal-rich sentence.
func (e *Extractor) Anecdotes(extract string, matched []string) []Snippet {
	patterns := signals.ActivePatterns(matched)

	secs := sections.Split(extract)
	pool := make([]sections.Section, 0, len(secs))
	for _, s := range secs {
		if s.Relevance == sections.Preferred {
			pool = append(pool, s)
		}
	}
	for _, s := range secs {
		if s.Relevance == sections.Normal {
			pool = append(pool, s)
		}
	}

	var (
		snippets   []Snippet
		totalWords int
		usedLabels = map[string]int{}
	)

	for _, sec := range pool {
		if len(snippets) >= e.MaxSnippets || totalWords >= e.TotalBudget {
			break
		}

		sents := usableSentences(sec.Body, 35)
		if len(sents) == 0 {
			continue
		}

		best := richestSentence(sents, patterns)

		budget := e.PerSnippetWords
		if remaining := e.TotalBudget - totalWords; remaining < budget {
			budget = remaining
		}

		// Window starts one sentence before the richest hit so the
		// excerpt carries its own context.
		start := best - 1
		if start < 0 {
			start = 0
		}
		var window []string
		wc := 0
		for i := start; i < len(sents); i++ {
			sw := wordCount(sents[i])
			if wc+sw > budget && len(window) > 0 {
				break
			}
			window = append(window, sents[i])
			wc += sw
		}

		if wc < e.MinWords {
			continue
		}
		// A lone long sentence may stretch past its own budget, but the
		// document total is a hard cap.
		if totalWords+wc > e.TotalBudget {
			continue
		}

		snippets = append(snippets, Snippet{
			Label: dedupeLabel(sectionLabel(sec.Header), usedLabels),
			Text:  strings.Join(window, " "),
			Words: wc,
		})
		totalWords += wc
	}

	if len(snippets) > 0 {
		return snippets
	}
	return e.fallbackSnippet(extract)
}

// fallbackSnippet scans the whole document when no section yielded a
// usable window.
func (e *Extractor) fallbackSnippet(extract string) []Snippet {
	var picked []string
	wc := 0
	for _, s := range usableSentences(extract, 35) {
		sw := wordCount(s)
		if wc+sw > e.FallbackWords {
			break
		}
		picked = append(picked, s)
		wc += sw
	}
	return []Snippet{{
		Label: defaultLabel,
		Text:  strings.Join(picked, " "),
		Words: wc,
	}}
}

// usableSentences splits text and drops short sentences, fragments and
// cultural-reference asides.
func usableSentences(text string, minLen int) []string {
	var out []string
	for _, s := range SplitSentences(text) {
		if len(s) <= minLen || IsCultural(s) || IsFragment(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// richestSentence returns the index of the sentence with the most
// pattern hits, earliest on ties.
func richestSentence(sents []string, patterns []*regexp.Regexp) int {
	bestIdx, bestHits := 0, -1
	for i, s := range sents {
		lower := strings.ToLower(s)
		hits := 0
		for _, p := range patterns {
			if p.MatchString(lower) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestIdx = i
		}
	}
	return bestIdx
}

func sectionLabel(header string) string {
	label := strings.TrimSpace(header)
	if genericLabels[strings.ToLower(label)] {
		return defaultLabel
	}
	return titleCase(label)
}

// dedupeLabel appends a Roman-numeral suffix when a label repeats
// within one document.
func dedupeLabel(label string, used map[string]int) string {
	used[label]++
	count := used[label]
	if count == 1 {
		return label
	}
	idx := count - 2
	if idx >= len(romanSuffixes) {
		idx = len(romanSuffixes) - 1
	}
	return label + " (" + romanSuffixes[idx] + ")"
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}

// Rich reports whether the snippets carry substantive personal content:
// at least two labelled snippets or 100+ words. Dry candidates are
// deferred behind rich ones before selection.
func Rich(snips []Snippet) bool {
	if len(snips) == 0 {
		return false
	}
	total := 0
	for _, s := range snips {
		total += s.Words
	}
	return len(snips) >= 2 || total >= 100
}

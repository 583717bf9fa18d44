// Package sections splits a plain-text biography extract into labelled
// sections and classifies each for extraction relevance. Wikipedia
// extracts mark headers only typographically: a short standalone line
// with no sentence-terminal punctuation.
package sections

import (
	"strings"
	"unicode"
)

type Relevance int

const (
	Normal Relevance = iota
	Skip
	Preferred
)

type Section struct {
	Header    string
	Body      string
	Relevance Relevance
}

// Legacy, cultural and bibliographic sections: noise for a
// personal-anecdote digest, excluded from extraction entirely.
var skipKeywords = []string{
	"popular culture", "in fiction", "cultural legacy", "cultural impact",
	"cultural depictions", "adaptations", "film adaptations", "in media",
	"books about", "novels about", "filmography", "discography",
	"bibliography", "works", "publications", "selected works",
	"see also", "references", "notes", "further reading", "external links",
	"awards", "honours", "honors", "decorations", "legacy",
	"political legacy", "historical legacy", "historiography",
	"critical reception", "critical analysis", "assessment",
	"reputation", "influence", "impact", "commemoration",
	"memorials", "statues", "postage stamps",
}

// Personal-life and character sections carry the anecdotes the digest
// is after; they are tried before anything else.
var preferKeywords = []string{
	"personal life", "private life", "early life", "childhood",
	"early years", "youth", "education", "upbringing",
	"character", "personality", "personal beliefs", "religion",
	"family", "marriages", "relationships", "health",
	"later life", "later years", "death", "final years",
	"anecdotes", "personal", "private",
}

// Classify maps a section header to its relevance by case-insensitive
// substring lookup. Skip wins over prefer.
func Classify(header string) Relevance {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, kw := range skipKeywords {
		if strings.Contains(h, kw) {
			return Skip
		}
	}
	for _, kw := range preferKeywords {
		if strings.Contains(h, kw) {
			return Preferred
		}
	}
	return Normal
}

const maxHeaderLen = 80

// isHeader reports whether a paragraph is a section header: a single
// short line that doesn't end like a sentence and doesn't open with a
// digit (year lists, measurements).
func isHeader(para string) bool {
	lines := strings.Split(para, "\n")
	if len(lines) != 1 {
		return false
	}
	first := strings.TrimSpace(lines[0])
	if first == "" || len(first) >= maxHeaderLen {
		return false
	}
	if strings.ContainsRune(".!?,;", rune(first[len(first)-1])) {
		return false
	}
	r := []rune(first)[0]
	return !unicode.IsDigit(r)
}

// Split breaks an extract into sections on header-like paragraphs.
// Consecutive body paragraphs accumulate under the current header. A
// document with no headers comes back as one Normal section, so
// downstream extraction always has something to work with.
func Split(extract string) []Section {
	var (
		out           []Section
		currentHeader string
		currentChunks []string
	)

	flush := func() {
		if len(currentChunks) == 0 {
			return
		}
		out = append(out, Section{
			Header:    currentHeader,
			Body:      strings.Join(currentChunks, " "),
			Relevance: Classify(currentHeader),
		})
		currentChunks = nil
	}

	for _, para := range strings.Split(extract, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if isHeader(para) {
			flush()
			currentHeader = para
			continue
		}
		currentChunks = append(currentChunks, para)
	}
	flush()

	return out
}

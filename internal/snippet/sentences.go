package snippet

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitSentences breaks text after sentence-terminal punctuation
// followed by whitespace. Hand-rolled because RE2 has no lookbehind;
// splitting on a plain regexp would eat the terminators.
func SplitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

// Words that mark a sentence as a mid-thought continuation fragment.
// Sentences beginning with these were likely torn from a longer one.
var continuationStarts = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true, "yet": true,
	"so": true, "for": true,
	"however": true, "although": true, "though": true, "while": true,
	"whilst": true,
	"which": true, "who": true, "whom": true, "whose": true, "that": true,
	"where": true, "when": true,
	"because": true, "since": true, "after": true, "before": true,
	"until": true, "once": true,
	"his": true, "her": true, "their": true, "its": true,
	"with": true, "through": true, "via": true, "upon": true,
	"among": true, "between": true,
	"as": true, "if": true, "unless": true, "despite": true,
	"including": true, "having": true, "being": true, "making": true,
	"leaving": true,
}

var firstWordSplit = regexp.MustCompile(`[\s,;:]`)

// IsFragment reports whether s reads as a mid-thought fragment rather
// than a properly started sentence.
func IsFragment(s string) bool {
	if s == "" {
		return true
	}
	r := []rune(s)[0]
	if !unicode.IsUpper(r) {
		return true
	}
	first := strings.ToLower(firstWordSplit.Split(s, 2)[0])
	first = strings.TrimRight(first, ".,;:")
	return continuationStarts[first]
}

// Film/TV/stage adaptation chatter. Irrelevant to the person's own
// story, so such sentences never make it into a snippet.
var culturalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bportray\w*\b.*\bfilm\b`),
	regexp.MustCompile(`\bfilm\b.*\bportray\w*\b`),
	regexp.MustCompile(`\btelevision (series|film|movie|show)\b`),
	regexp.MustCompile(`\bdocumentary\b`),
	regexp.MustCompile(`\bnovel\b.*\babout\b`),
	regexp.MustCompile(`\bbiopic\b`),
	regexp.MustCompile(`\bplayed by\b`),
	regexp.MustCompile(`\b(starred|starring)\b`),
	regexp.MustCompile(`\bminiseries\b`),
	regexp.MustCompile(`\bopera\b.*\bbased on\b`),
}

// IsCultural reports whether a sentence is a cultural-reference aside.
func IsCultural(sentence string) bool {
	s := strings.ToLower(sentence)
	for _, p := range culturalPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// Truncate clips s to at most n bytes, backing the cut up to a rune
// boundary so a multibyte character is never split.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

package signals

import (
	"regexp"
	"strings"
)

// Taxonomy binds the shared category registry to tier thresholds and a
// minimum text length. Biographies and obituaries use the same
// categories but different thresholds: obituary texts are shorter, so
// fewer pattern hits are required per category.
type Taxonomy struct {
	primaryThreshold   int
	secondaryThreshold int
	minChars           int
	lengthBonusDiv     int // 0 disables the length bonus
	lengthBonusCap     float64
}

// Biography returns the taxonomy tuned for Wikipedia extracts.
func Biography() *Taxonomy {
	return &Taxonomy{
		primaryThreshold:   4,
		secondaryThreshold: 3,
		minChars:           400,
		lengthBonusDiv:     4000,
		lengthBonusCap:     3,
	}
}

// Obituary returns the taxonomy tuned for shorter obituary texts.
func Obituary() *Taxonomy {
	return &Taxonomy{
		primaryThreshold:   3,
		secondaryThreshold: 2,
		minChars:           200,
	}
}

// Result is the outcome of one scoring pass. Total is a pure function
// of the input text; ranking jitter is the caller's concern.
type Result struct {
	Primary   int
	Secondary int
	Signals   []string
	Total     float64
}

// Score counts, per category, how many patterns appear at least once in
// the text (presence, not occurrences). A category matches when that
// count meets its tier threshold.
func (t *Taxonomy) Score(text string) Result {
	if len(text) < t.minChars {
		return Result{}
	}

	lower := strings.ToLower(text)
	var res Result

	for _, cat := range categories {
		hits := 0
		for _, p := range cat.Patterns {
			if p.MatchString(lower) {
				hits++
			}
		}
		threshold := t.secondaryThreshold
		if cat.Tier == Primary {
			threshold = t.primaryThreshold
		}
		if hits < threshold {
			continue
		}
		if cat.Tier == Primary {
			res.Primary++
		} else {
			res.Secondary++
		}
		res.Signals = append(res.Signals, cat.Name)
	}

	res.Total = float64(res.Primary*10 + res.Secondary*2)
	if t.lengthBonusDiv > 0 {
		bonus := float64(len(text) / t.lengthBonusDiv)
		if bonus > t.lengthBonusCap {
			bonus = t.lengthBonusCap
		}
		res.Total += bonus
	}
	return res
}

// ActivePatterns returns the pattern set for the named categories, used
// by snippet extraction to weight sentences toward the document's own
// matched signals. With no names it falls back to every secondary
// pattern, so extraction still works for weakly-signalled documents.
func ActivePatterns(names []string) []*regexp.Regexp {
	var out []*regexp.Regexp
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, cat := range categories {
		if len(names) == 0 {
			if cat.Tier == Secondary {
				out = append(out, cat.Patterns...)
			}
			continue
		}
		if want[cat.Name] {
			out = append(out, cat.Patterns...)
		}
	}
	return out
}

// CategoryPatterns returns one category's patterns, or nil if unknown.
func CategoryPatterns(name string) []*regexp.Regexp {
	for _, cat := range categories {
		if cat.Name == name {
			return cat.Patterns
		}
	}
	return nil
}

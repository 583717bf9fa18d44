// Package selector picks the final digest entries from a ranked pool
// under era and nationality×field diversity caps, relaxing gracefully
// when the pool is too small to satisfy them.
package selector

import (
	"strconv"
	"strings"
)

// Item is the slice of a candidate the selector needs: a stable
// identity, a birth year for era bucketing and a description for the
// diversity key.
type Item struct {
	ID          string
	BirthYear   string
	Description string
}

type Picker struct {
	Size    int // digest slots to fill
	EraCap  int // max picks per era bucket
	RelaxAt int // caps apply only while the pool exceeds this
}

func NewPicker() Picker {
	return Picker{Size: 4, EraCap: 2, RelaxAt: 6}
}

var nationalities = []string{
	"american", "british", "english", "scottish", "irish", "welsh",
	"french", "german", "italian", "spanish", "russian", "soviet",
	"chinese", "japanese", "indian", "australian", "canadian",
	"argentine", "brazilian", "nigerian", "south african", "egyptian",
	"polish", "dutch", "swedish", "norwegian", "greek", "turkish",
	"mexican", "cuban", "venezuelan", "colombian", "chilean",
}

type fieldEntry struct {
	name     string
	keywords []string
}

// Ordered so key derivation is deterministic when keywords overlap.
var fields = []fieldEntry{
	{"politics", []string{"politician", "president", "prime minister", "senator",
		"minister", "statesman", "diplomat", "governor", "chancellor"}},
	{"military", []string{"general", "admiral", "commander", "colonel", "marshal"}},
	{"science", []string{"scientist", "physicist", "chemist", "biologist",
		"mathematician", "astronomer", "geologist", "inventor", "engineer"}},
	{"arts", []string{"painter", "sculptor", "architect", "artist", "photographer"}},
	{"music", []string{"composer", "musician", "singer", "pianist", "conductor"}},
	{"literature", []string{"author", "writer", "poet", "novelist", "playwright"}},
	{"royalty", []string{"king", "queen", "emperor", "empress", "prince", "princess",
		"monarch", "pharaoh", "tsar", "tsarina"}},
	{"sport", []string{"athlete", "footballer", "boxer", "cricketer", "tennis",
		"cyclist", "swimmer", "jockey"}},
	{"film_tv", []string{"actor", "actress", "director", "filmmaker", "producer"}},
	{"religion", []string{"archbishop", "bishop", "theologian", "pope", "cardinal"}},
	{"activism", []string{"activist", "reformer", "revolutionary", "dissident"}},
}

// DiversityKey derives the nationality×field tag from a candidate's
// short description; "other" on both axes when nothing matches.
func DiversityKey(description string) string {
	desc := strings.ToLower(description)

	nationality := "other"
	for _, n := range nationalities {
		if strings.Contains(desc, n) {
			nationality = n
			break
		}
	}

	field := "other"
	for _, f := range fields {
		for _, kw := range f.keywords {
			if strings.Contains(desc, kw) {
				field = f.name
				break
			}
		}
		if field != "other" {
			break
		}
	}

	return nationality + "_" + field
}

// Era buckets a birth year. Unparseable years land in "unknown".
func Era(birthYear string) string {
	y, err := strconv.Atoi(strings.TrimSpace(birthYear))
	if err != nil {
		return "unknown"
	}
	switch {
	case y < 1700:
		return "pre-1700"
	case y < 1850:
		return "1700-1849"
	case y < 1940:
		return "1850-1939"
	default:
		return "modern"
	}
}

// Pick walks the score-ranked pool and admits items unless they would
// exceed the era cap or reuse a diversity key. Caps are enforced only
// while the pool is comfortably larger than the digest, and any slots
// the constraints leave open are refilled with the next-best items
// regardless of constraints: the output is always min(Size, len(items)).
func (p Picker) Pick(items []Item) []string {
	if len(items) <= p.Size {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.ID
		}
		return out
	}

	enforce := len(items) > p.RelaxAt
	var selected []string
	chosen := make(map[string]bool)
	eraCounts := make(map[string]int)
	keysUsed := make(map[string]bool)

	for _, it := range items {
		era := Era(it.BirthYear)
		key := DiversityKey(it.Description)

		if enforce && eraCounts[era] >= p.EraCap {
			continue
		}
		if enforce && keysUsed[key] {
			continue
		}

		selected = append(selected, it.ID)
		chosen[it.ID] = true
		eraCounts[era]++
		keysUsed[key] = true

		if len(selected) == p.Size {
			return selected
		}
	}

	// Diversity rules left the digest short: refill by rank.
	for _, it := range items {
		if chosen[it.ID] {
			continue
		}
		selected = append(selected, it.ID)
		chosen[it.ID] = true
		if len(selected) == p.Size {
			break
		}
	}
	return selected
}

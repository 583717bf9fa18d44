package wikipedia

import (
	"regexp"
	"strings"
	"unicode"
)

// Occupation, title and nationality words that mark an entry as a
// person. Checked against title+description after the reject list.
var personSignals = compile([]string{
	`\bactor\b`, `\bactress\b`, `\bauthor\b`, `\bwriter\b`, `\bpoet\b`,
	`\bnovelist\b`, `\bplaywright\b`, `\bjournalist\b`, `\beditor\b`,
	`\bpolitician\b`, `\bpresident\b`, `\bprime minister\b`, `\bsenator\b`,
	`\bking\b`, `\bqueen\b`, `\bprince\b`, `\bprincess\b`, `\bmonarch\b`,
	`\bemperor\b`, `\bempress\b`, `\btsarina?\b`, `\bpharaoh\b`,
	`\bgeneral\b`, `\badmiral\b`, `\bcolonel\b`, `\bcommander\b`,
	`\bscientist\b`, `\bphysicist\b`, `\bchemist\b`, `\bbiologist\b`,
	`\bmathematician\b`, `\bastronomer\b`, `\bgeologist\b`,
	`\bphilosopher\b`, `\btheologian\b`, `\barchbishop\b`, `\bbishop\b`,
	`\bcomposer\b`, `\bmusician\b`, `\bsinger\b`, `\bpianist\b`,
	`\bpainter\b`, `\bartist\b`, `\bsculptor\b`, `\barchitect\b`,
	`\bphotographer\b`, `\bdirector\b`, `\bproducer\b`, `\bfilmmaker\b`,
	`\binventor\b`, `\bengineer\b`, `\bexplorer\b`, `\baviator\b`,
	`\bpilot\b`, `\bastronaut\b`, `\bcosmonaut\b`,
	`\bathlete\b`, `\bfootballer\b`, `\bboxer\b`, `\bcricketer\b`,
	`\btennis player\b`, `\bcyclist\b`, `\bswimmer\b`, `\bjockey\b`,
	`\beconomist\b`, `\bpsychologist\b`, `\bsociologist\b`,
	`\bhistorian\b`, `\barchaeologist\b`, `\banthropologist\b`,
	`\bmagician\b`, `\bcomedian\b`, `\bhumorist\b`, `\bsatirist\b`,
	`\bactivist\b`, `\breformer\b`, `\brevolutionary\b`, `\bdissident\b`,
	`\bnobel\b`, `\bborn\b`, `\bdied\b`,
	`\bamerican\b`, `\bbritish\b`, `\benglish\b`, `\bscottish\b`,
	`\birish\b`, `\bwelsh\b`, `\bfrench\b`, `\bgerman\b`,
	`\bitalian\b`, `\bspanish\b`, `\brussian\b`, `\bindian\b`,
	`\bchinese\b`, `\bjapanese\b`, `\baustralian\b`, `\bcanadian\b`,
	`\bargentine\b`, `\bbrazilian\b`, `\bnigerian\b`, `\bsoviet\b`,
})

// Entries naming events, works, places or organisations, never people.
var rejectSignals = compile([]string{
	`\bwar\b`, `\bbattle of\b`, `\btreaty\b`, `\boperation\b`,
	`\bcampaign\b`, `\bsiege\b`, `\binvasion\b`, `\brebellion\b`,
	`\brevolt\b`, `\bfilm\b`, `\bmovie\b`, `\balbum\b`, `\bsong\b`,
	`\bship\b`, `\bvessel\b`, `\baircraft\b`, `\bairline\b`,
	`\bcompany\b`, `\bcorporation\b`, `\binc\.?\b`, `\bltd\.?\b`,
	`\borganis[a-z]+\b`, `\borganiz[a-z]+\b`,
	`\bbuilding\b`, `\bbridge\b`, `\btunnel\b`, `\bstadium\b`,
	`\bnewspaper\b`, `\bmagazine\b`, `\bjournal\b`,
	`\bearthquake\b`, `\bhurricane\b`, `\bcyclone\b`, `\bflood\b`,
	`\bmassacre\b`, `\bbombing\b`,
	`\buniversity\b`, `\bcollege\b`, `\bschool\b`, `\blibrary\b`,
})

func compile(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

var titleStopwords = map[string]bool{
	"of": true, "the": true, "and": true, "in": true, "at": true,
	"by": true, "for": true, "to": true, "on": true,
}

// IsPerson decides whether a title+description pair names a person.
// Reject signals win; then accept signals; finally a 2-4 capitalised
// word title with no stopwords passes as a probable name.
func IsPerson(title, description string) bool {
	combined := strings.ToLower(description + " " + title)
	for _, p := range rejectSignals {
		if p.MatchString(combined) {
			return false
		}
	}
	for _, p := range personSignals {
		if p.MatchString(combined) {
			return true
		}
	}

	parts := strings.Fields(title)
	if len(parts) < 2 || len(parts) > 4 {
		return false
	}
	for _, part := range parts {
		r := []rune(part)
		if len(r) == 0 || !unicode.IsUpper(r[0]) {
			return false
		}
		if titleStopwords[strings.ToLower(part)] {
			return false
		}
	}
	return true
}

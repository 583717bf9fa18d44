package wikipedia

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"biodigest/internal/snippet"
)

// Year matching covers ancient figures (1-999) through modern (1000-2099).
const yearExpr = `(?:1[0-9]{3}|20[0-9]{2}|[1-9]\d{1,2}|\d{3,4})`

var (
	ipaGuide     = regexp.MustCompile(`\(/[^/)]+/[,;]?\s*`)
	bracketNote  = regexp.MustCompile(`\[[^\[\]]{0,200}\]`)
	simpleRange  = regexp.MustCompile(`\(\s*(\b` + yearExpr + `\b)\s*[–\-]\s*(\b` + yearExpr + `\b)\s*\)`)
	complexRange = regexp.MustCompile(`\(\s*[^()]{0,100}?(\b` + yearExpr + `\b)[^()]{0,60}?[–\-]\s*[^()]{0,60}?(\b` + yearExpr + `\b)\s*\)`)
	bornText     = regexp.MustCompile(`(?i)\bborn\b[^.]{0,120}?\b(` + yearExpr + `)\b`)
	diedText     = regexp.MustCompile(`(?i)\bdied\b[^.]{0,80}?\b(` + yearExpr + `)\b`)
	ancientDeath = regexp.MustCompile(`(?i)\b(?:died?|death|executed?|murdered?|killed)\b[^.]{0,120}?\b([1-9]\d{1,3})\b`)
)

type yearRange struct {
	first int
	birth string
	death string
}

// ExtractYears pulls birth and death years from a biography extract.
// All year-range parentheticals in the opening text are collected and
// the one with the earliest first year wins, which avoids grabbing
// career-period ranges like (1940-1970) when the real lifespan range
// appears earlier or later in the sentence. Returns "?" and "present"
// when nothing can be determined.
func ExtractYears(extract, source string, apiYear int) (birth, death string) {
	birth, death = "?", "present"

	head := extract
	if len(head) > 600 {
		head = head[:600]
	}
	head = ipaGuide.ReplaceAllString(head, "(")
	head = bracketNote.ReplaceAllString(head, "")

	var ranges []yearRange
	for _, m := range simpleRange.FindAllStringSubmatch(head, -1) {
		if first, err := strconv.Atoi(m[1]); err == nil {
			ranges = append(ranges, yearRange{first, m[1], m[2]})
		}
	}
	for _, m := range complexRange.FindAllStringSubmatch(head, -1) {
		if first, err := strconv.Atoi(m[1]); err == nil {
			ranges = append(ranges, yearRange{first, m[1], m[2]})
		}
	}
	if len(ranges) > 0 {
		sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].first < ranges[j].first })
		return ranges[0].birth, ranges[0].death
	}

	if apiYear != 0 {
		switch source {
		case "births":
			birth = strconv.Itoa(apiYear)
		case "deaths":
			death = strconv.Itoa(apiYear)
		}
	}

	if birth == "?" {
		if m := bornText.FindStringSubmatch(clip(extract, 1500)); m != nil {
			birth = m[1]
		}
	}
	if m := diedText.FindStringSubmatch(clip(extract, 2000)); m != nil {
		death = m[1]
	}

	// Ancient figures rarely carry a parenthetical; look for a death
	// mention once a pre-1000 birth year is established.
	if death == "present" && birth != "?" {
		if by, err := strconv.Atoi(birth); err == nil && by < 1000 {
			if m := ancientDeath.FindStringSubmatch(clip(extract, 3000)); m != nil {
				if dy, err := strconv.Atoi(m[1]); err == nil && dy >= by {
					death = m[1]
				}
			}
		}
	}

	return birth, death
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

var (
	anyBracket      = regexp.MustCompile(`\[[^\[\]]*\]`)
	anyParenthetic  = regexp.MustCompile(`\([^()]*\)`)
	multiSpace      = regexp.MustCompile(`\s{2,}`)
	yearRangeParen  = regexp.MustCompile(`\(\s*\d{4}\s*[–\-]\s*\d{4}\s*\)`)
	bornDiedYear    = regexp.MustCompile(`(?i)\b(?:born|died)\b\s+\d{4}\b`)
	emptyParens     = regexp.MustCompile(`\(\s*\)`)
	spaceBeforeStop = regexp.MustCompile(`\s+\.`)
)

// CleanTagline returns a single-sentence description free of year
// clutter. The feed's own description is preferred since it is already
// curated and short; otherwise the first clean sentence of the
// biography serves. Years are stripped because the rendered header
// already carries them.
func CleanTagline(apiDescription, extract string) string {
	var desc string

	if d := strings.TrimSpace(apiDescription); len(d) > 15 {
		r := []rune(d)
		desc = strings.ToUpper(string(r[0])) + string(r[1:])
		if !strings.HasSuffix(desc, ".") {
			desc += "."
		}
	} else {
		firstPara := extract
		if idx := strings.Index(extract, "\n\n"); idx >= 0 {
			firstPara = extract[:idx]
		} else {
			firstPara = clip(extract, 800)
		}
		// Nested parentheticals need repeated passes.
		for i := 0; i < 6; i++ {
			firstPara = anyBracket.ReplaceAllString(firstPara, "")
			firstPara = anyParenthetic.ReplaceAllString(firstPara, "")
		}
		firstPara = strings.TrimSpace(multiSpace.ReplaceAllString(firstPara, " "))

		sentences := snippet.SplitSentences(firstPara)
		for i, sent := range sentences {
			if i >= 4 {
				break
			}
			sent = strings.TrimSpace(sent)
			if len(sent) > 40 {
				desc = sent
				break
			}
		}
		if desc == "" {
			desc = clip(firstPara, 200)
		}
	}

	desc = yearRangeParen.ReplaceAllString(desc, "")
	desc = bornDiedYear.ReplaceAllString(desc, "")
	desc = emptyParens.ReplaceAllString(desc, "")
	desc = spaceBeforeStop.ReplaceAllString(desc, ".")
	desc = strings.TrimSpace(multiSpace.ReplaceAllString(desc, " "))
	if desc != "" && !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	return desc
}

package snippet

import (
	"regexp"
	"sort"
	"strings"

	"biodigest/internal/signals"
)

var (
	paragraphSplit = regexp.MustCompile(`\n\n+`)
	quotedSpeech   = regexp.MustCompile(`["“‘][^"”’]{15,}["”’]`)
	speechVerbs    = regexp.MustCompile(`(?i)\b(?:he|she|they)\s+(?:said|told|recalled|wrote|added|continued|explained|noted|remembered)\b`)
)

const (
	teaserParagraphs = 3
	teaserSentences  = 6
	minParagraphLen  = 80
	flatTextCap      = 600
)

// ScoreBlock rates a sentence or paragraph for editorial interest:
// pattern hits plus bonuses for quoted speech, speech attribution,
// vivid detail, origin-story context, and a lede preference for the
// opening third of the document.
func ScoreBlock(block string, patterns []*regexp.Regexp, position, total int) float64 {
	lower := strings.ToLower(block)

	score := 0.0
	for _, p := range patterns {
		if p.MatchString(lower) {
			score++
		}
	}

	if quotedSpeech.MatchString(block) {
		score += 2.5
	}
	if speechVerbs.MatchString(block) {
		score += 1.0
	}

	score += cappedDensity(lower, signals.CategoryPatterns("vivid_detail"), 0.5, 1.5)
	score += cappedDensity(lower, signals.CategoryPatterns("origin_story"), 0.3, 0.9)

	lede := float64(total) * 0.30
	if lede < 1 {
		lede = 1
	}
	if float64(position) < lede {
		score += 0.4
	}

	return score
}

func cappedDensity(lower string, patterns []*regexp.Regexp, per, limit float64) float64 {
	bonus := 0.0
	for _, p := range patterns {
		if p.MatchString(lower) {
			bonus += per
		}
	}
	if bonus > limit {
		bonus = limit
	}
	return bonus
}

// Teaser assembles an obituary teaser. With three or more real
// paragraphs it picks the top three by score and re-sorts them into
// document order, so the result reads as a flowing story. Flat text
// (og:description, RSS descriptions) falls back to sentence selection.
func Teaser(text string, matched []string) string {
	if text == "" {
		return ""
	}
	patterns := signals.ActivePatterns(matched)

	var paras []string
	for _, p := range paragraphSplit.Split(text, -1) {
		p = strings.TrimSpace(p)
		if len(p) > minParagraphLen {
			paras = append(paras, p)
		}
	}

	if len(paras) >= teaserParagraphs {
		top := topBlocks(paras, patterns, teaserParagraphs)
		return strings.Join(top, "\n\n")
	}

	var sents []string
	for _, s := range SplitSentences(text) {
		if len(s) > 40 && len(s) < 400 {
			sents = append(sents, s)
		}
	}
	if len(sents) == 0 {
		return strings.TrimSpace(Truncate(text, flatTextCap))
	}

	return strings.Join(topBlocks(sents, patterns, teaserSentences), " ")
}

// topBlocks returns the n highest-scoring blocks restored to their
// original order. Never reorder by score when assembling final text.
func topBlocks(blocks []string, patterns []*regexp.Regexp, n int) []string {
	type scored struct {
		score float64
		idx   int
	}
	ranked := make([]scored, len(blocks))
	for i, b := range blocks {
		ranked[i] = scored{ScoreBlock(b, patterns, i, len(blocks)), i}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].idx < ranked[j].idx
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	idxs := make([]int, n)
	for i := 0; i < n; i++ {
		idxs[i] = ranked[i].idx
	}
	sort.Ints(idxs)

	out := make([]string, n)
	for i, idx := range idxs {
		out[i] = blocks[idx]
	}
	return out
}

// Package obituary collects recent obituaries from configured RSS
// feeds, resolves readable article copies, scores them with the shared
// editorial taxonomy and distills copyright-safe teasers.
package obituary

import (
	"context"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"biodigest/internal/archive"
	"biodigest/internal/logger"
	"biodigest/internal/signals"
	"biodigest/internal/snippet"
)

// Obituary is a fully processed candidate ready for selection and
// rendering.
type Obituary struct {
	Name      string
	Title     string
	Link      string // original article URL
	ReadURL   string // best readable link (archive copy when needed)
	Source    string
	Tagline   string
	Teaser    string
	BirthYear string
	DeathYear string
	Signals   []string
	Score     float64
}

type Pipeline struct {
	parser      *gofeed.Parser
	resolver    *archive.Resolver
	taxonomy    *signals.Taxonomy
	recencyDays int
	deepPerFeed int
	minChars    int // below this the resolved text is too thin to score
	jitterMax   float64
	rng         *rand.Rand
	now         func() time.Time
	pause       func() // politeness gap between archive resolutions
}

func NewPipeline(resolver *archive.Resolver, userAgent string, recencyDays, deepPerFeed, minChars int, jitterMax float64, rng *rand.Rand) *Pipeline {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &Pipeline{
		parser:      parser,
		resolver:    resolver,
		taxonomy:    signals.Obituary(),
		recencyDays: recencyDays,
		deepPerFeed: deepPerFeed,
		minChars:    minChars,
		jitterMax:   jitterMax,
		rng:         rng,
		now:         time.Now,
		pause:       func() { time.Sleep(time.Second) },
	}
}

type rawItem struct {
	title string
	link  string
	desc  string
	quick float64
}

// Collect walks every feed: recent items are quick-scored on their RSS
// description, the strongest few per feed get full archive resolution
// and deep scoring. A failing feed is logged and skipped, never fatal.
func (p *Pipeline) Collect(ctx context.Context, feeds []Feed) []Obituary {
	cutoff := p.now().AddDate(0, 0, -p.recencyDays)

	var out []Obituary
	for _, feed := range feeds {
		items := p.fetchRecent(ctx, feed, cutoff)
		if len(items) == 0 {
			continue
		}

		sort.SliceStable(items, func(i, j int) bool { return items[i].quick > items[j].quick })
		if len(items) > p.deepPerFeed {
			items = items[:p.deepPerFeed]
		}

		for _, item := range items {
			out = append(out, p.process(ctx, feed, item))
			p.pause()
		}
	}
	return out
}

func (p *Pipeline) fetchRecent(ctx context.Context, feed Feed, cutoff time.Time) []rawItem {
	parsed, err := p.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		logger.Warn("obituary feed fetch failed", "feed", feed.Name, "error", err)
		return nil
	}
	logger.Info("obituary feed fetched", "feed", feed.Name, "items", len(parsed.Items))

	var items []rawItem
	for _, it := range parsed.Items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		// Undated items pass: dropping them is worse than an occasional
		// stale entry.
		if it.PublishedParsed != nil && it.PublishedParsed.Before(cutoff) {
			continue
		}
		desc := strings.TrimSpace(it.Description)
		items = append(items, rawItem{
			title: title,
			link:  link,
			desc:  desc,
			quick: p.score(desc),
		})
	}
	logger.Info("obituary feed recent items", "feed", feed.Name, "count", len(items))
	return items
}

func (p *Pipeline) process(ctx context.Context, feed Feed, item rawItem) Obituary {
	logger.Info("resolving obituary article", "feed", feed.Name, "title", item.title)
	res := p.resolver.Resolve(ctx, item.link)

	readURL := res.URL
	if feed.ForceArchive && !strings.Contains(readURL, "archive.ph/") {
		readURL = archive.MirrorURL(item.link)
		logger.Info("read link forced to archive mirror", "feed", feed.Name, "url", readURL)
	}

	// Deep scoring prefers the full article; a thin resolution falls
	// back to the RSS description.
	scoringText := res.Text
	if len(scoringText) <= p.minChars {
		scoringText = item.desc
	}
	scored := p.taxonomy.Score(scoringText)

	teaserText := res.Text
	if teaserText == "" {
		teaserText = item.desc
	}

	birth, death := extractYears(item.title, item.desc, res.Text, p.now().Year())

	return Obituary{
		Name:      personName(item.title),
		Title:     item.title,
		Link:      item.link,
		ReadURL:   readURL,
		Source:    feed.Name,
		Tagline:   cleanTagline(item.title, item.desc),
		Teaser:    snippet.Teaser(teaserText, scored.Signals),
		BirthYear: birth,
		DeathYear: death,
		Signals:   scored.Signals,
		Score:     scored.Total + p.jitter(),
	}
}

func (p *Pipeline) score(text string) float64 {
	return p.taxonomy.Score(text).Total + p.jitter()
}

// jitter breaks score ties so a borderline candidate is not pinned to
// the same rank every single day.
func (p *Pipeline) jitter() float64 {
	if p.jitterMax <= 0 {
		return 0
	}
	return p.rng.Float64() * p.jitterMax
}

// SelectBest keeps the top n per publication, preserving the feed order
// of the input so the rendered digest groups sources consistently.
func SelectBest(candidates []Obituary, perSource int) []Obituary {
	var sourceOrder []string
	bySource := make(map[string][]Obituary)
	for _, c := range candidates {
		if _, ok := bySource[c.Source]; !ok {
			sourceOrder = append(sourceOrder, c.Source)
		}
		bySource[c.Source] = append(bySource[c.Source], c)
	}

	var out []Obituary
	for _, source := range sourceOrder {
		group := bySource[source]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Score > group[j].Score })
		if len(group) > perSource {
			group = group[:perSource]
		}
		out = append(out, group...)
	}
	return out
}

var (
	agePattern       = regexp.MustCompile(`(?i)\b(\d{2,3})\b[,.]?\s*(?:dies|dead|has died|who died)`)
	deathYearPattern = regexp.MustCompile(`\b(20[2-9][0-9])\b`)
	birthYearPattern = regexp.MustCompile(`(?i)(?:born|b\.)\s*(?:in\s+)?(\b(?:19|20)\d{2}\b)`)

	obitSuffix     = regexp.MustCompile(`(?i)\s*[–\-|]\s*obituar\w*\s*$`)
	obitWord       = regexp.MustCompile(`(?i)\s*obituar\w*:?\s*`)
	htmlTag        = regexp.MustCompile(`<[^>]+>`)
	collapseSpace  = regexp.MustCompile(`\s+`)
	nameDeathsTail = regexp.MustCompile(`(?i)\s*[,:].*(?:dies?|dead|obituary|has died).*$`)
	nameObitTail   = regexp.MustCompile(`(?i)\s*obituary\s*$`)
)

// extractYears reads birth and death years from the headline and the
// article opening. "Name, 85, Dies" style ages yield a computed birth
// year when no explicit one appears.
func extractYears(title, desc, text string, currentYear int) (birth, death string) {
	combined := title + " " + desc + " " + snippet.Truncate(text, 500)

	death = strconv.Itoa(currentYear)
	if m := deathYearPattern.FindStringSubmatch(combined); m != nil {
		death = m[1]
	}

	birth = "?"
	if m := birthYearPattern.FindStringSubmatch(combined); m != nil {
		birth = m[1]
	} else if m := agePattern.FindStringSubmatch(combined); m != nil {
		age, err1 := strconv.Atoi(m[1])
		dy, err2 := strconv.Atoi(death)
		if err1 == nil && err2 == nil {
			birth = strconv.Itoa(dy - age)
		}
	}
	return birth, death
}

// cleanTagline builds a one-sentence description from the RSS fields,
// with publication boilerplate like "obituary" suffixes stripped.
func cleanTagline(title, desc string) string {
	tag := title
	if len(desc) > 30 {
		tag = desc
	}
	tag = obitSuffix.ReplaceAllString(tag, "")
	tag = obitWord.ReplaceAllString(tag, " ")
	tag = htmlTag.ReplaceAllString(tag, "")
	tag = strings.TrimSpace(collapseSpace.ReplaceAllString(tag, " "))

	if sents := snippet.SplitSentences(tag); len(sents) > 0 {
		tag = sents[0]
	}
	if tag != "" && !strings.HasSuffix(tag, ".") {
		tag += "."
	}
	return snippet.Truncate(tag, 250)
}

// personName strips "dies at 85" style headline tails to leave just the
// person.
func personName(title string) string {
	name := nameDeathsTail.ReplaceAllString(title, "")
	name = strings.TrimSpace(nameObitTail.ReplaceAllString(name, ""))
	if name == "" {
		return title
	}
	return name
}

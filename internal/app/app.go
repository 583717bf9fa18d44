// Package app wires the daily pipeline together: candidates in, one
// email out, ledger updated.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"biodigest/internal/archive"
	"biodigest/internal/config"
	"biodigest/internal/digest"
	"biodigest/internal/httpget"
	"biodigest/internal/logger"
	"biodigest/internal/metrics"
	"biodigest/internal/obituary"
	"biodigest/internal/ratelimit"
	"biodigest/internal/retry"
	"biodigest/internal/seen"
	"biodigest/internal/selector"
	"biodigest/internal/signals"
	"biodigest/internal/snippet"
	"biodigest/internal/wikipedia"
)

type scoredPerson struct {
	candidate wikipedia.Candidate
	birthYear string
	deathYear string
	tagline   string
	snippets  []snippet.Snippet
	result    signals.Result
	rankScore float64
}

// Run executes one full digest cycle. Only two failures are fatal: an
// empty candidate pool and a failed email send. Everything else
// degrades with a log line.
func Run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	throttle := ratelimit.New(cfg.ProviderDelay)
	client := httpget.New(cfg.RequestTimeout, cfg.UserAgent, retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     true,
	}, throttle)

	today := time.Now()
	dateDisplay := today.Format("2 January 2006")
	logger.Info("digest run starting", "date", today.Format("2006-01-02"))

	store := seen.NewStore(cfg.SeenFilePath, cfg.SeenRetentionDays)
	ledger := store.Load()

	people, selectedTitles, err := buildPeople(ctx, cfg, client, ledger, rng)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	obits := collectObituaries(ctx, cfg, client, ledger, rng)

	msg, err := digest.NewRenderer().Render(people, obits, dateDisplay)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	sender := digest.NewSender(digest.SenderConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		User:      cfg.SMTPUser,
		Pass:      cfg.SMTPPass,
		FromEmail: cfg.FromEmail,
		Recipient: cfg.Recipient,
	})
	if err := sender.Send(msg); err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}
	metrics.Global.IncrementDigestsSent()

	obitEntries := make([]seen.ObituaryEntry, 0, len(obits))
	for _, o := range obits {
		obitEntries = append(obitEntries, seen.ObituaryEntry{URL: o.Link, Name: o.Name})
	}
	if err := store.Save(ledger, selectedTitles, obitEntries); err != nil {
		// The email went out; a ledger write failure only risks a repeat.
		logger.Error("could not persist seen-items ledger", "error", err)
	}

	metrics.Global.RecordProcessingTime(time.Since(start))
	metrics.Global.SetLastRun()
	logger.Info("digest run complete",
		"people", len(people), "obituaries", len(obits), "elapsed", time.Since(start))
	return nil
}

// buildPeople fetches, scores and selects the biography entries.
func buildPeople(ctx context.Context, cfg *config.Config, client *httpget.Client, ledger *seen.Ledger, rng *rand.Rand) ([]digest.Person, []string, error) {
	wiki := wikipedia.NewClient(client)

	candidates := wiki.Candidates(ctx, time.Now())
	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("no person candidates found for today")
	}

	fresh := seen.FilterFresh(candidates, func(c wikipedia.Candidate) string {
		return c.Title
	}, ledger.SeenTitles(), cfg.SeenMinFresh)
	metrics.Global.AddSeenFiltered(int64(len(candidates) - len(fresh)))
	logger.Info("candidate pool",
		"total", len(candidates), "fresh", len(fresh))

	taxonomy := signals.Biography()
	extractor := snippet.NewExtractor()
	extractor.TotalBudget = cfg.SnippetTotalBudget
	extractor.PerSnippetWords = cfg.SnippetWordBudget
	extractor.MinWords = cfg.SnippetMinWords
	extractor.MaxSnippets = cfg.SnippetMaxCount
	extractor.FallbackWords = cfg.FallbackWordBudget

	var scored []scoredPerson
	for _, cand := range fresh {
		logger.Info("fetching biography", "title", cand.Title)
		extract := wiki.Biography(ctx, cand.Title)
		if len(extract) < cfg.MinBiographyChars {
			logger.Info("skipping candidate, biography too short or missing", "title", cand.Title)
			metrics.Global.IncrementBiographiesSkipped()
			continue
		}

		birth, death := wikipedia.ExtractYears(extract, cand.Source, cand.APIYear)
		result := taxonomy.Score(extract)

		scored = append(scored, scoredPerson{
			candidate: cand,
			birthYear: birth,
			deathYear: death,
			tagline:   wikipedia.CleanTagline(cand.Description, extract),
			snippets:  extractor.Anecdotes(extract, result.Signals),
			result:    result,
			rankScore: result.Total + rng.Float64()*cfg.JitterMax,
		})
		metrics.Global.IncrementCandidatesProcessed()
	}
	if len(scored) == 0 {
		return nil, nil, fmt.Errorf("no scoreable biographies found")
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].rankScore > scored[j].rankScore })

	// Dry biographies are deferred behind anything with real anecdotes.
	var rich, dry []scoredPerson
	for _, p := range scored {
		if snippet.Rich(p.snippets) {
			rich = append(rich, p)
		} else {
			dry = append(dry, p)
		}
	}
	logger.Info("anecdote quality", "rich", len(rich), "dry", len(dry))
	ordered := append(rich, dry...)

	picker := selector.Picker{Size: cfg.DigestSize, EraCap: cfg.EraCap, RelaxAt: cfg.RelaxPoolSize}
	items := make([]selector.Item, len(ordered))
	byTitle := make(map[string]scoredPerson, len(ordered))
	for i, p := range ordered {
		items[i] = selector.Item{
			ID:          p.candidate.Title,
			BirthYear:   p.birthYear,
			Description: p.candidate.Description,
		}
		byTitle[p.candidate.Title] = p
	}
	titles := picker.Pick(items)
	logger.Info("people selected", "titles", titles)

	people := make([]digest.Person, 0, len(titles))
	for _, title := range titles {
		p := byTitle[title]
		people = append(people, digest.Person{
			Name:      p.candidate.Name,
			Tagline:   p.tagline,
			BirthYear: p.birthYear,
			DeathYear: p.deathYear,
			URL:       wikipedia.PageURL(title),
			Source:    p.candidate.Source,
			Snippets:  p.snippets,
			Signals:   p.result.Signals,
		})
	}
	return people, titles, nil
}

// collectObituaries runs the obituary section. Any failure here is
// logged and yields an empty section, never a failed run.
func collectObituaries(ctx context.Context, cfg *config.Config, client *httpget.Client, ledger *seen.Ledger, rng *rand.Rand) (obits []obituary.Obituary) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("obituary section panicked, continuing without it", "panic", r)
			obits = nil
		}
	}()

	feeds, err := obituary.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		logger.Error("obituary section skipped", "error", err)
		return nil
	}

	resolver := archive.NewResolver(client, cfg.ArchiveAcceptChars)
	pipeline := obituary.NewPipeline(resolver, cfg.UserAgent,
		cfg.ObitRecencyDays, cfg.ObitDeepPerFeed, cfg.MinObituaryChars, cfg.ObitJitterMax, rng)

	candidates := pipeline.Collect(ctx, feeds)
	for range candidates {
		metrics.Global.IncrementObituariesResolved()
	}

	fresh := seen.FilterFresh(candidates, func(o obituary.Obituary) string {
		return o.Link
	}, ledger.SeenURLs(), 0)
	metrics.Global.AddSeenFiltered(int64(len(candidates) - len(fresh)))
	logger.Info("obituary candidates", "total", len(candidates), "fresh", len(fresh))

	if len(fresh) == 0 {
		logger.Warn("no fresh obituary candidates, skipping section")
		return nil
	}
	return obituary.SelectBest(fresh, cfg.ObitPerSource)
}

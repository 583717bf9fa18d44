// Package wikipedia fetches person candidates for a date from the
// On This Day feed and their plain-text biography extracts. Entity
// classification is heuristic: pattern lookups over title plus
// description, with a structural name check as the last resort.
package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"biodigest/internal/httpget"
	"biodigest/internal/logger"
	"biodigest/internal/metrics"
)

const (
	restBase  = "https://en.wikipedia.org/api/rest_v1/feed/onthisday"
	actionAPI = "https://en.wikipedia.org/w/api.php"
	pageBase  = "https://en.wikipedia.org/wiki/"
)

// Candidate is a person entry for the target date, before any
// biography has been fetched.
type Candidate struct {
	Name        string
	Title       string
	Description string
	APIYear     int
	Source      string // "births" or "deaths"
}

type Client struct {
	http *httpget.Client
}

func NewClient(http *httpget.Client) *Client {
	return &Client{http: http}
}

// PageURL returns the canonical article link for a title.
func PageURL(title string) string {
	return pageBase + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

type onThisDayResponse struct {
	Births []onThisDayEntry `json:"births"`
	Deaths []onThisDayEntry `json:"deaths"`
}

type onThisDayEntry struct {
	Year  int `json:"year"`
	Pages []struct {
		Title           string `json:"title"`
		NormalizedTitle string `json:"normalizedtitle"`
		Description     string `json:"description"`
	} `json:"pages"`
}

// Candidates fetches person candidates for the date. Primary source is
// the REST On This Day feed; if it returns nothing, the date article's
// Births/Deaths wikitext is parsed instead.
func (c *Client) Candidates(ctx context.Context, date time.Time) []Candidate {
	var out []Candidate
	dedupe := make(map[string]bool)

	restSucceeded := false
	for _, category := range []string{"births", "deaths"} {
		endpoint := fmt.Sprintf("%s/%s/%02d/%02d", restBase, category, int(date.Month()), date.Day())

		var resp onThisDayResponse
		if err := c.http.JSON(ctx, endpoint, &resp); err != nil {
			logger.Warn("on-this-day fetch failed", "category", category, "error", err)
			metrics.Global.IncrementFetchFailures()
			continue
		}

		entries := resp.Births
		if category == "deaths" {
			entries = resp.Deaths
		}
		logger.Info("on-this-day entries", "category", category, "count", len(entries))
		if len(entries) > 0 {
			restSucceeded = true
		}

		for _, entry := range entries {
			for _, page := range entry.Pages {
				title := strings.TrimSpace(page.Title)
				description := strings.TrimSpace(page.Description)
				if title == "" || dedupe[title] {
					continue
				}
				if !IsPerson(title, description) {
					continue
				}
				dedupe[title] = true

				name := page.NormalizedTitle
				if name == "" {
					name = title
				}
				out = append(out, Candidate{
					Name:        name,
					Title:       title,
					Description: description,
					APIYear:     entry.Year,
					Source:      category,
				})
			}
		}
	}

	if restSucceeded {
		logger.Info("on-this-day feed succeeded", "candidates", len(out))
		return out
	}

	logger.Warn("on-this-day feed returned no data, falling back to date article")
	return c.candidatesFromDateArticle(ctx, date, dedupe)
}

type revisionsResponse struct {
	Query struct {
		Pages []struct {
			Missing   bool `json:"missing"`
			Revisions []struct {
				Slots struct {
					Main struct {
						Content string `json:"content"`
					} `json:"main"`
				} `json:"slots"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

var (
	wikiLinkPattern = regexp.MustCompile(`\[\[([^\|\]#]+)(?:\|[^\]]+)?\]\]`)
	listYearPattern = regexp.MustCompile(`^\*\s*(\d{4})`)
	sectionPattern  = regexp.MustCompile(`^==\s*(\w+)`)
	numericTitle    = regexp.MustCompile(`^\d+$`)
)

// candidatesFromDateArticle parses the Births and Deaths sections of
// the date's own article (e.g. "February_25") as a fallback source.
func (c *Client) candidatesFromDateArticle(ctx context.Context, date time.Time, dedupe map[string]bool) []Candidate {
	dateTitle := fmt.Sprintf("%s_%d", date.Month().String(), date.Day())

	params := url.Values{
		"action":        {"query"},
		"titles":        {dateTitle},
		"prop":          {"revisions"},
		"rvprop":        {"content"},
		"rvslots":       {"main"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	var resp revisionsResponse
	if err := c.http.JSON(ctx, actionAPI+"?"+params.Encode(), &resp); err != nil {
		logger.Error("could not fetch date article", "title", dateTitle, "error", err)
		return nil
	}
	if len(resp.Query.Pages) == 0 || resp.Query.Pages[0].Missing ||
		len(resp.Query.Pages[0].Revisions) == 0 {
		logger.Error("date article missing", "title", dateTitle)
		return nil
	}
	wikitext := resp.Query.Pages[0].Revisions[0].Slots.Main.Content

	var out []Candidate
	inSection := false
	sectionType := "births"

	for _, line := range strings.Split(wikitext, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		switch {
		case strings.HasPrefix(lower, "==") && strings.Contains(lower, "births"):
			inSection = true
			sectionType = "births"
			continue
		case strings.HasPrefix(lower, "==") && strings.Contains(lower, "deaths"):
			inSection = true
			sectionType = "deaths"
			continue
		case sectionPattern.MatchString(lower) && inSection:
			inSection = false
			continue
		}
		if !inSection {
			continue
		}

		year := 0
		if m := listYearPattern.FindStringSubmatch(line); m != nil {
			fmt.Sscanf(m[1], "%d", &year)
		}

		for _, m := range wikiLinkPattern.FindAllStringSubmatch(line, -1) {
			linked := strings.TrimSpace(m[1])
			if numericTitle.MatchString(linked) || dedupe[linked] {
				continue
			}
			if !IsPerson(linked, "") {
				continue
			}
			dedupe[linked] = true
			out = append(out, Candidate{
				Name:    linked,
				Title:   linked,
				APIYear: year,
				Source:  sectionType,
			})
		}
	}

	logger.Info("date-article fallback candidates", "count", len(out))
	return out
}

type extractsResponse struct {
	Query struct {
		Pages []struct {
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Biography fetches the plain-text extract for a title. Empty or short
// text is a valid skip-this-candidate outcome, not an error.
func (c *Client) Biography(ctx context.Context, title string) string {
	params := url.Values{
		"action":          {"query"},
		"titles":          {title},
		"prop":            {"extracts"},
		"explaintext":     {"1"},
		"exsectionformat": {"plain"},
		"format":          {"json"},
		"formatversion":   {"2"},
	}

	var resp extractsResponse
	if err := c.http.JSON(ctx, actionAPI+"?"+params.Encode(), &resp); err != nil {
		logger.Warn("biography fetch failed", "title", title, "error", err)
		metrics.Global.IncrementFetchFailures()
		return ""
	}
	if len(resp.Query.Pages) == 0 || resp.Query.Pages[0].Missing {
		return ""
	}
	return resp.Query.Pages[0].Extract
}

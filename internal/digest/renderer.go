// Package digest renders the selected people and obituaries into the
// daily email and delivers it over SMTP.
package digest

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"biodigest/internal/obituary"
	"biodigest/internal/signals"
	"biodigest/internal/snippet"
)

const (
	personTagLimit = 4
	obitTagLimit   = 3
)

// Person is a fully processed biography entry ready for rendering.
type Person struct {
	Name      string
	Tagline   string
	BirthYear string
	DeathYear string
	URL       string
	Source    string // "births" or "deaths"
	Snippets  []snippet.Snippet
	Signals   []string
}

// RenderedMessage is a ready-to-send email body pair.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

type personView struct {
	SourceLabel string
	Name        string
	Years       string
	Tagline     string
	Snippets    []snippet.Snippet
	Tags        []string
	URL         string
}

type obituaryView struct {
	SourceLabel string
	Name        string
	Years       string
	Tagline     string
	TeaserParas []string
	Tags        []string
	URL         string
}

type emailView struct {
	DateDisplay string
	People      []personView
	Obituaries  []obituaryView
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("digest").Parse(emailHTMLTemplate))}
}

var paragraphBreaks = regexp.MustCompile(`\n\n+`)

// Render produces the digest email with an HTML body and a plain-text
// alternative.
func (r *Renderer) Render(people []Person, obits []obituary.Obituary, dateDisplay string) (*RenderedMessage, error) {
	view := emailView{DateDisplay: dateDisplay}

	for _, p := range people {
		sourceLabel := "Born on this date"
		if p.Source == "deaths" {
			sourceLabel = "Died on this date"
		}
		view.People = append(view.People, personView{
			SourceLabel: sourceLabel,
			Name:        p.Name,
			Years:       yearSpan(p.BirthYear, p.DeathYear),
			Tagline:     p.Tagline,
			Snippets:    p.Snippets,
			Tags:        tagLabels(p.Signals, personTagLimit),
			URL:         p.URL,
		})
	}

	for _, o := range obits {
		view.Obituaries = append(view.Obituaries, obituaryView{
			SourceLabel: o.Source,
			Name:        o.Name,
			Years:       yearSpan(o.BirthYear, o.DeathYear),
			Tagline:     o.Tagline,
			TeaserParas: splitParagraphs(o.Teaser),
			Tags:        tagLabels(o.Signals, obitTagLimit),
			URL:         o.ReadURL,
		})
	}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, view); err != nil {
		return nil, fmt.Errorf("failed to render digest template: %w", err)
	}

	return &RenderedMessage{
		Subject: fmt.Sprintf("Wikipedia Biographical Digest — %s", dateDisplay),
		Text:    renderPlainText(view),
		HTML:    htmlBuf.String(),
	}, nil
}

func yearSpan(birth, death string) string {
	if birth == "?" || birth == "" {
		return ""
	}
	return fmt.Sprintf("(%s–%s)", birth, death)
}

func tagLabels(names []string, limit int) []string {
	if len(names) > limit {
		names = names[:limit]
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if label, ok := signals.Labels[n]; ok {
			out = append(out, label)
		} else {
			out = append(out, n)
		}
	}
	return out
}

func splitParagraphs(teaser string) []string {
	var out []string
	for _, p := range paragraphBreaks.Split(teaser, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// renderPlainText is the fallback for clients that refuse HTML.
func renderPlainText(view emailView) string {
	var sb strings.Builder

	sb.WriteString("Wikipedia Biographical Digest — " + view.DateDisplay + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, p := range view.People {
		sb.WriteString(fmt.Sprintf("%s %s\n", p.Name, p.Years))
		sb.WriteString(p.SourceLabel + "\n")
		if p.Tagline != "" {
			sb.WriteString(p.Tagline + "\n")
		}
		sb.WriteString("\n")
		for _, s := range p.Snippets {
			if s.Label != "" {
				sb.WriteString(strings.ToUpper(s.Label) + "\n")
			}
			sb.WriteString(s.Text + "\n\n")
		}
		sb.WriteString("Read more: " + p.URL + "\n")
		sb.WriteString(strings.Repeat("-", 50) + "\n\n")
	}

	if len(view.Obituaries) > 0 {
		sb.WriteString("OBITUARY DIGEST\n")
		sb.WriteString(strings.Repeat("=", 50) + "\n\n")
		for _, o := range view.Obituaries {
			sb.WriteString(fmt.Sprintf("%s %s (%s)\n", o.Name, o.Years, o.SourceLabel))
			if o.Tagline != "" {
				sb.WriteString(o.Tagline + "\n")
			}
			sb.WriteString("\n")
			for _, p := range o.TeaserParas {
				sb.WriteString(p + "\n\n")
			}
			sb.WriteString("Read more: " + o.URL + "\n")
			sb.WriteString(strings.Repeat("-", 50) + "\n\n")
		}
	}

	return sb.String()
}

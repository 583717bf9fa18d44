package archive

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"biodigest/internal/snippet"
)

// Markup leaking out of scraped pages is a known failure mode: some
// sites serve menu JavaScript inside <p> tags. Sentences matching any
// of these are dropped, not treated as fatal.
var contaminationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`=>\s*\{`),
	regexp.MustCompile(`\bforEach\s*\(`),
	regexp.MustCompile(`\baddEventListener\s*\(`),
	regexp.MustCompile(`\bquerySelector\s*\(`),
	regexp.MustCompile(`\bgetAttribute\s*\(`),
	regexp.MustCompile(`\bsetAttribute\s*\(`),
	regexp.MustCompile(`\bclassList\b`),
	regexp.MustCompile(`\bconst\s+\w+\s*=`),
	regexp.MustCompile(`\blet\s+\w+\s*=`),
	regexp.MustCompile(`\bvar\s+\w+\s*=`),
	regexp.MustCompile(`\bfunction\s*\(`),
	regexp.MustCompile(`\btabindex\b`),
	regexp.MustCompile(`\bisOpen\b`),
	regexp.MustCompile(`\bnull\b\s*:\s*\b`),
	regexp.MustCompile(`expandedMenu`),
	regexp.MustCompile(`veggie-burger`),
	regexp.MustCompile(`Clickable\w*Tags`),
}

func isContaminated(sentence string) bool {
	for _, p := range contaminationPatterns {
		if p.MatchString(sentence) {
			return true
		}
	}
	return false
}

var collapseSpace = regexp.MustCompile(`\s+`)

// ExtractText converts article HTML to plain text. Paragraph breaks are
// preserved as \n\n so the paragraph-first teaser path downstream can
// work with them; script/style blocks are removed and leaked-script
// sentences filtered out. Pages without <p> tags fall back to flat
// body text.
func ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()

	var paras []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := collapseSpace.ReplaceAllString(strings.TrimSpace(s.Text()), " ")
		if text == "" {
			return
		}
		clean := filterContaminated(text)
		if len(clean) > 20 {
			paras = append(paras, clean)
		}
	})
	if len(paras) > 0 {
		return strings.Join(paras, "\n\n")
	}

	flat := collapseSpace.ReplaceAllString(strings.TrimSpace(doc.Text()), " ")
	return filterContaminated(flat)
}

func filterContaminated(text string) string {
	var good []string
	for _, s := range snippet.SplitSentences(text) {
		if !isContaminated(s) {
			good = append(good, s)
		}
	}
	return strings.TrimSpace(strings.Join(good, " "))
}

// ExtractMetaDescription pulls the og:description meta tag (or plain
// description as a fallback) out of page HTML. Editors write these as
// a rich lede and they are served even behind a paywall.
func ExtractMetaDescription(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	for _, sel := range []string{
		`meta[property="og:description"]`,
		`meta[name="description"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			content = strings.TrimSpace(content)
			if len(content) >= 20 {
				return content
			}
		}
	}
	return ""
}

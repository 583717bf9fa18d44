package archive

import (
	"strings"
	"testing"
)

func TestExtractTextPreservesParagraphs(t *testing.T) {
	html := `<html><body>
		<script>var tracker = init();</script>
		<p>The first paragraph of the article carries the opening of the story.</p>
		<p>The second paragraph continues it with more detail about the subject.</p>
		<div>navigation chrome</div>
	</body></html>`

	got := ExtractText(html)
	paras := strings.Split(got, "\n\n")
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %q", len(paras), got)
	}
	if strings.Contains(got, "tracker") {
		t.Error("script content leaked into extracted text")
	}
}

func TestExtractTextFiltersLeakedScript(t *testing.T) {
	html := `<p>A real sentence about the subject appears here for the reader. ` +
		`const menu = document.querySelector('.nav'); ` +
		`Another real sentence closes out the paragraph for good measure.</p>`

	got := ExtractText(html)
	if strings.Contains(got, "querySelector") {
		t.Errorf("contaminated sentence survived: %q", got)
	}
	if !strings.Contains(got, "real sentence about the subject") {
		t.Errorf("clean sentence lost: %q", got)
	}
}

func TestExtractTextFlatFallback(t *testing.T) {
	html := `<html><body><div>Flat body text without any paragraph tags at all.</div></body></html>`

	got := ExtractText(html)
	if !strings.Contains(got, "Flat body text") {
		t.Errorf("flat fallback missing body text: %q", got)
	}
}

func TestExtractTextDropsShortParagraphs(t *testing.T) {
	html := `<p>Menu</p><p>This paragraph is long enough to be kept as article content.</p>`

	got := ExtractText(html)
	if strings.Contains(got, "Menu") {
		t.Errorf("short chrome paragraph kept: %q", got)
	}
}

func TestExtractMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"og description preferred",
			`<head><meta property="og:description" content="An editorially written summary of the obituary.">
			 <meta name="description" content="A plainer fallback description here."></head>`,
			"An editorially written summary of the obituary.",
		},
		{
			"plain description fallback",
			`<head><meta name="description" content="A plainer fallback description here."></head>`,
			"A plainer fallback description here.",
		},
		{
			"too short rejected",
			`<head><meta property="og:description" content="short"></head>`,
			"",
		},
		{"no meta at all", `<head><title>x</title></head>`, ""},
	}

	for _, tt := range tests {
		if got := ExtractMetaDescription(tt.html); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

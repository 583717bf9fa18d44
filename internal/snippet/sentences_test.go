package snippet

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{
			"He moved to London. He opened a shop! Did it succeed?",
			[]string{"He moved to London.", "He opened a shop!", "Did it succeed?"},
		},
		{
			// Abbreviation-internal dots are not followed by whitespace
			// mid-token, but "U.S. Army" style still splits after "U.S."
			"No terminator at all",
			[]string{"No terminator at all"},
		},
		{"", nil},
		{
			"Trailing text after a stop. without capital",
			[]string{"Trailing text after a stop.", "without capital"},
		},
	}

	for _, tt := range tests {
		got := SplitSentences(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitSentences(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"exact limit", "abcdef", 6, "abcdef"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"cut lands mid-rune", "aéé", 2, "a"},
		{"cut on rune boundary", "aéé", 3, "aé"},
	}

	for _, tt := range tests {
		got := Truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("%s: Truncate(%q, %d) = %q, want %q", tt.name, tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("%s: Truncate produced invalid UTF-8: %q", tt.name, got)
		}
	}

	long := strings.Repeat("あ", 100)
	if got := Truncate(long, 250); !utf8.ValidString(got) || len(got) > 250 {
		t.Errorf("Truncate on long multibyte text = %d bytes, valid=%v", len(got), utf8.ValidString(got))
	}
}

func TestIsFragment(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"and then moved to London", true},
		{"He moved to London", false},
		{"which was the largest of its kind", true},
		{"Which, incidentally, was never finished", true},
		{"His family never spoke of it", true},
		{"lowercase start means torn text", true},
		{"After, the war ended", true},
		{"The war ended after four years", false},
		{"", true},
	}

	for _, tt := range tests {
		if got := IsFragment(tt.in); got != tt.want {
			t.Errorf("IsFragment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCultural(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"He was portrayed in the 1962 film by a young actor", true},
		{"A documentary about her life aired in 1990", true},
		{"The television series ran for three seasons", true},
		{"She was played by a celebrated actress", true},
		{"He starred in his own defence at the trial", true},
		{"He built a telescope from spare parts", false},
		{"She wrote letters to her sister every week", false},
	}

	for _, tt := range tests {
		if got := IsCultural(tt.in); got != tt.want {
			t.Errorf("IsCultural(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

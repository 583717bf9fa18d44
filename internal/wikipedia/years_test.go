package wikipedia

import "testing"

func TestExtractYearsSimpleRange(t *testing.T) {
	extract := "Constantine the Great (272–337) was a Roman emperor."

	birth, death := ExtractYears(extract, "births", 0)
	if birth != "272" || death != "337" {
		t.Errorf("got (%s, %s), want (272, 337)", birth, death)
	}
}

func TestExtractYearsPicksEarliestRange(t *testing.T) {
	// The career-period range must lose to the lifespan range even when
	// it appears first in the text.
	extract := "Mark Rothko (/ˈrɒθkoʊ/; 1903 – 1970) was an " +
		"American abstract painter. His classic period (1949–1970) produced his " +
		"best-known work."

	birth, death := ExtractYears(extract, "births", 0)
	if birth != "1903" || death != "1970" {
		t.Errorf("got (%s, %s), want (1903, 1970)", birth, death)
	}
}

func TestExtractYearsStripsBracketNotes(t *testing.T) {
	extract := "Nikolai Gogol [Russian: Никола́й Го́голь] (1809–1852) was a novelist."

	birth, death := ExtractYears(extract, "births", 0)
	if birth != "1809" || death != "1852" {
		t.Errorf("got (%s, %s), want (1809, 1852)", birth, death)
	}
}

func TestExtractYearsFallsBackToAPIYear(t *testing.T) {
	extract := "A short biography with no parenthetical dates in the opening text at all."

	birth, death := ExtractYears(extract, "births", 1867)
	if birth != "1867" {
		t.Errorf("birth = %s, want API year 1867", birth)
	}
	if death != "present" {
		t.Errorf("death = %s, want present", death)
	}

	birth, death = ExtractYears(extract, "deaths", 1955)
	if birth != "?" || death != "1955" {
		t.Errorf("got (%s, %s), want (?, 1955)", birth, death)
	}
}

func TestExtractYearsFromBodyText(t *testing.T) {
	extract := "An inventor of unusual machines. He was born in 1834 in a small town. " +
		"He died peacefully in 1901 at his workbench."

	birth, death := ExtractYears(extract, "births", 0)
	if birth != "1834" || death != "1901" {
		t.Errorf("got (%s, %s), want (1834, 1901)", birth, death)
	}
}

func TestExtractYearsAncientDeathScan(t *testing.T) {
	extract := "A philosopher of antiquity. He was born in 204 in Egypt. " +
		"Tradition holds he was executed by the prefect in 270 after a long trial."

	birth, death := ExtractYears(extract, "births", 0)
	if birth != "204" {
		t.Fatalf("birth = %s, want 204", birth)
	}
	if death != "270" {
		t.Errorf("death = %s, want 270", death)
	}
}

func TestExtractYearsUnknown(t *testing.T) {
	birth, death := ExtractYears("No dates anywhere in this text.", "births", 0)
	if birth != "?" || death != "present" {
		t.Errorf("got (%s, %s), want (?, present)", birth, death)
	}
}

func TestCleanTaglineFromAPIDescription(t *testing.T) {
	tests := []struct {
		api  string
		want string
	}{
		{"american abstract painter", "American abstract painter."},
		{"English novelist and critic.", "English novelist and critic."},
	}

	for _, tt := range tests {
		if got := CleanTagline(tt.api, ""); got != tt.want {
			t.Errorf("CleanTagline(%q) = %q, want %q", tt.api, got, tt.want)
		}
	}
}

func TestCleanTaglineStripsYearClutter(t *testing.T) {
	got := CleanTagline("French sculptor (1840-1917) of public monuments", "")
	if got != "French sculptor of public monuments." {
		t.Errorf("got %q", got)
	}
}

func TestCleanTaglineFallsBackToExtract(t *testing.T) {
	extract := "Ada Lovelace (10 December 1815 – 27 November 1852) was an English " +
		"mathematician chiefly known for her work on the Analytical Engine.\n\n" +
		"Early life\n\nShe was the only legitimate child of the poet Byron."

	got := CleanTagline("", extract)
	if got == "" {
		t.Fatal("fallback tagline is empty")
	}
	if want := "Ada Lovelace was an English mathematician chiefly known for her work on the Analytical Engine."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanTaglineShortAPIDescriptionIgnored(t *testing.T) {
	// Fifteen characters or fewer is too thin to trust.
	got := CleanTagline("painter", "A celebrated painter of the Dutch golden age who never sold a canvas.")
	if got == "painter." || got == "Painter." {
		t.Errorf("thin API description was used: %q", got)
	}
}

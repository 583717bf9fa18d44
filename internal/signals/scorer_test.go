package signals

import (
	"strings"
	"testing"
)

func TestScoreEmptyAndShortText(t *testing.T) {
	tax := Biography()

	for _, text := range []string{"", "Too short to score."} {
		res := tax.Score(text)
		if res.Primary != 0 || res.Secondary != 0 || res.Total != 0 || len(res.Signals) != 0 {
			t.Errorf("Score(%q) = %+v, want zero result", text, res)
		}
	}
}

func TestScoreDetectsPrimaryCategory(t *testing.T) {
	// Five distinct watercooler patterns, padded past the minimum length.
	text := "He refused every honour offered to him. " +
		"He insisted on walking to work. " +
		"He was notorious among colleagues for his betting habits. " +
		"He was known for arriving in a rowing boat. " +
		"According to his biographer, he once slept in the office for a week. " +
		strings.Repeat("The rest of the biography continues with ordinary detail. ", 10)

	res := Biography().Score(text)

	if res.Primary < 1 {
		t.Fatalf("Primary = %d, want at least 1", res.Primary)
	}
	found := false
	for _, s := range res.Signals {
		if s == "watercooler" {
			found = true
		}
	}
	if !found {
		t.Errorf("Signals = %v, want watercooler present", res.Signals)
	}
	if res.Total < 10 {
		t.Errorf("Total = %v, want at least 10 for a primary match", res.Total)
	}
}

func TestScoreLengthBonusIsCapped(t *testing.T) {
	long := strings.Repeat("An utterly neutral sentence with no signal words at all. ", 400)

	res := Biography().Score(long)
	if res.Primary != 0 || res.Secondary != 0 {
		t.Skipf("padding text unexpectedly matched categories: %v", res.Signals)
	}
	if res.Total > 3 {
		t.Errorf("Total = %v, want length bonus capped at 3", res.Total)
	}
}

func TestObituaryThresholdsAreLower(t *testing.T) {
	// Three watercooler patterns in ~300 chars: below the biography
	// threshold of four, at the obituary threshold of three.
	text := "She refused to retire. She was notorious for her parties. " +
		"She was known for carrying a parrot to meetings. " +
		strings.Repeat("More plain text follows here to pass the length floor. ", 6)

	if res := Biography().Score(text); res.Primary != 0 {
		t.Errorf("Biography().Score: Primary = %d, want 0 at three hits", res.Primary)
	}
	res := Obituary().Score(text)
	if res.Primary < 1 {
		t.Errorf("Obituary().Score: Primary = %d, want at least 1 at three hits", res.Primary)
	}
}

func TestObituaryHasNoLengthBonus(t *testing.T) {
	long := strings.Repeat("An utterly neutral sentence with no signal words at all. ", 400)

	res := Obituary().Score(long)
	if res.Primary == 0 && res.Secondary == 0 && res.Total != 0 {
		t.Errorf("Total = %v, want 0 without category matches", res.Total)
	}
}

func TestActivePatternsFallsBackToSecondary(t *testing.T) {
	all := ActivePatterns(nil)
	if len(all) == 0 {
		t.Fatal("ActivePatterns(nil) returned nothing")
	}

	one := ActivePatterns([]string{"watercooler"})
	if len(one) != len(CategoryPatterns("watercooler")) {
		t.Errorf("ActivePatterns(watercooler) = %d patterns, want exactly the category's own", len(one))
	}
}

func TestCategoryPatternsUnknown(t *testing.T) {
	if got := CategoryPatterns("no_such_category"); got != nil {
		t.Errorf("CategoryPatterns(unknown) = %v, want nil", got)
	}
}

package wikipedia

import "testing"

func TestIsPerson(t *testing.T) {
	tests := []struct {
		title string
		desc  string
		want  bool
	}{
		// Occupation and nationality signals
		{"Marie Curie", "Polish-French physicist", true},
		{"Miles Davis", "American jazz musician", true},
		{"Hypatia", "Greek mathematician and astronomer", true},
		// Reject signals always win
		{"Battle of Hastings", "", false},
		{"Treaty of Versailles", "1919 peace treaty", false},
		{"RMS Titanic", "British passenger ship", false},
		{"University of Oxford", "", false},
		{"Great Flood of 1862", "", false},
		// Structural name fallback: 2-4 capitalised words, no stopwords
		{"John Quincy Adams", "", true},
		{"Hattie McDaniel", "", true},
		{"Isle of Wight", "", false},
		{"Renaissance", "", false},
		{"The Beatles", "", false},
	}

	for _, tt := range tests {
		if got := IsPerson(tt.title, tt.desc); got != tt.want {
			t.Errorf("IsPerson(%q, %q) = %v, want %v", tt.title, tt.desc, got, tt.want)
		}
	}
}

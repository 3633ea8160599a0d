package service

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Campus Budget Passes", "campus-budget-passes"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Q&A: The Dean's Plan", "q-a-the-dean-s-plan"},
		{"Finals Week 2026", "finals-week-2026"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

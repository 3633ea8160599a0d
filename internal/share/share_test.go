package share

import (
	"net/url"
	"strings"
	"testing"

	"media-service/internal/scoring"
)

func TestShareURLCarriesLabelAndScore(t *testing.T) {
	result := &scoring.ClassificationResult{
		Percentage: 87.4,
		Band:       scoring.ResultBand{Label: "Money Strategist"},
	}

	link := ShareURL("https://media.university.edu/", "money-personality", result)

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("Share URL does not parse: %v", err)
	}
	if parsed.Path != "/playground/shared" {
		t.Errorf("Unexpected path %q", parsed.Path)
	}
	query := parsed.Query()
	if query.Get("test") != "money-personality" {
		t.Errorf("Expected test id in query, got %q", query.Get("test"))
	}
	if query.Get("label") != "Money Strategist" {
		t.Errorf("Expected band label in query, got %q", query.Get("label"))
	}
	if query.Get("score") != "87" {
		t.Errorf("Expected rounded score 87, got %q", query.Get("score"))
	}
}

func TestTextReportNumeric(t *testing.T) {
	q, ok := scoring.Lookup("money-personality")
	if !ok {
		t.Fatal("money-personality missing from catalog")
	}
	result := &scoring.ClassificationResult{
		RawScore:         54,
		MaxPossibleScore: 60,
		Percentage:       90,
		Band:             q.Bands[len(q.Bands)-1],
	}

	report := TextReport(q, result)

	for _, want := range []string{q.Title, "Financial Guru", "54 / 60", "Tips:"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}

func TestTextReportCategorical(t *testing.T) {
	q, ok := scoring.Lookup("learning-style")
	if !ok {
		t.Fatal("learning-style missing from catalog")
	}
	result := &scoring.ClassificationResult{
		RawScore:         7,
		MaxPossibleScore: 12,
		WinningTags:      []string{"visual"},
		Band:             q.Bands[0],
	}

	report := TextReport(q, result)
	if !strings.Contains(report, "7 of 12") {
		t.Errorf("Report missing tally line:\n%s", report)
	}
	if !strings.Contains(report, "visual") {
		t.Errorf("Report missing winning tag:\n%s", report)
	}
}

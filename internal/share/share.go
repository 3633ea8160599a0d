// Package share formats playground results for the outside world: share
// links and downloadable text reports. Pure formatting over a
// ClassificationResult; nothing here feeds back into scoring.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"media-service/internal/scoring"
)

// ShareURL builds the public link for a result: label and percentage travel
// as query parameters so the landing page can render without a lookup.
func ShareURL(baseURL, testID string, result *scoring.ClassificationResult) string {
	params := url.Values{}
	params.Set("test", testID)
	params.Set("label", result.Band.Label)
	params.Set("score", fmt.Sprintf("%.0f", result.Percentage))
	return strings.TrimRight(baseURL, "/") + "/playground/shared?" + params.Encode()
}

// TextReport renders a plain-text summary suitable for download.
func TextReport(q *scoring.Questionnaire, result *scoring.ClassificationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", q.Title)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", len(q.Title)))
	fmt.Fprintf(&b, "Result: %s\n", result.Band.Label)

	if q.Kind == scoring.KindNumeric {
		fmt.Fprintf(&b, "Score: %d / %d (%.0f%%)\n", result.RawScore, result.MaxPossibleScore, result.Percentage)
	} else {
		fmt.Fprintf(&b, "Strongest style: %s (%d of %d answers)\n",
			strings.Join(result.WinningTags, ", "), result.RawScore, result.MaxPossibleScore)
	}

	fmt.Fprintf(&b, "\n%s\n", result.Band.Description)

	if len(result.Band.Traits) > 0 {
		fmt.Fprintf(&b, "\nTraits: %s\n", strings.Join(result.Band.Traits, ", "))
	}
	if len(result.Band.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, tip := range result.Band.Tips {
			fmt.Fprintf(&b, "  - %s\n", tip)
		}
	}
	return b.String()
}

package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Score computes the ClassificationResult for a completed attempt. It is
// pure and all-or-nothing: the attempt must hold exactly one valid answer
// per question or a typed error is returned and nothing is computed.
func Score(q *Questionnaire, attempt Attempt) (*ClassificationResult, error) {
	if missing := missingQuestionIDs(q, attempt); len(missing) > 0 {
		return nil, &IncompleteAttemptError{QuestionnaireID: q.ID, MissingIDs: missing}
	}
	if err := validateAnswers(q, attempt); err != nil {
		return nil, err
	}

	switch q.Kind {
	case KindCategorical:
		return scoreCategorical(q, attempt)
	default:
		return scoreNumeric(q, attempt)
	}
}

func missingQuestionIDs(q *Questionnaire, attempt Attempt) []string {
	var missing []string
	for _, question := range q.Questions {
		if _, ok := attempt.Answer(question.ID); !ok {
			missing = append(missing, question.ID)
		}
	}
	return missing
}

// validateAnswers checks every answer against the allowed choices of its
// question. Answers for unknown question ids are also rejected.
func validateAnswers(q *Questionnaire, attempt Attempt) error {
	for _, ans := range attempt.Answers {
		question := q.question(ans.QuestionID)
		if question == nil {
			return &InvalidAnswerError{QuestionID: ans.QuestionID, Reason: "question not in questionnaire"}
		}
		if !answerMatchesChoice(q.Kind, question, ans) {
			return &InvalidAnswerError{QuestionID: ans.QuestionID, Reason: "value does not match any choice"}
		}
	}
	return nil
}

func answerMatchesChoice(kind Kind, question *Question, ans Answer) bool {
	for _, c := range question.Options {
		if kind == KindCategorical {
			if c.Tag == ans.Tag {
				return true
			}
			continue
		}
		if c.Value == ans.Value {
			return true
		}
	}
	return false
}

func scoreNumeric(q *Questionnaire, attempt Attempt) (*ClassificationResult, error) {
	maxScore := 0
	for _, question := range q.Questions {
		maxScore += maxChoiceValue(question)
	}
	if maxScore == 0 {
		return nil, &DegenerateQuestionnaireError{QuestionnaireID: q.ID}
	}

	raw := 0
	for _, ans := range attempt.Answers {
		raw += ans.Value
	}

	// Negative-weighted choices may pull the raw sum below zero; only the
	// final percentage is clamped.
	percentage := 100 * float64(raw) / float64(maxScore)
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	band, err := bandForPercentage(q, percentage)
	if err != nil {
		return nil, err
	}

	return &ClassificationResult{
		QuestionnaireID:  q.ID,
		RawScore:         raw,
		MaxPossibleScore: maxScore,
		Percentage:       percentage,
		Band:             *band,
	}, nil
}

func maxChoiceValue(question Question) int {
	max := 0
	for i, c := range question.Options {
		if i == 0 || c.Value > max {
			max = c.Value
		}
	}
	return max
}

// bandForPercentage resolves the band owning a real-valued percentage. Each
// band owns [Low, next band's Low) so fractional percentages between two
// integer bounds fall into the lower band; the last band is closed at its
// High. Band tables are validated to be ascending and contiguous, keeping
// this consistent with Validate over the whole of [0,100].
func bandForPercentage(q *Questionnaire, percentage float64) (*ResultBand, error) {
	for i := range q.Bands {
		if percentage < float64(q.Bands[i].Range.Low) {
			continue
		}
		if i+1 < len(q.Bands) {
			if percentage < float64(q.Bands[i+1].Range.Low) {
				return &q.Bands[i], nil
			}
			continue
		}
		if q.Bands[i].Range.Contains(percentage) {
			return &q.Bands[i], nil
		}
	}
	return nil, &NoMatchingBandError{QuestionnaireID: q.ID, Percentage: percentage}
}

func scoreCategorical(q *Questionnaire, attempt Attempt) (*ClassificationResult, error) {
	if len(q.Questions) == 0 {
		return nil, &DegenerateQuestionnaireError{QuestionnaireID: q.ID}
	}

	tallies := make(map[string]int)
	for _, ans := range attempt.Answers {
		tallies[ans.Tag]++
	}

	winners := winningTags(q, tallies)

	band, err := categoricalBand(q, winners)
	if err != nil {
		return nil, err
	}

	// Raw score is the winning tally; max is the question count so the
	// percentage reflects how dominant the winning trait is.
	raw := tallies[winners[0]]
	maxScore := len(q.Questions)
	percentage := 100 * float64(raw) / float64(maxScore)

	return &ClassificationResult{
		QuestionnaireID:  q.ID,
		RawScore:         raw,
		MaxPossibleScore: maxScore,
		Percentage:       percentage,
		Band:             *band,
		Tallies:          tallies,
		WinningTags:      winners,
	}, nil
}

// winningTags returns every tag tied for the maximum count, ordered by the
// questionnaire's band definition order so tie output is deterministic and
// reads the way the test's author arranged the categories. Tags with no band
// (a config defect surfaced later) sort last, alphabetically.
func winningTags(q *Questionnaire, tallies map[string]int) []string {
	max := 0
	for _, n := range tallies {
		if n > max {
			max = n
		}
	}
	var winners []string
	for tag, n := range tallies {
		if n == max {
			winners = append(winners, tag)
		}
	}
	sort.Slice(winners, func(i, j int) bool {
		a, b := bandIndex(q, winners[i]), bandIndex(q, winners[j])
		if a != b {
			return a < b
		}
		return winners[i] < winners[j]
	})
	return winners
}

func bandIndex(q *Questionnaire, tag string) int {
	for i := range q.Bands {
		if q.Bands[i].Tag == tag {
			return i
		}
	}
	return len(q.Bands)
}

// categoricalBand resolves the band for the winning tag-set. A single winner
// uses its predefined band; ties synthesize a combined band joining the tied
// categories' display names, e.g. "Visual/Auditory Learner".
func categoricalBand(q *Questionnaire, winners []string) (*ResultBand, error) {
	bands := make([]*ResultBand, 0, len(winners))
	for _, tag := range winners {
		b := q.bandForTag(tag)
		if b == nil {
			return nil, &NoMatchingBandError{QuestionnaireID: q.ID, Tags: winners}
		}
		bands = append(bands, b)
	}

	if len(bands) == 1 {
		return bands[0], nil
	}

	names := make([]string, len(bands))
	traits := []string{}
	tips := []string{}
	descriptions := make([]string, len(bands))
	for i, b := range bands {
		names[i] = b.DisplayName
		descriptions[i] = b.Description
		traits = append(traits, b.Traits...)
		tips = append(tips, b.Tips...)
	}

	combined := &ResultBand{
		Label:       combinedLabel(bands, names),
		DisplayName: strings.Join(names, "/"),
		Description: strings.Join(descriptions, " "),
		Traits:      traits,
		Tips:        tips,
	}
	return combined, nil
}

// combinedLabel builds the tie label from the bands' own labels. When every
// tied band's label is its display name plus a shared suffix ("Visual
// Learner", "Auditory Learner"), the suffix carries over to the joined names;
// otherwise the full labels are joined as-is.
func combinedLabel(bands []*ResultBand, names []string) string {
	suffix, ok := strings.CutPrefix(bands[0].Label, bands[0].DisplayName)
	if ok {
		for _, b := range bands[1:] {
			if b.Label != b.DisplayName+suffix {
				ok = false
				break
			}
		}
	}
	if ok {
		return strings.Join(names, "/") + suffix
	}

	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.Label
	}
	return strings.Join(labels, "/")
}

// Validate checks a questionnaire definition for the configuration defects
// Score would otherwise surface at runtime: empty question or option lists,
// zero max score, and numeric band tables with gaps or overlaps over
// [0,100]. Catalog definitions are validated by a static test.
func Validate(q *Questionnaire) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("questionnaire %q has no questions", q.ID)
	}
	for _, question := range q.Questions {
		if len(question.Options) == 0 {
			return fmt.Errorf("question %q has no options", question.ID)
		}
	}

	switch q.Kind {
	case KindCategorical:
		return validateCategoricalBands(q)
	default:
		return validateNumericBands(q)
	}
}

func validateNumericBands(q *Questionnaire) error {
	maxScore := 0
	for _, question := range q.Questions {
		maxScore += maxChoiceValue(question)
	}
	if maxScore == 0 {
		return &DegenerateQuestionnaireError{QuestionnaireID: q.ID}
	}

	// Bands must be ascending and contiguous from 0 to 100 so that every
	// real-valued percentage Score can produce has exactly one owner.
	if len(q.Bands) == 0 {
		return fmt.Errorf("questionnaire %q has no bands", q.ID)
	}
	if low := q.Bands[0].Range.Low; low != 0 {
		return fmt.Errorf("questionnaire %q: bands start at %d%%, want 0%%", q.ID, low)
	}
	for i, b := range q.Bands {
		if b.Range.High < b.Range.Low {
			return fmt.Errorf("questionnaire %q: band %q has an inverted range", q.ID, b.Label)
		}
		if i+1 < len(q.Bands) && q.Bands[i+1].Range.Low != b.Range.High+1 {
			return fmt.Errorf("questionnaire %q: bands %q and %q are not contiguous",
				q.ID, b.Label, q.Bands[i+1].Label)
		}
	}
	if high := q.Bands[len(q.Bands)-1].Range.High; high != 100 {
		return fmt.Errorf("questionnaire %q: bands end at %d%%, want 100%%", q.ID, high)
	}
	return nil
}

func validateCategoricalBands(q *Questionnaire) error {
	tags := make(map[string]bool)
	for _, question := range q.Questions {
		for _, c := range question.Options {
			if c.Tag == "" {
				return fmt.Errorf("question %q has an option without a tag", question.ID)
			}
			tags[c.Tag] = true
		}
	}
	for tag := range tags {
		if q.bandForTag(tag) == nil {
			return fmt.Errorf("questionnaire %q: no band for category %q", q.ID, tag)
		}
	}
	return nil
}

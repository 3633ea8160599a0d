package scoring

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// numericFixture builds a small summed-score questionnaire for tests.
func numericFixture() *Questionnaire {
	return &Questionnaire{
		ID:   "test-numeric",
		Kind: KindNumeric,
		Questions: []Question{
			{ID: "q1", Prompt: "one", Options: []Choice{{Text: "a", Value: 0}, {Text: "b", Value: 5}}},
			{ID: "q2", Prompt: "two", Options: []Choice{{Text: "a", Value: 0}, {Text: "b", Value: 3}, {Text: "c", Value: 5}}},
			{ID: "q3", Prompt: "three", Options: []Choice{{Text: "a", Value: -2}, {Text: "b", Value: 0}, {Text: "c", Value: 5}}},
		},
		Bands: []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 49}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 100}},
		},
	}
}

func categoricalFixture() *Questionnaire {
	options := []Choice{
		{Text: "v", Tag: "visual"},
		{Text: "a", Tag: "auditory"},
		{Text: "k", Tag: "kinesthetic"},
	}
	q := &Questionnaire{
		ID:   "test-categorical",
		Kind: KindCategorical,
		Bands: []ResultBand{
			{Tag: "visual", DisplayName: "Visual", Label: "Visual Learner"},
			{Tag: "auditory", DisplayName: "Auditory", Label: "Auditory Learner"},
			{Tag: "kinesthetic", DisplayName: "Kinesthetic", Label: "Kinesthetic Learner"},
		},
	}
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		q.Questions = append(q.Questions, Question{ID: id, Prompt: id, Options: options})
	}
	return q
}

func completeAttempt(q *Questionnaire, value int) Attempt {
	attempt := NewAttempt(q.ID)
	for _, question := range q.Questions {
		attempt = RecordAnswer(attempt, Answer{QuestionID: question.ID, Value: value})
	}
	return attempt
}

func TestScoreNumeric(t *testing.T) {
	q := numericFixture()

	testCases := []struct {
		name               string
		values             map[string]int
		expectedRaw        int
		expectedPercentage float64
		expectedBand       string
	}{
		{"all max", map[string]int{"q1": 5, "q2": 5, "q3": 5}, 15, 100, "High"},
		{"all zero", map[string]int{"q1": 0, "q2": 0, "q3": 0}, 0, 0, "Low"},
		{"mixed", map[string]int{"q1": 5, "q2": 3, "q3": 0}, 8, 53.33, "High"},
		{"negative pulls below zero, clamped", map[string]int{"q1": 0, "q2": 0, "q3": -2}, -2, 0, "Low"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempt := NewAttempt(q.ID)
			for id, v := range tc.values {
				attempt = RecordAnswer(attempt, Answer{QuestionID: id, Value: v})
			}

			result, err := Score(q, attempt)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.RawScore != tc.expectedRaw {
				t.Errorf("Expected raw score %d, got %d", tc.expectedRaw, result.RawScore)
			}
			if result.MaxPossibleScore != 15 {
				t.Errorf("Expected max possible score 15, got %d", result.MaxPossibleScore)
			}
			if math.Abs(result.Percentage-tc.expectedPercentage) > 0.01 {
				t.Errorf("Expected percentage %.2f, got %.2f", tc.expectedPercentage, result.Percentage)
			}
			if result.Band.Label != tc.expectedBand {
				t.Errorf("Expected band %q, got %q", tc.expectedBand, result.Band.Label)
			}
			if result.Percentage < 0 || result.Percentage > 100 {
				t.Errorf("Percentage %.2f outside [0,100]", result.Percentage)
			}
		})
	}
}

func TestScoreNumericMaxIndependentOfAnswers(t *testing.T) {
	q := numericFixture()

	low, err := Score(q, completeAttempt(q, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	high := NewAttempt(q.ID)
	high = RecordAnswer(high, Answer{QuestionID: "q1", Value: 5})
	high = RecordAnswer(high, Answer{QuestionID: "q2", Value: 5})
	high = RecordAnswer(high, Answer{QuestionID: "q3", Value: 5})
	top, err := Score(q, high)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if low.MaxPossibleScore != top.MaxPossibleScore {
		t.Errorf("Max possible score depends on answers: %d vs %d", low.MaxPossibleScore, top.MaxPossibleScore)
	}
}

func TestScoreIdempotent(t *testing.T) {
	q := numericFixture()
	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 5})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q2", Value: 3})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q3", Value: -2})

	first, err := Score(q, attempt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := Score(q, attempt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score is not idempotent: %+v vs %+v", first, second)
	}
}

func TestScoreIncompleteAttempt(t *testing.T) {
	q := numericFixture()
	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 5})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q3", Value: 0})

	_, err := Score(q, attempt)
	if err == nil {
		t.Fatal("Expected IncompleteAttemptError, got nil")
	}

	var incomplete *IncompleteAttemptError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Expected IncompleteAttemptError, got %T", err)
	}
	if len(incomplete.MissingIDs) != 1 || incomplete.MissingIDs[0] != "q2" {
		t.Errorf("Expected missing ids [q2], got %v", incomplete.MissingIDs)
	}
}

func TestScoreInvalidAnswer(t *testing.T) {
	q := numericFixture()
	attempt := completeAttempt(q, 0)
	// 7 is not a choice value on q1
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 7})

	_, err := Score(q, attempt)
	var invalid *InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidAnswerError, got %v", err)
	}
	if invalid.QuestionID != "q1" {
		t.Errorf("Expected offending question q1, got %q", invalid.QuestionID)
	}
}

func TestScoreUnknownQuestionRejected(t *testing.T) {
	q := numericFixture()
	attempt := completeAttempt(q, 0)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "ghost", Value: 0})

	_, err := Score(q, attempt)
	var invalid *InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidAnswerError, got %v", err)
	}
	if invalid.QuestionID != "ghost" {
		t.Errorf("Expected offending question ghost, got %q", invalid.QuestionID)
	}
}

func TestScoreDegenerateQuestionnaire(t *testing.T) {
	q := &Questionnaire{
		ID:   "all-zero",
		Kind: KindNumeric,
		Questions: []Question{
			{ID: "q1", Options: []Choice{{Text: "a", Value: 0}, {Text: "b", Value: 0}}},
		},
		Bands: []ResultBand{{Label: "Only", Range: ScoreRange{Low: 0, High: 100}}},
	}
	attempt := RecordAnswer(NewAttempt(q.ID), Answer{QuestionID: "q1", Value: 0})

	_, err := Score(q, attempt)
	var degenerate *DegenerateQuestionnaireError
	if !errors.As(err, &degenerate) {
		t.Fatalf("Expected DegenerateQuestionnaireError, got %v", err)
	}
}

func TestScoreNoMatchingBand(t *testing.T) {
	q := numericFixture()
	// Remove the upper band so high percentages have no home.
	q.Bands = q.Bands[:1]

	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 5})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q2", Value: 5})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q3", Value: 5})

	_, err := Score(q, attempt)
	var noBand *NoMatchingBandError
	if !errors.As(err, &noBand) {
		t.Fatalf("Expected NoMatchingBandError, got %v", err)
	}
}

func TestScoreFractionalPercentageStaysInBand(t *testing.T) {
	// A max score that does not divide 100 produces fractional percentages;
	// those between two bands' integer bounds belong to the lower band.
	q := &Questionnaire{
		ID:   "thirds",
		Kind: KindNumeric,
		Questions: []Question{
			{ID: "q1", Options: []Choice{{Text: "no", Value: 0}, {Text: "yes", Value: 1}}},
			{ID: "q2", Options: []Choice{{Text: "no", Value: 0}, {Text: "yes", Value: 1}}},
			{ID: "q3", Options: []Choice{{Text: "no", Value: 0}, {Text: "yes", Value: 1}}},
		},
		Bands: []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 33}},
			{Label: "Mid", Range: ScoreRange{Low: 34, High: 66}},
			{Label: "High", Range: ScoreRange{Low: 67, High: 100}},
		},
	}
	if err := Validate(q); err != nil {
		t.Fatalf("Expected contiguous bands to validate, got %v", err)
	}

	testCases := []struct {
		name         string
		values       map[string]int
		expectedBand string
	}{
		{"one third lands in Low", map[string]int{"q1": 1, "q2": 0, "q3": 0}, "Low"},
		{"two thirds lands in Mid", map[string]int{"q1": 1, "q2": 1, "q3": 0}, "Mid"},
		{"full score lands in High", map[string]int{"q1": 1, "q2": 1, "q3": 1}, "High"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempt := NewAttempt(q.ID)
			for id, v := range tc.values {
				attempt = RecordAnswer(attempt, Answer{QuestionID: id, Value: v})
			}
			result, err := Score(q, attempt)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.Band.Label != tc.expectedBand {
				t.Errorf("Expected band %q for %.2f%%, got %q", tc.expectedBand, result.Percentage, result.Band.Label)
			}
		})
	}
}

func TestValidateNumericBandTables(t *testing.T) {
	base := numericFixture()

	testCases := []struct {
		name    string
		bands   []ResultBand
		wantErr bool
	}{
		{"contiguous table", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 49}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 100}},
		}, false},
		{"gap between bands", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 40}},
			{Label: "High", Range: ScoreRange{Low: 60, High: 100}},
		}, true},
		{"overlapping bands", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 60}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 100}},
		}, true},
		{"does not start at zero", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 10, High: 49}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 100}},
		}, true},
		{"does not end at hundred", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 49}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 90}},
		}, true},
		{"inverted range", []ResultBand{
			{Label: "Low", Range: ScoreRange{Low: 0, High: 49}},
			{Label: "High", Range: ScoreRange{Low: 50, High: 40}},
		}, true},
		{"no bands", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := *base
			q.Bands = tc.bands
			err := Validate(&q)
			if tc.wantErr && err == nil {
				t.Error("Expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected valid band table, got %v", err)
			}
		})
	}
}

func TestScoreCategoricalSingleWinner(t *testing.T) {
	q := categoricalFixture()
	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c1", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c2", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c3", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c4", Tag: "auditory"})

	result, err := Score(q, attempt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Band.Label != "Visual Learner" {
		t.Errorf("Expected Visual Learner, got %q", result.Band.Label)
	}
	if !reflect.DeepEqual(result.WinningTags, []string{"visual"}) {
		t.Errorf("Expected winning tags [visual], got %v", result.WinningTags)
	}
	if result.Tallies["visual"] != 3 || result.Tallies["auditory"] != 1 {
		t.Errorf("Unexpected tallies: %v", result.Tallies)
	}
	if result.RawScore != 3 || result.MaxPossibleScore != 4 {
		t.Errorf("Expected raw 3 of 4, got %d of %d", result.RawScore, result.MaxPossibleScore)
	}
}

func TestScoreCategoricalTieCombinesBands(t *testing.T) {
	q := categoricalFixture()
	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c1", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c2", Tag: "auditory"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c3", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c4", Tag: "auditory"})

	result, err := Score(q, attempt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Ties must report the union, never an arbitrary single winner, ordered
	// the way the band table lists the categories.
	if !reflect.DeepEqual(result.WinningTags, []string{"visual", "auditory"}) {
		t.Errorf("Expected winning tags [visual auditory], got %v", result.WinningTags)
	}
	if result.Band.Label != "Visual/Auditory Learner" {
		t.Errorf("Expected combined band label, got %q", result.Band.Label)
	}
}

func TestScoreCategoricalTieWithoutSharedLabelSuffix(t *testing.T) {
	q := categoricalFixture()
	q.Bands[0].Label = "Picture Thinker"
	q.Bands[1].Label = "Sound First"

	attempt := NewAttempt(q.ID)
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c1", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c2", Tag: "auditory"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c3", Tag: "visual"})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "c4", Tag: "auditory"})

	result, err := Score(q, attempt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Labels with no common suffix are joined as-is; nothing is invented.
	if result.Band.Label != "Picture Thinker/Sound First" {
		t.Errorf("Expected joined labels, got %q", result.Band.Label)
	}
	if result.Band.DisplayName != "Visual/Auditory" {
		t.Errorf("Expected joined display names, got %q", result.Band.DisplayName)
	}
}

func TestScoreCategoricalMissingBand(t *testing.T) {
	q := categoricalFixture()
	q.Bands = q.Bands[:2] // drop kinesthetic's band

	attempt := NewAttempt(q.ID)
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		attempt = RecordAnswer(attempt, Answer{QuestionID: id, Tag: "kinesthetic"})
	}

	_, err := Score(q, attempt)
	var noBand *NoMatchingBandError
	if !errors.As(err, &noBand) {
		t.Fatalf("Expected NoMatchingBandError, got %v", err)
	}
}

package scoring

// Kind selects how a questionnaire is scored.
type Kind string

const (
	// KindNumeric sums choice values and buckets the normalized percentage
	// into a band.
	KindNumeric Kind = "numeric"
	// KindCategorical tallies choice tags and classifies by the winning
	// tag (or tie-set of tags).
	KindCategorical Kind = "categorical"
)

// Choice is one selectable option on a question. Numeric questionnaires read
// Value; categorical questionnaires read Tag.
type Choice struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
	Tag   string `json:"tag,omitempty"`
}

// Question is an immutable questionnaire entry.
type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Category string   `json:"category,omitempty"`
	Options  []Choice `json:"options"`
}

// Answer records the choice a user made for one question. Value and Tag are
// copied from the chosen option.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
	Tag        string `json:"tag,omitempty"`
}

// ScoreRange is an inclusive percentage range for a numeric band.
type ScoreRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Contains reports whether p falls inside the range, bounds included.
func (r ScoreRange) Contains(p float64) bool {
	return p >= float64(r.Low) && p <= float64(r.High)
}

// ResultBand is the static classification metadata for an outcome.
// Numeric bands carry a Range; categorical bands carry a Tag and DisplayName.
type ResultBand struct {
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Traits      []string   `json:"traits,omitempty"`
	Tips        []string   `json:"tips,omitempty"`
	Range       ScoreRange `json:"range,omitempty"`
	Tag         string     `json:"tag,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
}

// Questionnaire is a complete static test definition. Definitions are never
// mutated at runtime and are safe to share across concurrent scorings.
type Questionnaire struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Intro     string       `json:"intro,omitempty"`
	Kind      Kind         `json:"kind"`
	Questions []Question   `json:"questions"`
	Bands     []ResultBand `json:"bands"`
}

// ClassificationResult is the output of Score.
type ClassificationResult struct {
	QuestionnaireID  string         `json:"questionnaire_id"`
	RawScore         int            `json:"raw_score"`
	MaxPossibleScore int            `json:"max_possible_score"`
	Percentage       float64        `json:"percentage"`
	Band             ResultBand     `json:"band"`
	Tallies          map[string]int `json:"tallies,omitempty"`
	WinningTags      []string       `json:"winning_tags,omitempty"`
}

// question returns the definition for an id, or nil.
func (q *Questionnaire) question(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// bandForTag returns the categorical band for a single tag, or nil.
func (q *Questionnaire) bandForTag(tag string) *ResultBand {
	for i := range q.Bands {
		if q.Bands[i].Tag == tag {
			return &q.Bands[i]
		}
	}
	return nil
}

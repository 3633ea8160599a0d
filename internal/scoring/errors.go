package scoring

import (
	"fmt"
	"strings"
)

// All scoring failures are caller or configuration defects, never transient.
// They are surfaced immediately and must be fixed at the source rather than
// retried.

// IncompleteAttemptError reports an attempt missing one or more answers.
type IncompleteAttemptError struct {
	QuestionnaireID string
	MissingIDs      []string
}

func (e *IncompleteAttemptError) Error() string {
	return fmt.Sprintf("attempt for %q is incomplete: missing answers for [%s]",
		e.QuestionnaireID, strings.Join(e.MissingIDs, ", "))
}

// InvalidAnswerError reports an answer whose value is not among the allowed
// choices for its question. This means an upstream option list drifted from
// the questionnaire definition.
type InvalidAnswerError struct {
	QuestionID string
	Reason     string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer for question %q: %s", e.QuestionID, e.Reason)
}

// DegenerateQuestionnaireError reports a numeric questionnaire whose maximum
// possible score is zero.
type DegenerateQuestionnaireError struct {
	QuestionnaireID string
}

func (e *DegenerateQuestionnaireError) Error() string {
	return fmt.Sprintf("questionnaire %q has a max possible score of 0", e.QuestionnaireID)
}

// NoMatchingBandError reports a percentage or tag-set that no configured band
// covers. Band tables must be exhaustive over [0,100] (numeric) or over every
// category (categorical), so this is a static configuration defect.
type NoMatchingBandError struct {
	QuestionnaireID string
	Percentage      float64
	Tags            []string
}

func (e *NoMatchingBandError) Error() string {
	if len(e.Tags) > 0 {
		return fmt.Sprintf("questionnaire %q has no band for tags [%s]",
			e.QuestionnaireID, strings.Join(e.Tags, ", "))
	}
	return fmt.Sprintf("questionnaire %q has no band covering %.1f%%", e.QuestionnaireID, e.Percentage)
}

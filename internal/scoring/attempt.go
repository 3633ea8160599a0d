package scoring

// Attempt is an in-progress or completed set of answers for one
// questionnaire. It is treated as a value: RecordAnswer returns a new
// Attempt instead of mutating the receiver, so retries and resets never see
// shared state.
type Attempt struct {
	QuestionnaireID string   `json:"questionnaire_id" bson:"questionnaire_id"`
	Answers         []Answer `json:"answers" bson:"answers"`
}

// NewAttempt starts an empty attempt for a questionnaire.
func NewAttempt(questionnaireID string) Attempt {
	return Attempt{QuestionnaireID: questionnaireID}
}

// Answer returns the recorded answer for a question id, if any.
func (a Attempt) Answer(questionID string) (Answer, bool) {
	for _, ans := range a.Answers {
		if ans.QuestionID == questionID {
			return ans, true
		}
	}
	return Answer{}, false
}

// RecordAnswer returns a copy of the attempt with the answer applied.
// Re-answering a question replaces the previous answer rather than
// duplicating it.
func RecordAnswer(attempt Attempt, answer Answer) Attempt {
	answers := make([]Answer, len(attempt.Answers))
	copy(answers, attempt.Answers)

	for i := range answers {
		if answers[i].QuestionID == answer.QuestionID {
			answers[i] = answer
			return Attempt{QuestionnaireID: attempt.QuestionnaireID, Answers: answers}
		}
	}
	return Attempt{QuestionnaireID: attempt.QuestionnaireID, Answers: append(answers, answer)}
}

// NextQuestion returns the first question in questionnaire order with no
// recorded answer. done is true once every question is answered.
func NextQuestion(q *Questionnaire, attempt Attempt) (next *Question, done bool) {
	for i := range q.Questions {
		if _, ok := attempt.Answer(q.Questions[i].ID); !ok {
			return &q.Questions[i], false
		}
	}
	return nil, true
}

// IsComplete reports whether every question in q has an answer.
func IsComplete(q *Questionnaire, attempt Attempt) bool {
	_, done := NextQuestion(q, attempt)
	return done
}

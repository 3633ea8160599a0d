package scoring

import "testing"

func TestRecordAnswerReplacesNotDuplicates(t *testing.T) {
	attempt := NewAttempt("test")
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 2})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q2", Value: 3})
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 5})

	if len(attempt.Answers) != 2 {
		t.Fatalf("Expected 2 answers after re-answering q1, got %d", len(attempt.Answers))
	}
	ans, ok := attempt.Answer("q1")
	if !ok {
		t.Fatal("Expected an answer for q1")
	}
	if ans.Value != 5 {
		t.Errorf("Expected replaced value 5, got %d", ans.Value)
	}
}

func TestRecordAnswerDoesNotMutateOriginal(t *testing.T) {
	original := RecordAnswer(NewAttempt("test"), Answer{QuestionID: "q1", Value: 2})
	updated := RecordAnswer(original, Answer{QuestionID: "q1", Value: 5})

	orig, _ := original.Answer("q1")
	if orig.Value != 2 {
		t.Errorf("Original attempt was mutated: q1 value became %d", orig.Value)
	}
	upd, _ := updated.Answer("q1")
	if upd.Value != 5 {
		t.Errorf("Updated attempt lost the new value: got %d", upd.Value)
	}
}

func TestNextQuestionWalksInOrder(t *testing.T) {
	q := numericFixture()
	attempt := NewAttempt(q.ID)

	next, done := NextQuestion(q, attempt)
	if done || next == nil || next.ID != "q1" {
		t.Fatalf("Expected first question q1, got %v (done=%v)", next, done)
	}

	attempt = RecordAnswer(attempt, Answer{QuestionID: "q1", Value: 0})
	next, done = NextQuestion(q, attempt)
	if done || next.ID != "q2" {
		t.Fatalf("Expected q2 after answering q1, got %v (done=%v)", next, done)
	}

	// Answering out of order: the first unanswered question still wins.
	attempt = RecordAnswer(attempt, Answer{QuestionID: "q3", Value: 0})
	next, done = NextQuestion(q, attempt)
	if done || next.ID != "q2" {
		t.Fatalf("Expected q2 with q3 already answered, got %v (done=%v)", next, done)
	}

	attempt = RecordAnswer(attempt, Answer{QuestionID: "q2", Value: 0})
	next, done = NextQuestion(q, attempt)
	if !done || next != nil {
		t.Fatalf("Expected done after all questions answered, got %v (done=%v)", next, done)
	}

	if !IsComplete(q, attempt) {
		t.Error("Expected IsComplete to report true")
	}
}

package service

import (
	"strings"
	"testing"

	"media-service/internal/scoring"
)

func TestDescribeTestHidesScoringDetails(t *testing.T) {
	s := NewPlaygroundService(nil)

	for _, summary := range s.ListTests() {
		t.Run(summary.ID, func(t *testing.T) {
			def, err := s.DescribeTest(summary.ID)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			source, _ := scoring.Lookup(summary.ID)

			if len(def.Questions) != len(source.Questions) {
				t.Fatalf("Expected %d questions, got %d", len(source.Questions), len(def.Questions))
			}
			for i, pq := range def.Questions {
				if len(pq.Choices) != len(source.Questions[i].Options) {
					t.Errorf("Question %q: expected %d choices, got %d",
						pq.ID, len(source.Questions[i].Options), len(pq.Choices))
				}
				for j, text := range pq.Choices {
					if text != source.Questions[i].Options[j].Text {
						t.Errorf("Question %q choice %d: expected %q, got %q",
							pq.ID, j, source.Questions[i].Options[j].Text, text)
					}
					if strings.TrimSpace(text) == "" {
						t.Errorf("Question %q choice %d is empty", pq.ID, j)
					}
				}
			}
		})
	}
}

func TestDescribeTestUnknownID(t *testing.T) {
	s := NewPlaygroundService(nil)
	if _, err := s.DescribeTest("no-such-test"); err == nil {
		t.Error("Expected an error for an unknown test id")
	}
}

func TestAnswerForChoice(t *testing.T) {
	numeric := &scoring.Questionnaire{
		ID:   "numeric",
		Kind: scoring.KindNumeric,
		Questions: []scoring.Question{
			{ID: "q1", Options: []scoring.Choice{
				{Text: "never", Value: 0},
				{Text: "always", Value: 5},
			}},
		},
	}
	categorical := &scoring.Questionnaire{
		ID:   "categorical",
		Kind: scoring.KindCategorical,
		Questions: []scoring.Question{
			{ID: "c1", Options: []scoring.Choice{
				{Text: "see it", Tag: "visual"},
				{Text: "hear it", Tag: "auditory"},
			}},
		},
	}

	t.Run("numeric choice resolves to its value", func(t *testing.T) {
		answer, err := answerForChoice(numeric, "q1", 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if answer.QuestionID != "q1" || answer.Value != 5 {
			t.Errorf("Expected q1 value 5, got %+v", answer)
		}
	})

	t.Run("categorical choice resolves to its tag", func(t *testing.T) {
		answer, err := answerForChoice(categorical, "c1", 0)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if answer.QuestionID != "c1" || answer.Tag != "visual" {
			t.Errorf("Expected c1 tag visual, got %+v", answer)
		}
	})

	t.Run("choice index out of range", func(t *testing.T) {
		if _, err := answerForChoice(numeric, "q1", 2); err == nil {
			t.Error("Expected an error for an out-of-range choice")
		}
		if _, err := answerForChoice(numeric, "q1", -1); err == nil {
			t.Error("Expected an error for a negative choice")
		}
	})

	t.Run("unknown question", func(t *testing.T) {
		if _, err := answerForChoice(numeric, "ghost", 0); err == nil {
			t.Error("Expected an error for an unknown question")
		}
	})
}

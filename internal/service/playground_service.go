package service

import (
	"context"
	"fmt"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"
	"media-service/internal/scoring"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaygroundService drives the one-question-at-a-time quiz flow. The scoring
// engine stays pure; this layer owns persistence and attempt lifecycle.
// Concurrent requests for the same (user, test) are last-write-wins on the
// stored attempt, which matches the single-browser flow the site serves.
type PlaygroundService struct {
	Repo *repository.AttemptRepository
}

func NewPlaygroundService(repo *repository.AttemptRepository) *PlaygroundService {
	return &PlaygroundService{Repo: repo}
}

// TestSummary is the public listing entry: enough to render the playground
// index without exposing scoring weights.
type TestSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Intro         string `json:"intro"`
	Kind          string `json:"kind"`
	QuestionCount int    `json:"question_count"`
}

func (s *PlaygroundService) ListTests() []TestSummary {
	var summaries []TestSummary
	for _, q := range scoring.Catalog() {
		summaries = append(summaries, TestSummary{
			ID:            q.ID,
			Title:         q.Title,
			Intro:         q.Intro,
			Kind:          string(q.Kind),
			QuestionCount: len(q.Questions),
		})
	}
	return summaries
}

// GetTest returns the full definition, for server-side use only: scoring
// weights and band tables must not reach clients.
func (s *PlaygroundService) GetTest(testID string) (*scoring.Questionnaire, error) {
	q, ok := scoring.Lookup(testID)
	if !ok {
		return nil, fmt.Errorf("unknown test %q", testID)
	}
	return q, nil
}

// PublicQuestion is a question as clients see it: choices are plain text,
// addressed by index when answering.
type PublicQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// TestDefinition is the public view of a test for rendering question pages.
type TestDefinition struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Intro     string           `json:"intro,omitempty"`
	Kind      string           `json:"kind"`
	Questions []PublicQuestion `json:"questions"`
}

func publicQuestion(question scoring.Question) PublicQuestion {
	pq := PublicQuestion{ID: question.ID, Prompt: question.Prompt}
	for _, c := range question.Options {
		pq.Choices = append(pq.Choices, c.Text)
	}
	return pq
}

// DescribeTest returns the sanitized definition served to clients.
func (s *PlaygroundService) DescribeTest(testID string) (*TestDefinition, error) {
	q, err := s.GetTest(testID)
	if err != nil {
		return nil, err
	}
	def := &TestDefinition{
		ID:    q.ID,
		Title: q.Title,
		Intro: q.Intro,
		Kind:  string(q.Kind),
	}
	for _, question := range q.Questions {
		def.Questions = append(def.Questions, publicQuestion(question))
	}
	return def, nil
}

// StartAttempt creates a fresh attempt, replacing any unfinished one for the
// same (user, test). A completed attempt is kept until the user resets it.
func (s *PlaygroundService) StartAttempt(ctx context.Context, userID, testID string) (*models.PlaygroundAttempt, error) {
	if _, err := s.GetTest(testID); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.FindByUserAndTest(ctx, userID, testID); err == nil {
		if existing.Status == models.AttemptStatusCompleted {
			return nil, fmt.Errorf("test %q already completed; reset before retaking", testID)
		}
	}

	attempt := &models.PlaygroundAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		TestID:    testID,
		Attempt:   scoring.NewAttempt(testID),
		Status:    models.AttemptStatusInProgress,
		StartedAt: time.Now(),
	}
	if err := s.Repo.Upsert(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *PlaygroundService) GetAttempt(ctx context.Context, userID, testID string) (*models.PlaygroundAttempt, error) {
	return s.Repo.FindByUserAndTest(ctx, userID, testID)
}

// RecordAnswer resolves a choice index against the test definition, applies
// the answer, and persists the updated attempt. Clients submit indexes only;
// the choice's value and tag are looked up server-side so a tampered request
// cannot inflate a score. Re-answering a question replaces the earlier answer.
func (s *PlaygroundService) RecordAnswer(ctx context.Context, userID, testID, questionID string, choice int) (*models.PlaygroundAttempt, error) {
	q, err := s.GetTest(testID)
	if err != nil {
		return nil, err
	}
	answer, err := answerForChoice(q, questionID, choice)
	if err != nil {
		return nil, err
	}

	stored, err := s.Repo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("no attempt in progress for %q", testID)
	}
	if stored.Status == models.AttemptStatusCompleted {
		return nil, fmt.Errorf("attempt for %q is already completed", testID)
	}

	stored.Attempt = scoring.RecordAnswer(stored.Attempt, answer)
	if err := s.Repo.Upsert(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// answerForChoice maps a (question, choice index) pair to the answer the
// engine scores.
func answerForChoice(q *scoring.Questionnaire, questionID string, choice int) (scoring.Answer, error) {
	for _, question := range q.Questions {
		if question.ID != questionID {
			continue
		}
		if choice < 0 || choice >= len(question.Options) {
			return scoring.Answer{}, fmt.Errorf("question %q has no choice %d", questionID, choice)
		}
		opt := question.Options[choice]
		return scoring.Answer{QuestionID: questionID, Value: opt.Value, Tag: opt.Tag}, nil
	}
	return scoring.Answer{}, fmt.Errorf("unknown question %q", questionID)
}

// NextQuestion returns the next unanswered question in public form, or
// done=true.
func (s *PlaygroundService) NextQuestion(ctx context.Context, userID, testID string) (*PublicQuestion, bool, error) {
	q, err := s.GetTest(testID)
	if err != nil {
		return nil, false, err
	}
	stored, err := s.Repo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, false, fmt.Errorf("no attempt in progress for %q", testID)
	}
	next, done := scoring.NextQuestion(q, stored.Attempt)
	if next == nil {
		return nil, done, nil
	}
	pq := publicQuestion(*next)
	return &pq, done, nil
}

// SubmitAttempt scores the attempt all-or-nothing and persists the result.
// Engine errors pass through untouched so handlers can distinguish an
// incomplete attempt (a user problem) from configuration defects.
func (s *PlaygroundService) SubmitAttempt(ctx context.Context, userID, testID string) (*models.PlaygroundAttempt, error) {
	q, err := s.GetTest(testID)
	if err != nil {
		return nil, err
	}
	stored, err := s.Repo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("no attempt in progress for %q", testID)
	}
	if stored.Status == models.AttemptStatusCompleted {
		return stored, nil
	}

	result, err := scoring.Score(q, stored.Attempt)
	if err != nil {
		return nil, err
	}

	stored.Result = result
	stored.Status = models.AttemptStatusCompleted
	stored.CompletedAt = time.Now()
	if err := s.Repo.Upsert(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// GetResult returns the stored result for a completed attempt.
func (s *PlaygroundService) GetResult(ctx context.Context, userID, testID string) (*models.PlaygroundAttempt, error) {
	stored, err := s.Repo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no attempt found for %q", testID)
		}
		return nil, err
	}
	if stored.Status != models.AttemptStatusCompleted {
		return nil, fmt.Errorf("attempt for %q is not completed", testID)
	}
	return stored, nil
}

// ListResults returns all of a user's completed attempts for their profile.
func (s *PlaygroundService) ListResults(ctx context.Context, userID string) ([]models.PlaygroundAttempt, error) {
	return s.Repo.FindCompletedByUser(ctx, userID)
}

// ResetAttempt discards the stored attempt so the user can retake the test.
func (s *PlaygroundService) ResetAttempt(ctx context.Context, userID, testID string) error {
	return s.Repo.Delete(ctx, userID, testID)
}

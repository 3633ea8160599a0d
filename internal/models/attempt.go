package models

import (
	"time"

	"media-service/internal/scoring"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
)

// PlaygroundAttempt is the persisted form of a user's run through one
// playground test, keyed by (user, test). The embedded attempt holds the
// answers; Result is populated once the attempt is scored.
type PlaygroundAttempt struct {
	ID          string                        `bson:"_id,omitempty" json:"id"`
	UserID      string                        `bson:"user_id" json:"user_id"`
	TestID      string                        `bson:"test_id" json:"test_id"`
	Attempt     scoring.Attempt               `bson:"attempt" json:"attempt"`
	Status      string                        `bson:"status" json:"status"`
	Result      *scoring.ClassificationResult `bson:"result,omitempty" json:"result,omitempty"`
	StartedAt   time.Time                     `bson:"started_at" json:"started_at"`
	CompletedAt time.Time                     `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

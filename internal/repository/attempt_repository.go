package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("playground_attempts")}
}

func (r *AttemptRepository) FindByUserAndTest(ctx context.Context, userID, testID string) (*models.PlaygroundAttempt, error) {
	var attempt models.PlaygroundAttempt
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "test_id": testID}).Decode(&attempt)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindCompletedByUser(ctx context.Context, userID string) ([]models.PlaygroundAttempt, error) {
	filter := bson.M{"user_id": userID, "status": models.AttemptStatusCompleted}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.PlaygroundAttempt
	for cur.Next(ctx) {
		var a models.PlaygroundAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// Upsert saves the attempt under its (user, test) key.
func (r *AttemptRepository) Upsert(ctx context.Context, attempt *models.PlaygroundAttempt) error {
	filter := bson.M{"user_id": attempt.UserID, "test_id": attempt.TestID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, filter, attempt, opts)
	return err
}

func (r *AttemptRepository) Delete(ctx context.Context, userID, testID string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"user_id": userID, "test_id": testID})
	return err
}

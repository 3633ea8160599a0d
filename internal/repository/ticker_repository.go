package repository

import (
	"context"
	"time"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TickerRepository struct {
	Col *mongo.Collection
}

func NewTickerRepository(db *mongo.Database) *TickerRepository {
	return &TickerRepository{Col: db.Collection("tickers")}
}

func (r *TickerRepository) FindAll(ctx context.Context, kind string) ([]models.Ticker, error) {
	filter := bson.M{"status": bson.M{"$ne": "deleted"}}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tickers []models.Ticker
	for cur.Next(ctx) {
		var t models.Ticker
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, nil
}

// FindActive returns entries whose display window contains now.
func (r *TickerRepository) FindActive(ctx context.Context, kind string, now time.Time) ([]models.Ticker, error) {
	entries, err := r.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	var active []models.Ticker
	for i := range entries {
		if entries[i].ActiveAt(now) {
			active = append(active, entries[i])
		}
	}
	return active, nil
}

func (r *TickerRepository) FindByID(ctx context.Context, id string) (*models.Ticker, error) {
	var ticker models.Ticker
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&ticker)
	if err != nil {
		return nil, err
	}
	return &ticker, nil
}

func (r *TickerRepository) Create(ctx context.Context, ticker *models.Ticker) error {
	_, err := r.Col.InsertOne(ctx, ticker)
	return err
}

func (r *TickerRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *TickerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}

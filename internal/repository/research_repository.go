package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResearchRepository struct {
	Col *mongo.Collection
}

func NewResearchRepository(db *mongo.Database) *ResearchRepository {
	return &ResearchRepository{Col: db.Collection("research")}
}

func (r *ResearchRepository) Find(ctx context.Context, filter bson.M) ([]models.ResearchItem, error) {
	opts := options.Find().SetSort(bson.M{"published_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.ResearchItem
	for cur.Next(ctx) {
		var item models.ResearchItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ResearchRepository) FindByID(ctx context.Context, id string) (*models.ResearchItem, error) {
	var item models.ResearchItem
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ResearchRepository) Create(ctx context.Context, item *models.ResearchItem) error {
	_, err := r.Col.InsertOne(ctx, item)
	return err
}

func (r *ResearchRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ResearchRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}

func (r *ResearchRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VideoRepository struct {
	Col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{Col: db.Collection("videos")}
}

func (r *VideoRepository) Find(ctx context.Context, filter bson.M) ([]models.Video, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var videos []models.Video
	for cur.Next(ctx) {
		var v models.Video
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	_, err := r.Col.InsertOne(ctx, video)
	return err
}

func (r *VideoRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

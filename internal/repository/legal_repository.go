package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LegalRepository struct {
	Col *mongo.Collection
}

func NewLegalRepository(db *mongo.Database) *LegalRepository {
	return &LegalRepository{Col: db.Collection("legal_posts")}
}

func (r *LegalRepository) Find(ctx context.Context, filter bson.M) ([]models.LegalPost, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var posts []models.LegalPost
	for cur.Next(ctx) {
		var p models.LegalPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *LegalRepository) FindByID(ctx context.Context, id string) (*models.LegalPost, error) {
	var post models.LegalPost
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *LegalRepository) Create(ctx context.Context, post *models.LegalPost) error {
	_, err := r.Col.InsertOne(ctx, post)
	return err
}

func (r *LegalRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *LegalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}

func (r *LegalRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

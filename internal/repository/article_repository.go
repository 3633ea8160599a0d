package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleRepository struct {
	Col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{Col: db.Collection("articles")}
}

// Find lists articles matching the filter, newest first.
func (r *ArticleRepository) Find(ctx context.Context, filter bson.M) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var articles []models.Article
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.Col.FindOne(ctx, bson.M{"slug": slug, "status": bson.M{"$ne": "deleted"}}).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	_, err := r.Col.InsertOne(ctx, article)
	return err
}

func (r *ArticleRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// Delete soft-deletes so the admin CMS can restore.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}

func (r *ArticleRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

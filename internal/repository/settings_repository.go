package repository

import (
	"context"

	"media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepository struct {
	Col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{Col: db.Collection("settings")}
}

func (r *SettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.Col.FindOne(ctx, bson.M{"_id": models.SiteSettingsID}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save upserts the singleton document.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": models.SiteSettingsID}, settings, opts)
	return err
}

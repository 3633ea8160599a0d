package service

import (
	"context"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// GetSettings returns the singleton document, falling back to defaults if it
// has never been saved.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.Repo.Get(ctx)
	if err == mongo.ErrNoDocuments {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) SaveSettings(ctx context.Context, settings *models.SiteSettings, updatedBy string) error {
	settings.UpdatedBy = updatedBy
	settings.UpdatedAt = time.Now()
	return s.Repo.Save(ctx, settings)
}

func defaultSettings() *models.SiteSettings {
	return &models.SiteSettings{
		ID:            models.SiteSettingsID,
		SiteTitle:     "Campus Media",
		TickerEnabled: true,
		PlaygroundOn:  true,
		SocialLinks:   map[string]string{},
	}
}

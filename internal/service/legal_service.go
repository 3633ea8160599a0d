package service

import (
	"context"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// The legal column carries a standing disclaimer unless the columnist
// supplies their own.
const defaultLegalDisclaimer = "This column is commentary, not legal advice."

type LegalService struct {
	Repo *repository.LegalRepository
}

func NewLegalService(repo *repository.LegalRepository) *LegalService {
	return &LegalService{Repo: repo}
}

func (s *LegalService) ListPublished(ctx context.Context) ([]models.LegalPost, error) {
	return s.Repo.Find(ctx, bson.M{"published": true, "status": bson.M{"$ne": "deleted"}})
}

func (s *LegalService) ListAll(ctx context.Context) ([]models.LegalPost, error) {
	return s.Repo.Find(ctx, bson.M{"status": bson.M{"$ne": "deleted"}})
}

func (s *LegalService) GetPost(ctx context.Context, id string) (*models.LegalPost, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *LegalService) CreatePost(ctx context.Context, post *models.LegalPost) error {
	post.ID = uuid.NewString()
	post.Status = "active"
	if post.Disclaimer == "" {
		post.Disclaimer = defaultLegalDisclaimer
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	return s.Repo.Create(ctx, post)
}

func (s *LegalService) UpdatePost(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *LegalService) DeletePost(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *LegalService) RecordView(ctx context.Context, id string) error {
	return s.Repo.IncrementViews(ctx, id)
}

package service

import (
	"context"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type ResearchService struct {
	Repo *repository.ResearchRepository
}

func NewResearchService(repo *repository.ResearchRepository) *ResearchService {
	return &ResearchService{Repo: repo}
}

func (s *ResearchService) ListPublished(ctx context.Context, department string) ([]models.ResearchItem, error) {
	filter := bson.M{"published": true, "status": bson.M{"$ne": "deleted"}}
	if department != "" {
		filter["department"] = department
	}
	return s.Repo.Find(ctx, filter)
}

func (s *ResearchService) ListAll(ctx context.Context) ([]models.ResearchItem, error) {
	return s.Repo.Find(ctx, bson.M{"status": bson.M{"$ne": "deleted"}})
}

func (s *ResearchService) GetItem(ctx context.Context, id string) (*models.ResearchItem, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ResearchService) CreateItem(ctx context.Context, item *models.ResearchItem) error {
	item.ID = uuid.NewString()
	item.Status = "active"
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	return s.Repo.Create(ctx, item)
}

func (s *ResearchService) UpdateItem(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *ResearchService) DeleteItem(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *ResearchService) RecordView(ctx context.Context, id string) error {
	return s.Repo.IncrementViews(ctx, id)
}

package service

import (
	"context"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type VideoService struct {
	Repo *repository.VideoRepository
}

func NewVideoService(repo *repository.VideoRepository) *VideoService {
	return &VideoService{Repo: repo}
}

func (s *VideoService) ListPublished(ctx context.Context, section string) ([]models.Video, error) {
	filter := bson.M{"published": true, "status": bson.M{"$ne": "deleted"}}
	if section != "" {
		filter["section"] = section
	}
	return s.Repo.Find(ctx, filter)
}

func (s *VideoService) ListAll(ctx context.Context) ([]models.Video, error) {
	return s.Repo.Find(ctx, bson.M{"status": bson.M{"$ne": "deleted"}})
}

func (s *VideoService) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *VideoService) CreateVideo(ctx context.Context, video *models.Video) error {
	video.ID = uuid.NewString()
	video.Status = "active"
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	return s.Repo.Create(ctx, video)
}

func (s *VideoService) UpdateVideo(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *VideoService) RecordView(ctx context.Context, id string) error {
	return s.Repo.IncrementViews(ctx, id)
}

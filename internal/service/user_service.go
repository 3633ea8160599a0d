package service

import (
	"context"
	"fmt"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, user *models.UserProfile) error {
	if existing, err := s.Repo.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return fmt.Errorf("email %s already registered", user.Email)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleReader
	}
	user.Status = "active"
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return s.Repo.Create(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

// SetRole is admin-only at the handler layer; the service just validates the
// role value.
func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	switch role {
	case models.RoleReader, models.RoleEditor, models.RoleAdmin:
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return s.Repo.Update(ctx, id, bson.M{"role": role, "updated_at": time.Now()})
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

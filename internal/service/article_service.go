package service

import (
	"context"
	"strings"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type ArticleService struct {
	Repo *repository.ArticleRepository
}

func NewArticleService(repo *repository.ArticleRepository) *ArticleService {
	return &ArticleService{Repo: repo}
}

// ListPublished returns published articles, optionally narrowed to a section.
func (s *ArticleService) ListPublished(ctx context.Context, section string) ([]models.Article, error) {
	filter := bson.M{"published": true, "status": bson.M{"$ne": "deleted"}}
	if section != "" {
		filter["section"] = section
	}
	return s.Repo.Find(ctx, filter)
}

// ListAll is the admin view: includes drafts, excludes deleted.
func (s *ArticleService) ListAll(ctx context.Context) ([]models.Article, error) {
	return s.Repo.Find(ctx, bson.M{"status": bson.M{"$ne": "deleted"}})
}

func (s *ArticleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.Repo.FindBySlug(ctx, slug)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *models.Article) error {
	article.ID = uuid.NewString()
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	article.Status = "active"
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	return s.Repo.Create(ctx, article)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// RecordView bumps the view counter; failures are the caller's to ignore
// since a lost view must never block a page read.
func (s *ArticleService) RecordView(ctx context.Context, id string) error {
	return s.Repo.IncrementViews(ctx, id)
}

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

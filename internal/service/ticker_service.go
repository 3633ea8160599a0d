package service

import (
	"context"
	"log"
	"time"

	"media-service/internal/models"
	"media-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	tickerCacheKeyNews   = "tickers:active:news"
	tickerCacheKeySports = "tickers:active:sports"
	tickerCacheTTL       = 30 * time.Second
)

// TickerService serves the scrolling news ticker and live sports banner.
// Active entries are cached in Redis with a short TTL; any write invalidates
// both keys. A cache failure falls through to Mongo.
type TickerService struct {
	Repo  *repository.TickerRepository
	Cache *repository.CacheRepository
}

func NewTickerService(repo *repository.TickerRepository, cache *repository.CacheRepository) *TickerService {
	return &TickerService{Repo: repo, Cache: cache}
}

func (s *TickerService) GetActive(ctx context.Context, kind string) ([]models.Ticker, error) {
	key := tickerCacheKeyNews
	if kind == models.TickerKindSports {
		key = tickerCacheKeySports
	}

	if s.Cache != nil {
		var cached []models.Ticker
		if err := s.Cache.GetStruct(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	active, err := s.Repo.FindActive(ctx, kind, time.Now())
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SaveStruct(ctx, key, active, tickerCacheTTL); err != nil {
			log.Printf("ticker cache write failed: %s", err)
		}
	}
	return active, nil
}

func (s *TickerService) ListAll(ctx context.Context, kind string) ([]models.Ticker, error) {
	return s.Repo.FindAll(ctx, kind)
}

func (s *TickerService) GetTicker(ctx context.Context, id string) (*models.Ticker, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *TickerService) CreateTicker(ctx context.Context, ticker *models.Ticker) error {
	ticker.ID = uuid.NewString()
	if ticker.Kind == "" {
		ticker.Kind = models.TickerKindNews
	}
	if ticker.StartsAt.IsZero() {
		ticker.StartsAt = time.Now()
	}
	ticker.Status = "active"
	ticker.CreatedAt = time.Now()
	ticker.UpdatedAt = ticker.CreatedAt
	if err := s.Repo.Create(ctx, ticker); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TickerService) UpdateTicker(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	if err := s.Repo.Update(ctx, id, bson.M(update)); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TickerService) DeleteTicker(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TickerService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	for _, key := range []string{tickerCacheKeyNews, tickerCacheKeySports} {
		if err := s.Cache.DeleteKey(ctx, key); err != nil {
			log.Printf("ticker cache invalidation failed: %s", err)
		}
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const newsVersionKey = "news:ver"

type NewsInput struct {
	Slug       string
	Title      string
	Summary    string
	Body       string
	CoverImage string
	Published  bool
}

type newsService struct {
	repo  repository.News
	cache redis.UniversalClient
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func newNewsService(repo repository.News, cache redis.UniversalClient, ttl time.Duration, log *zap.SugaredLogger) *newsService {
	return &newsService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

type cachedNewsPage struct {
	Items []domain.News `json:"items"`
	Total int64         `json:"total"`
}

// List serves public pages from redis when possible. Cache keys embed a
// version counter that every write bumps, so stale pages simply expire.
func (s *newsService) List(ctx context.Context, publishedOnly bool, page, limit int) ([]domain.News, int64, error) {
	key := s.listKey(ctx, publishedOnly, page, limit)
	if key != "" {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached cachedNewsPage
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached.Items, cached.Total, nil
			}
		}
	}

	items, total, err := s.repo.List(ctx, publishedOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if key != "" {
		raw, err := json.Marshal(cachedNewsPage{Items: items, Total: total})
		if err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.log.Warnw("cache news page failed", "error", err)
			}
		}
	}

	return items, total, nil
}

func (s *newsService) listKey(ctx context.Context, publishedOnly bool, page, limit int) string {
	if s.cache == nil {
		return ""
	}

	ver, err := s.cache.Get(ctx, newsVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}

	return fmt.Sprintf("news:list:v%d:pub%t:p%d:l%d", ver, publishedOnly, page, limit)
}

func (s *newsService) bumpVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, newsVersionKey).Err(); err != nil {
		s.log.Warnw("bump news cache version failed", "error", err)
	}
}

func (s *newsService) GetBySlug(ctx context.Context, slug string) (*domain.News, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *newsService) Create(ctx context.Context, input NewsInput) (*domain.News, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate news id failed: %w", err)
	}

	news := &domain.News{
		ID:         id,
		Slug:       input.Slug,
		Title:      input.Title,
		Summary:    input.Summary,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	}
	if input.Published {
		now := time.Now().UTC()
		news.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, news); err != nil {
		return nil, err
	}

	s.bumpVersion(ctx)

	return news, nil
}

func (s *newsService) Update(ctx context.Context, id uuid.UUID, input NewsInput) error {
	news := &domain.News{
		ID:         id,
		Slug:       input.Slug,
		Title:      input.Title,
		Summary:    input.Summary,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	}
	if input.Published {
		now := time.Now().UTC()
		news.PublishedAt = &now
	}

	if err := s.repo.Update(ctx, news); err != nil {
		return err
	}

	s.bumpVersion(ctx)

	return nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.bumpVersion(ctx)

	return nil
}

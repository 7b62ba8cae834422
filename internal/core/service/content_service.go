package service

import (
	"context"
	"log/slog"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/ports"
)

// ContentService serves announcements, events and scholarships.
type ContentService struct {
	feed   ports.ContentFeed
	logger *slog.Logger
}

func NewContentService(feed ports.ContentFeed, logger *slog.Logger) *ContentService {
	return &ContentService{feed: feed, logger: logger}
}

func (s *ContentService) List(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	items, err := s.feed.List(ctx, kind)
	if err != nil {
		s.logger.ErrorContext(ctx, "content feed failed",
			slog.String("kind", string(kind)), slog.Any("error", err))
		return nil, domain.NewServiceError(domain.ErrUnexpected, "failed to load "+string(kind), "CONTENT_ERROR")
	}
	return items, nil
}

func (s *ContentService) Get(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	items, err := s.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.NewServiceError(domain.ErrContentNotFound, "content item not found", "CONTENT_NOT_FOUND")
}

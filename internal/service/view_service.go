package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// viewService implements ViewService over the dedup ledger
type viewService struct {
	articles repository.ArticleRepository
	views    repository.ViewRepository
	log      zerolog.Logger
}

func newViewService(repos *repository.Repositories, log zerolog.Logger) ViewService {
	return &viewService{
		articles: repos.Article,
		views:    repos.View,
		log:      log.With().Str("service", "view").Logger(),
	}
}

// RecordView records at most one view per (article, identity, UTC day).
// The ledger insert is a single atomic conditional write; a duplicate is a
// silent no-op, not an error. The counter increment happens only after an
// accepted insert and is best-effort: if it fails, the view stays in the
// ledger and the article undercounts by one.
func (s *viewService) RecordView(ctx context.Context, articleSlug string, identity models.Identity, now time.Time, userAgent string) (*models.ViewResult, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	day := now.UTC().Truncate(24 * time.Hour)
	event := &models.ViewEvent{
		ID:        uuid.New().String(),
		ArticleID: article.ID,
		IPAddress: identity.IP,
		UserID:    identity.UserID,
		ViewDate:  day,
		UserAgent: userAgent,
		CreatedAt: now,
	}

	accepted, err := s.views.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return &models.ViewResult{Accepted: false, ViewCount: article.ViewCount}, nil
	}

	count, err := s.articles.IncrementViewCount(ctx, article.ID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("article_id", article.ID).
			Msg("View accepted but counter increment failed")
		return &models.ViewResult{Accepted: true, ViewCount: article.ViewCount}, nil
	}

	return &models.ViewResult{Accepted: true, ViewCount: count}, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// engagementService implements EngagementService
type engagementService struct {
	articles    repository.ArticleRepository
	comments    repository.CommentRepository
	subscribers repository.SubscriberRepository
	log         zerolog.Logger
}

func newEngagementService(repos *repository.Repositories, log zerolog.Logger) EngagementService {
	return &engagementService{
		articles:    repos.Article,
		comments:    repos.Comment,
		subscribers: repos.Subscriber,
		log:         log.With().Str("service", "engagement").Logger(),
	}
}

// Subscribe performs a get-or-create newsletter signup by email. An address
// that previously unsubscribed is re-activated and counts as a new signup.
func (s *engagementService) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.subscribers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return &SubscribeResult{
				Created: false,
				Message: "This email is already subscribed to our newsletter.",
			}, nil
		}
		if err := s.subscribers.Reactivate(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &SubscribeResult{Created: true, Message: "Welcome back! Your subscription has been restored."}, nil
	}

	sub := &models.Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info().Str("subscriber_id", sub.ID).Msg("Newsletter signup")
	return &SubscribeResult{Created: true, Message: "Thanks for subscribing!"}, nil
}

// AddComment attaches a comment to the article with the given slug.
// Comments are approved by default. A nil result means the article does
// not exist.
func (s *engagementService) AddComment(ctx context.Context, articleSlug string, comment *models.Comment) (*models.Comment, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	comment.ID = uuid.New().String()
	comment.ArticleID = article.ID
	comment.IsApproved = true
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves approved comments for an article, oldest first.
// A nil slice with nil error means the article does not exist.
func (s *engagementService) ListComments(ctx context.Context, articleSlug string) ([]*models.Comment, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	comments, err := s.comments.ListApproved(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

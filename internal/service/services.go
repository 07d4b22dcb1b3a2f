package service

import (
	"context"
	"time"

	"github.com/hoops-content-api/internal/config"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// ViewService defines the interface for view tracking operations
type ViewService interface {
	// RecordView runs the dedup ledger check-and-insert for one request and,
	// when the view is accepted, increments the article's counter. A nil
	// result means the article does not exist.
	RecordView(ctx context.Context, articleSlug string, identity models.Identity, now time.Time, userAgent string) (*models.ViewResult, error)
}

// ContentService defines the interface for article and stats reads
type ContentService interface {
	GetArticle(ctx context.Context, slug string) (*models.Article, error)
	ListArticles(ctx context.Context, limit, offset int) ([]*models.Article, error)
	ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Article, error)
	CreateArticle(ctx context.Context, article *models.Article) error
	PublishArticle(ctx context.Context, id string, now time.Time) error
	Related(ctx context.Context, articleSlug string, limit int) ([]*models.Article, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	TeamRoster(ctx context.Context, teamID string) ([]*models.Player, error)
	TeamSummary(ctx context.Context, teamID string) (*models.StatSummary, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	PlayerStats(ctx context.Context, playerID string) ([]*models.PlayerStats, error)
}

// EngagementService defines the interface for newsletter and comment operations
type EngagementService interface {
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)
	AddComment(ctx context.Context, articleSlug string, comment *models.Comment) (*models.Comment, error)
	ListComments(ctx context.Context, articleSlug string) ([]*models.Comment, error)
}

// SubscribeResult is the outcome of a newsletter signup
type SubscribeResult struct {
	Created bool
	Message string
}

// Services holds all service interfaces
type Services struct {
	View       ViewService
	Content    ContentService
	Engagement EngagementService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		View:       newViewService(repos, log),
		Content:    newContentService(repos, log),
		Engagement: newEngagementService(repos, log),
	}
}

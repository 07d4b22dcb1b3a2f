package repository

import (
	"context"
	"time"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error)
	ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Article, error)
	ListRelated(ctx context.Context, articleID string, limit int) ([]*models.Article, error)
	UpdateStatus(ctx context.Context, id, status string, now time.Time) error
	IncrementViewCount(ctx context.Context, id string) (int, error)
	Count(ctx context.Context) (int, error)
}

// ViewRepository defines the interface for the view dedup ledger
type ViewRepository interface {
	// Insert records a view event if no entry exists for the same
	// (article, ip, user, day) key. It reports whether the row was
	// actually inserted; a duplicate key is not an error.
	Insert(ctx context.Context, event *models.ViewEvent) (bool, error)
	CountForArticle(ctx context.Context, articleID string) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
}

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
}

// PlayerRepository defines the interface for player and stats data operations
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error)
	CreateStats(ctx context.Context, stats *models.PlayerStats) error
	ListStats(ctx context.Context, playerID string) ([]*models.PlayerStats, error)
	ListTeamStatsBySeason(ctx context.Context, teamID, season string) ([]*models.PlayerStats, error)
	ListTeamSeasons(ctx context.Context, teamID string) ([]string, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error)
}

// SubscriberRepository defines the interface for newsletter data operations
type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Reactivate(ctx context.Context, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	View       ViewRepository
	Category   CategoryRepository
	Team       TeamRepository
	Player     PlayerRepository
	Comment    CommentRepository
	Subscriber SubscriberRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepo(db),
		View:       NewViewRepo(db),
		Category:   NewCategoryRepo(db),
		Team:       NewTeamRepo(db),
		Player:     NewPlayerRepo(db),
		Comment:    NewCommentRepo(db),
		Subscriber: NewSubscriberRepo(db),
	}
}

package repository

import (
	"context"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// viewRepo is the concrete implementation of ViewRepository
type viewRepo struct {
	db *database.DB
}

// NewViewRepo creates a new view ledger repository
func NewViewRepo(db *database.DB) ViewRepository {
	return &viewRepo{db: db}
}

// Insert performs the atomic conditional insert backing view deduplication.
// The uniqueness constraint on (article_id, ip_address, user_id, view_date)
// is the source of truth: concurrent inserts for the same key cannot both
// land, and the loser sees zero rows affected rather than an error.
func (r *viewRepo) Insert(ctx context.Context, event *models.ViewEvent) (bool, error) {
	query := `
		INSERT INTO view_events (id, article_id, ip_address, user_id, view_date, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT view_events_dedup_key DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		event.ID, event.ArticleID, event.IPAddress, event.UserID,
		event.ViewDate, event.UserAgent, event.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// CountForArticle returns the number of ledger entries for an article
func (r *viewRepo) CountForArticle(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM view_events WHERE article_id = $1", articleID).Scan(&count)
	return count, err
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// subscriberRepo is the concrete implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// NewSubscriberRepo creates a new newsletter subscriber repository
func NewSubscriberRepo(db *database.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Create inserts a new subscriber
func (r *subscriberRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, is_active, subscribed_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, strings.ToLower(sub.Email), sub.IsActive, sub.SubscribedAt,
	)
	return err
}

// GetByEmail retrieves a subscriber by email, case-insensitively
func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	query := `SELECT id, email, is_active, subscribed_at FROM newsletter_subscribers WHERE email = $1`

	var sub models.Subscriber
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(
		&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Reactivate flips an unsubscribed address back to active
func (r *subscriberRepo) Reactivate(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET is_active = TRUE WHERE id = $1`, id)
	return err
}

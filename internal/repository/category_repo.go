package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// Create inserts a new category
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description, time.Now(),
	)
	return err
}

// GetBySlug retrieves a category by its unique slug
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT id, name, slug, description, created_at FROM categories WHERE slug = $1`

	var category models.Category
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List retrieves all categories ordered by name
func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, description, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, title, slug, subtitle, body, excerpt, author_name, category_id,
	status, is_featured, reading_time, view_count, meta_description, created_at, updated_at, published_at`

// Create inserts a new article along with its team and player associations
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO articles (id, title, slug, subtitle, body, excerpt, author_name, category_id,
			status, is_featured, reading_time, view_count, meta_description, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.Subtitle, article.Body,
		article.Excerpt, article.AuthorName, article.CategoryID,
		article.Status, article.IsFeatured, article.ReadingTime, article.ViewCount,
		article.MetaDescription, article.CreatedAt, time.Now(), article.PublishedAt,
	)
	if err != nil {
		return err
	}

	for _, teamID := range article.TeamIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_teams (article_id, team_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			article.ID, teamID,
		); err != nil {
			return err
		}
	}
	for _, playerID := range article.PlayerIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_players (article_id, player_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			article.ID, playerID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetBySlug retrieves an article by its unique slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
}

func (r *articleRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (r *articleRepo) loadAssociations(ctx context.Context, article *models.Article) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT team_id FROM article_teams WHERE article_id = $1`, article.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		article.TeamIDs = append(article.TeamIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	playerRows, err := r.db.QueryContext(ctx,
		`SELECT player_id FROM article_players WHERE article_id = $1`, article.ID)
	if err != nil {
		return err
	}
	defer playerRows.Close()
	for playerRows.Next() {
		var id string
		if err := playerRows.Scan(&id); err != nil {
			return err
		}
		article.PlayerIDs = append(article.PlayerIDs, id)
	}
	return playerRows.Err()
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// ListPublished retrieves published articles, most recently published first
func (r *articleRepo) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'published'
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, limit, offset)
}

// ListByCategory retrieves published articles in the category with the given slug
func (r *articleRepo) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		WHERE a.status = 'published'
		  AND a.category_id = (SELECT id FROM categories WHERE slug = $1)
		ORDER BY a.published_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, categorySlug, limit, offset)
}

// ListRelated computes the related-article set for one article: published
// articles sharing its category, at least one team, or at least one player.
// The union is deduplicated by row identity and ordered most recently
// published first. The source article is always excluded.
func (r *articleRepo) ListRelated(ctx context.Context, articleID string, limit int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		WHERE a.status = 'published'
		  AND a.id <> $1
		  AND (
			(a.category_id IS NOT NULL AND a.category_id = (SELECT category_id FROM articles WHERE id = $1))
			OR EXISTS (
				SELECT 1 FROM article_teams at1
				JOIN article_teams at2 ON at1.team_id = at2.team_id
				WHERE at1.article_id = a.id AND at2.article_id = $1
			)
			OR EXISTS (
				SELECT 1 FROM article_players ap1
				JOIN article_players ap2 ON ap1.player_id = ap2.player_id
				WHERE ap1.article_id = a.id AND ap2.article_id = $1
			)
		  )
		ORDER BY a.published_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, articleID, limit)
}

func (r *articleRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// UpdateStatus transitions an article's status. published_at is filled in
// on the first transition to published and never overwritten after that.
func (r *articleRepo) UpdateStatus(ctx context.Context, id, status string, now time.Time) error {
	query := `
		UPDATE articles
		SET status = $2,
		    published_at = CASE
			WHEN $2 = 'published' AND published_at IS NULL THEN $3
			ELSE published_at
		    END,
		    updated_at = $3
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, status, now)
	return err
}

// IncrementViewCount adds exactly one to the article's view counter and
// returns the new value. This is the only write path for view_count.
func (r *articleRepo) IncrementViewCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`,
		id,
	).Scan(&count)
	return count, err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(s scanner) (*models.Article, error) {
	var article models.Article
	var categoryID sql.NullString
	var publishedAt sql.NullTime

	err := s.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Subtitle, &article.Body,
		&article.Excerpt, &article.AuthorName, &categoryID,
		&article.Status, &article.IsFeatured, &article.ReadingTime, &article.ViewCount,
		&article.MetaDescription, &article.CreatedAt, &article.UpdatedAt, &publishedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		article.CategoryID = &categoryID.String
	}
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	return &article, nil
}

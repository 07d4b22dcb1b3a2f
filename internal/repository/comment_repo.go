package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_name, body, parent_id, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.AuthorName, comment.Body,
		comment.ParentID, comment.IsApproved, comment.CreatedAt, time.Now(),
	)
	return err
}

// ListApproved retrieves approved comments for an article, oldest first
func (r *commentRepo) ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_name, body, parent_id, is_approved, created_at, updated_at
		FROM comments
		WHERE article_id = $1 AND is_approved = TRUE
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		var parentID sql.NullString
		if err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.AuthorName, &comment.Body,
			&parentID, &comment.IsApproved, &comment.CreatedAt, &comment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if parentID.Valid {
			comment.ParentID = &parentID.String
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

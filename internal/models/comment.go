package models

import (
	"time"
)

// Comment represents a reader comment on an article
type Comment struct {
	ID         string    `json:"id" db:"id"`
	ArticleID  string    `json:"article_id" db:"article_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Body       string    `json:"body" db:"body"`
	ParentID   *string   `json:"parent_id,omitempty" db:"parent_id"`
	IsApproved bool      `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// MaxCommentLength is the maximum allowed characters in a comment body
const MaxCommentLength = 2000

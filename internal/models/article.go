package models

import (
	"time"
)

// Article statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[string]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

// Article represents an editorial article
type Article struct {
	ID              string     `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Subtitle        string     `json:"subtitle,omitempty" db:"subtitle"`
	Body            string     `json:"body" db:"body"`
	Excerpt         string     `json:"excerpt,omitempty" db:"excerpt"`
	AuthorName      string     `json:"author_name,omitempty" db:"author_name"`
	CategoryID      *string    `json:"category_id,omitempty" db:"category_id"`
	Status          string     `json:"status" db:"status"`
	IsFeatured      bool       `json:"is_featured" db:"is_featured"`
	ReadingTime     int        `json:"reading_time" db:"reading_time"`
	ViewCount       int        `json:"view_count" db:"view_count"`
	MetaDescription string     `json:"meta_description,omitempty" db:"meta_description"`
	TeamIDs         []string   `json:"team_ids,omitempty" db:"-"`
	PlayerIDs       []string   `json:"player_ids,omitempty" db:"-"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	PublishedAt     *time.Time `json:"published_at,omitempty" db:"published_at"`
}

// IsPublished reports whether the article is live
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished && a.PublishedAt != nil
}

package models

import (
	"time"
)

// Identity is the (IP, optional user) pair used to deduplicate views.
// An empty UserID means an anonymous visitor; all anonymous visits from
// one IP share a single daily dedup slot.
type Identity struct {
	IP     string
	UserID string
}

// ViewEvent is one accepted entry in the view ledger. At most one exists
// per (article, IP, user, calendar day).
type ViewEvent struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserID    string    `json:"user_id,omitempty" db:"user_id"`
	ViewDate  time.Time `json:"view_date" db:"view_date"`
	UserAgent string    `json:"-" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ViewResult is the outcome of recording a view
type ViewResult struct {
	Accepted  bool `json:"accepted"`
	ViewCount int  `json:"views"`
}

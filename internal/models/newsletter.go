package models

import (
	"time"
)

// Subscriber represents a newsletter signup
type Subscriber struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

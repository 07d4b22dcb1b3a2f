package validation

import (
	"regexp"
	"strings"

	"github.com/hoops-content-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether the given string is a plausible email address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidSlug reports whether the given string is a well-formed URL slug
func ValidSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

// ValidateSignup validates a newsletter signup request
func ValidateSignup(email string) []ValidationError {
	var errors []ValidationError
	email = strings.TrimSpace(email)
	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !ValidEmail(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format"})
	}
	return errors
}

// ValidateComment validates a comment submission
func ValidateComment(authorName, body string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(authorName) == "" {
		errors = append(errors, ValidationError{Field: "author_name", Message: "author name is required"})
	}

	body = strings.TrimSpace(body)
	if body == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "comment body is required"})
	} else if len(body) > models.MaxCommentLength {
		errors = append(errors, ValidationError{Field: "body", Message: "comment is too long"})
	}

	return errors
}

// ValidateArticle validates an article create request
func ValidateArticle(article *models.Article) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(article.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(article.Body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	}
	if article.Slug != "" && !ValidSlug(article.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "invalid slug format"})
	}
	if article.Status != "" && !models.ValidStatuses[article.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "status must be one of: draft, published, archived"})
	}

	return errors
}

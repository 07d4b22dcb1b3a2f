package validation

import (
	"strings"
	"testing"

	"github.com/hoops-content-api/internal/models"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		wantErrors int
		wantField  string
	}{
		{"valid email", "fan@example.com", 0, ""},
		{"valid email with plus", "fan+news@example.com", 0, ""},
		{"missing email", "", 1, "email"},
		{"whitespace only", "   ", 1, "email"},
		{"not an email", "not-an-email", 1, "email"},
		{"missing tld", "fan@example", 1, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(tt.email)
			if len(errs) != tt.wantErrors {
				t.Fatalf("Expected %d errors, got %d", tt.wantErrors, len(errs))
			}
			if tt.wantErrors > 0 && errs[0].Field != tt.wantField {
				t.Errorf("Expected error on field %q, got %q", tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		author     string
		body       string
		wantErrors int
	}{
		{"valid comment", "Fan", "Great article!", 0},
		{"missing author", "", "Great article!", 1},
		{"missing body", "Fan", "", 1},
		{"both missing", "  ", "  ", 2},
		{"body too long", "Fan", strings.Repeat("x", models.MaxCommentLength+1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateComment(tt.author, tt.body)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name       string
		article    *models.Article
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid article",
			article:    &models.Article{Title: "Thunder Win", Body: "Recap...", Status: "published"},
			wantErrors: 0,
		},
		{
			name:       "valid with explicit slug",
			article:    &models.Article{Title: "Thunder Win", Slug: "thunder-win", Body: "Recap..."},
			wantErrors: 0,
		},
		{
			name:       "missing title",
			article:    &models.Article{Body: "Recap..."},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "bad slug format",
			article:    &models.Article{Title: "Thunder Win", Slug: "Thunder Win!", Body: "Recap..."},
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "bad status",
			article:    &models.Article{Title: "Thunder Win", Body: "Recap...", Status: "live"},
			wantErrors: 1,
			wantFields: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateArticle(tt.article)
			if len(errs) != tt.wantErrors {
				t.Fatalf("Expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("Expected error on field %q, got %q", field, errs[i].Field)
				}
			}
		})
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"thunder-win-game-7", "mvp-race", "a"}
	invalid := []string{"Thunder", "double--dash", "-leading", "trailing-", "under_score"}

	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("%q should be a valid slug", s)
		}
	}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("%q should not be a valid slug", s)
		}
	}
}

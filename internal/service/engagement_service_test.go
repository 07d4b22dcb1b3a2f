package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/hoops-content-api/internal/models"
)

func TestSubscribe_NewEmail(t *testing.T) {
	services, tr := setupServices()
	ctx := context.Background()

	result, err := services.Engagement.Subscribe(ctx, "Fan@Example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !result.Created {
		t.Error("New email should create a subscription")
	}

	// Stored lowercased
	sub, _ := tr.subscribers.GetByEmail(ctx, "fan@example.com")
	if sub == nil {
		t.Fatal("Subscriber should be stored under the lowercased email")
	}
	if !sub.IsActive {
		t.Error("New subscriber should be active")
	}
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	services, _ := setupServices()
	ctx := context.Background()

	if _, err := services.Engagement.Subscribe(ctx, "fan@example.com"); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	result, err := services.Engagement.Subscribe(ctx, "fan@example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if result.Created {
		t.Error("Duplicate signup should not create a subscription")
	}
	if result.Message == "" {
		t.Error("Duplicate signup should carry a user-facing message")
	}
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	services, tr := setupServices()
	ctx := context.Background()

	tr.subscribers.Create(ctx, &models.Subscriber{
		ID:           "sub-1",
		Email:        "fan@example.com",
		IsActive:     false,
		SubscribedAt: time.Now().Add(-30 * 24 * time.Hour),
	})

	result, err := services.Engagement.Subscribe(ctx, "fan@example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !result.Created {
		t.Error("Unsubscribed email should be re-activated and count as a signup")
	}

	sub, _ := tr.subscribers.GetByEmail(ctx, "fan@example.com")
	if !sub.IsActive {
		t.Error("Subscription should be active again")
	}
}

func TestAddComment_UnknownArticle(t *testing.T) {
	services, _ := setupServices()

	created, err := services.Engagement.AddComment(context.Background(), "missing", &models.Comment{
		AuthorName: "Fan",
		Body:       "Great read",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if created != nil {
		t.Error("Comment on an unknown article should yield nil, not an error")
	}
}

func TestAddComment_AndList(t *testing.T) {
	services, tr := setupServices()
	ctx := context.Background()

	tr.articles.Create(ctx, publishedArticle("article-x", "article-x"))

	first, err := services.Engagement.AddComment(ctx, "article-x", &models.Comment{
		AuthorName: "Fan One",
		Body:       "Great breakdown.",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if first.ID == "" || !first.IsApproved {
		t.Error("Comment should get an ID and be approved by default")
	}

	reply, err := services.Engagement.AddComment(ctx, "article-x", &models.Comment{
		AuthorName: "Fan Two",
		Body:       "Agreed.",
		ParentID:   &first.ID,
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != first.ID {
		t.Error("Reply should keep its parent reference")
	}

	// Unapproved comments are hidden from the listing
	tr.comments.Comments = append(tr.comments.Comments, &models.Comment{
		ID: "hidden", ArticleID: "article-x", AuthorName: "Troll", Body: "spam",
		IsApproved: false, CreatedAt: time.Now(),
	})

	comments, err := services.Engagement.ListComments(ctx, "article-x")
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 approved comments, got %d", len(comments))
	}
	if comments[0].ID != first.ID {
		t.Error("Comments should be listed oldest first")
	}
}

func TestListComments_UnknownArticle(t *testing.T) {
	services, _ := setupServices()

	comments, err := services.Engagement.ListComments(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if comments != nil {
		t.Error("Unknown article should yield nil comments")
	}
}

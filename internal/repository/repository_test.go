package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/hoops-content-api/internal/mocks"
	"github.com/hoops-content-api/internal/models"
)

func TestMockViewRepository_DedupKey(t *testing.T) {
	repo := mocks.NewMockViewRepository()
	ctx := context.Background()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	base := models.ViewEvent{
		ID:        "evt-1",
		ArticleID: "article-x",
		IPAddress: "1.2.3.4",
		ViewDate:  day,
	}

	inserted, err := repo.Insert(ctx, &base)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if !inserted {
		t.Error("First insert should land")
	}

	// Same key: rejected silently
	dup := base
	dup.ID = "evt-2"
	inserted, err = repo.Insert(ctx, &dup)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if inserted {
		t.Error("Duplicate key should not land")
	}

	// Each varying key component gets its own slot
	variants := []models.ViewEvent{
		{ID: "evt-3", ArticleID: "article-y", IPAddress: "1.2.3.4", ViewDate: day},
		{ID: "evt-4", ArticleID: "article-x", IPAddress: "5.6.7.8", ViewDate: day},
		{ID: "evt-5", ArticleID: "article-x", IPAddress: "1.2.3.4", UserID: "user-1", ViewDate: day},
		{ID: "evt-6", ArticleID: "article-x", IPAddress: "1.2.3.4", ViewDate: day.AddDate(0, 0, 1)},
	}
	for _, v := range variants {
		event := v
		inserted, err := repo.Insert(ctx, &event)
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if !inserted {
			t.Errorf("Event %s should land in its own slot", event.ID)
		}
	}

	count, _ := repo.CountForArticle(ctx, "article-x")
	if count != 4 {
		t.Errorf("Expected 4 ledger entries for article-x, got %d", count)
	}
}

func TestMockArticleRepository_RelatedUnion(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	published := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	cat := "cat-analysis"

	source := &models.Article{
		ID: "article-a", Slug: "article-a", Status: models.StatusPublished,
		CategoryID: &cat, TeamIDs: []string{"team-t"}, PublishedAt: &published,
	}
	byCategory := &models.Article{
		ID: "article-b", Slug: "article-b", Status: models.StatusPublished,
		CategoryID: &cat, PublishedAt: &published,
	}
	byTeam := &models.Article{
		ID: "article-c", Slug: "article-c", Status: models.StatusPublished,
		TeamIDs: []string{"team-t"}, PublishedAt: &published,
	}
	unrelated := &models.Article{
		ID: "article-d", Slug: "article-d", Status: models.StatusPublished,
		PublishedAt: &published,
	}

	for _, a := range []*models.Article{source, byCategory, byTeam, unrelated} {
		repo.Create(ctx, a)
	}

	related, err := repo.ListRelated(ctx, "article-a", 10)
	if err != nil {
		t.Fatalf("ListRelated failed: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("Expected 2 related articles, got %d", len(related))
	}
	for _, r := range related {
		if r.ID == "article-a" || r.ID == "article-d" {
			t.Errorf("Article %s should not be in the related set", r.ID)
		}
	}
}

func TestMockArticleRepository_UpdateStatus(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	article := &models.Article{ID: "article-a", Slug: "article-a", Status: models.StatusDraft}
	repo.Create(ctx, article)

	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.UpdateStatus(ctx, "article-a", models.StatusPublished, first)

	stored, _ := repo.GetByID(ctx, "article-a")
	if stored.PublishedAt == nil || !stored.PublishedAt.Equal(first) {
		t.Fatal("published_at should be stamped on first publish")
	}

	repo.UpdateStatus(ctx, "article-a", models.StatusPublished, first.Add(time.Hour))
	stored, _ = repo.GetByID(ctx, "article-a")
	if !stored.PublishedAt.Equal(first) {
		t.Error("published_at must not move on re-publish")
	}
}

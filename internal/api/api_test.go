package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoops-content-api/internal/api"
	"github.com/hoops-content-api/internal/config"
	"github.com/hoops-content-api/internal/mocks"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/repository"
	"github.com/hoops-content-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *repository.Repositories) {
	gin.SetMode(gin.TestMode)

	repos := &repository.Repositories{
		Article:    mocks.NewMockArticleRepository(),
		View:       mocks.NewMockViewRepository(),
		Category:   mocks.NewMockCategoryRepository(),
		Team:       mocks.NewMockTeamRepository(),
		Player:     mocks.NewMockPlayerRepository(),
		Comment:    mocks.NewMockCommentRepository(),
		Subscriber: mocks.NewMockSubscriberRepository(),
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "8080"},
		Content: config.ContentConfig{RelatedLimit: 4, PageSize: 20},
	}

	services := service.NewServices(repos, cfg, zerolog.Nop())
	router := api.NewRouter(services, cfg, zerolog.Nop())

	return router, repos
}

func seedArticle(repos *repository.Repositories, id, slug string, categoryID *string) *models.Article {
	published := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	article := &models.Article{
		ID:          id,
		Title:       "Article " + id,
		Slug:        slug,
		Body:        "body",
		Status:      models.StatusPublished,
		CategoryID:  categoryID,
		PublishedAt: &published,
		CreatedAt:   published,
	}
	repos.Article.Create(context.Background(), article)
	return article
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "hoops-content-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestTrackView(t *testing.T) {
	router, repos := setupTestRouter()
	seedArticle(repos, "article-x", "article-x", nil)

	req := httptest.NewRequest("POST", "/v1/articles/article-x/track-view", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	if response["views"].(float64) != 1 {
		t.Errorf("Expected 1 view, got %v", response["views"])
	}

	// Same visitor again: still success, count unchanged
	req = httptest.NewRequest("POST", "/v1/articles/article-x/track-view", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	json.Unmarshal(w.Body.Bytes(), &response)
	if response["views"].(float64) != 1 {
		t.Errorf("Duplicate view should leave count at 1, got %v", response["views"])
	}

	// Different visitor bumps the count
	req = httptest.NewRequest("POST", "/v1/articles/article-x/track-view", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	json.Unmarshal(w.Body.Bytes(), &response)
	if response["views"].(float64) != 2 {
		t.Errorf("Expected 2 views after distinct visitor, got %v", response["views"])
	}
}

func TestTrackView_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/v1/articles/missing/track-view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
	if response["error"] == nil {
		t.Error("Expected an error message")
	}
}

func TestGetRelated(t *testing.T) {
	router, repos := setupTestRouter()

	analysis := "cat-analysis"
	seedArticle(repos, "article-a", "article-a", &analysis)
	seedArticle(repos, "article-b", "article-b", &analysis)

	req := httptest.NewRequest("GET", "/v1/articles/article-a/related?limit=4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Count != 1 {
		t.Fatalf("Expected 1 related article, got %d", response.Count)
	}
	if response.Articles[0].ID != "article-b" {
		t.Errorf("Expected article-b, got %s", response.Articles[0].ID)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestNewsletterSignup(t *testing.T) {
	router, _ := setupTestRouter()

	body := strings.NewReader(`{"email": "fan@example.com"}`)
	req := httptest.NewRequest("POST", "/v1/newsletter", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}

	// Duplicate signup is polite, not an error status
	body = strings.NewReader(`{"email": "fan@example.com"}`)
	req = httptest.NewRequest("POST", "/v1/newsletter", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for duplicate signup, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != false {
		t.Errorf("Expected success false for duplicate, got %v", response["success"])
	}
	if response["error"] == nil {
		t.Error("Expected a user-facing message for duplicate signup")
	}
}

func TestNewsletterSignup_InvalidEmail(t *testing.T) {
	router, _ := setupTestRouter()

	body := strings.NewReader(`{"email": "not-an-email"}`)
	req := httptest.NewRequest("POST", "/v1/newsletter", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
}

func TestAddAndListComments(t *testing.T) {
	router, repos := setupTestRouter()
	seedArticle(repos, "article-x", "article-x", nil)

	body := strings.NewReader(`{"author_name": "Fan", "body": "Great breakdown."}`)
	req := httptest.NewRequest("POST", "/v1/articles/article-x/comments", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/v1/articles/article-x/comments", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Comments []models.Comment `json:"comments"`
		Count    int              `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Count != 1 {
		t.Errorf("Expected 1 comment, got %d", response.Count)
	}
}

func TestGetTeamWithSummary(t *testing.T) {
	router, repos := setupTestRouter()
	ctx := context.Background()

	repos.Team.Create(ctx, &models.Team{ID: "team-t", Name: "Thunder", City: "Oklahoma City", Conference: "Western", Division: "Northwest"})
	repos.Player.Create(ctx, &models.Player{ID: "player-1", Name: "Player One", TeamID: "team-t", Position: "PG"})
	repos.Player.CreateStats(ctx, &models.PlayerStats{ID: "s1", PlayerID: "player-1", Season: "2024-25", PointsPerGame: 20})

	req := httptest.NewRequest("GET", "/v1/teams/team-t", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Team    models.Team         `json:"team"`
		Roster  []models.Player     `json:"roster"`
		Summary *models.StatSummary `json:"summary"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Team.ID != "team-t" {
		t.Errorf("Expected team-t, got %s", response.Team.ID)
	}
	if len(response.Roster) != 1 {
		t.Errorf("Expected roster of 1, got %d", len(response.Roster))
	}
	if response.Summary == nil || response.Summary.AvgPoints != 20 {
		t.Errorf("Expected summary with avg points 20, got %+v", response.Summary)
	}
}

func TestGetTeam_NoStatsHasNullSummary(t *testing.T) {
	router, repos := setupTestRouter()

	repos.Team.Create(context.Background(), &models.Team{ID: "team-t", Name: "Thunder", City: "Oklahoma City", Conference: "Western", Division: "Northwest"})

	req := httptest.NewRequest("GET", "/v1/teams/team-t", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if summary, ok := response["summary"]; !ok || summary != nil {
		t.Errorf("Expected null summary for team with no stats, got %v", summary)
	}
}

package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hoops-content-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mu            sync.Mutex
	Articles      map[string]*models.Article
	SlugToArticle map[string]*models.Article
	InsertError   error
	IncrementErr  error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[string]*models.Article),
		SlugToArticle: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Articles[article.ID] = article
	m.SlugToArticle[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SlugToArticle[slug], nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.SlugToArticle[slug]
	return exists, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var published []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished {
			published = append(published, a)
		}
	}
	sortByPublishedDesc(published)
	return paginate(published, limit, offset), nil
}

func (m *MockArticleRepository) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Article, error) {
	// Mock treats the slug as the category ID for simplicity
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.CategoryID != nil && *a.CategoryID == categorySlug {
			matched = append(matched, a)
		}
	}
	sortByPublishedDesc(matched)
	return paginate(matched, limit, offset), nil
}

// ListRelated mirrors the SQL union: published articles sharing the source's
// category, a team, or a player, excluding the source itself.
func (m *MockArticleRepository) ListRelated(ctx context.Context, articleID string, limit int) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	source, ok := m.Articles[articleID]
	if !ok {
		return nil, nil
	}

	var related []*models.Article
	for _, a := range m.Articles {
		if a.ID == articleID || a.Status != models.StatusPublished {
			continue
		}
		if matchesCategory(source, a) || sharesAny(source.TeamIDs, a.TeamIDs) || sharesAny(source.PlayerIDs, a.PlayerIDs) {
			related = append(related, a)
		}
	}
	sortByPublishedDesc(related)
	return paginate(related, limit, 0), nil
}

func (m *MockArticleRepository) UpdateStatus(ctx context.Context, id, status string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	article, ok := m.Articles[id]
	if !ok {
		return nil
	}
	article.Status = status
	if status == models.StatusPublished && article.PublishedAt == nil {
		t := now
		article.PublishedAt = &t
	}
	article.UpdatedAt = now
	return nil
}

func (m *MockArticleRepository) IncrementViewCount(ctx context.Context, id string) (int, error) {
	if m.IncrementErr != nil {
		return 0, m.IncrementErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	article, ok := m.Articles[id]
	if !ok {
		return 0, nil
	}
	article.ViewCount++
	return article.ViewCount, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

func matchesCategory(source, candidate *models.Article) bool {
	return source.CategoryID != nil && candidate.CategoryID != nil &&
		*source.CategoryID == *candidate.CategoryID
}

func sharesAny(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func sortByPublishedDesc(articles []*models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		pi, pj := articles[i].PublishedAt, articles[j].PublishedAt
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return pi.After(*pj)
	})
}

func paginate(articles []*models.Article, limit, offset int) []*models.Article {
	if offset >= len(articles) {
		return nil
	}
	articles = articles[offset:]
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

// viewKey is the dedup uniqueness key the real table enforces
type viewKey struct {
	ArticleID string
	IP        string
	UserID    string
	Day       string
}

// MockViewRepository is a mock implementation of ViewRepository. Insert
// enforces the (article, ip, user, day) uniqueness key under a lock so
// concurrent callers behave like they would against the real constraint.
type MockViewRepository struct {
	mu          sync.Mutex
	Events      map[viewKey]*models.ViewEvent
	InsertError error
}

func NewMockViewRepository() *MockViewRepository {
	return &MockViewRepository{
		Events: make(map[viewKey]*models.ViewEvent),
	}
}

func (m *MockViewRepository) Insert(ctx context.Context, event *models.ViewEvent) (bool, error) {
	if m.InsertError != nil {
		return false, m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := viewKey{
		ArticleID: event.ArticleID,
		IP:        event.IPAddress,
		UserID:    event.UserID,
		Day:       event.ViewDate.Format("2006-01-02"),
	}
	if _, exists := m.Events[key]; exists {
		return false, nil
	}
	m.Events[key] = event
	return true, nil
}

func (m *MockViewRepository) CountForArticle(ctx context.Context, articleID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for key := range m.Events {
		if key.ArticleID == articleID {
			count++
		}
	}
	return count, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories map[string]*models.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[string]*models.Category)}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	m.Categories[category.Slug] = category
	return nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return m.Categories[slug], nil
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	Teams map[string]*models.Team
}

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{Teams: make(map[string]*models.Team)}
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	m.Teams[team.ID] = team
	return nil
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	return m.Teams[id], nil
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	var teams []*models.Team
	for _, t := range m.Teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].City != teams[j].City {
			return teams[i].City < teams[j].City
		}
		return teams[i].Name < teams[j].Name
	})
	return teams, nil
}

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	Players map[string]*models.Player
	Stats   []*models.PlayerStats
}

func NewMockPlayerRepository() *MockPlayerRepository {
	return &MockPlayerRepository{Players: make(map[string]*models.Player)}
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	m.Players[player.ID] = player
	return nil
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	return m.Players[id], nil
}

func (m *MockPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error) {
	var players []*models.Player
	for _, p := range m.Players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (m *MockPlayerRepository) CreateStats(ctx context.Context, stats *models.PlayerStats) error {
	m.Stats = append(m.Stats, stats)
	return nil
}

func (m *MockPlayerRepository) ListStats(ctx context.Context, playerID string) ([]*models.PlayerStats, error) {
	var records []*models.PlayerStats
	for _, s := range m.Stats {
		if s.PlayerID == playerID {
			records = append(records, s)
		}
	}
	return records, nil
}

func (m *MockPlayerRepository) ListTeamStatsBySeason(ctx context.Context, teamID, season string) ([]*models.PlayerStats, error) {
	var records []*models.PlayerStats
	for _, s := range m.Stats {
		player := m.Players[s.PlayerID]
		if player != nil && player.TeamID == teamID && s.Season == season {
			records = append(records, s)
		}
	}
	return records, nil
}

func (m *MockPlayerRepository) ListTeamSeasons(ctx context.Context, teamID string) ([]string, error) {
	seen := make(map[string]bool)
	var seasons []string
	for _, s := range m.Stats {
		player := m.Players[s.PlayerID]
		if player != nil && player.TeamID == teamID && !seen[s.Season] {
			seen[s.Season] = true
			seasons = append(seasons, s.Season)
		}
	}
	return seasons, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    []*models.Comment
	InsertError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error) {
	var approved []*models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID && c.IsApproved {
			approved = append(approved, c)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CreatedAt.Before(approved[j].CreatedAt)
	})
	return approved, nil
}

// MockSubscriberRepository is a mock implementation of SubscriberRepository
type MockSubscriberRepository struct {
	Subscribers map[string]*models.Subscriber // keyed by email
	InsertError error
	Reactivated []string
}

func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{Subscribers: make(map[string]*models.Subscriber)}
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Subscribers[sub.Email] = sub
	return nil
}

func (m *MockSubscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return m.Subscribers[email], nil
}

func (m *MockSubscriberRepository) Reactivate(ctx context.Context, id string) error {
	for _, sub := range m.Subscribers {
		if sub.ID == id {
			sub.IsActive = true
			m.Reactivated = append(m.Reactivated, id)
		}
	}
	return nil
}

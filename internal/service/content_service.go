package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// contentService implements ContentService
type contentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newContentService(repos *repository.Repositories, log zerolog.Logger) ContentService {
	return &contentService{
		repos: repos,
		log:   log.With().Str("service", "content").Logger(),
	}
}

// GetArticle retrieves an article by slug
func (s *contentService) GetArticle(ctx context.Context, slug string) (*models.Article, error) {
	return s.repos.Article.GetBySlug(ctx, slug)
}

// ListArticles retrieves published articles, newest first
func (s *contentService) ListArticles(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	return s.repos.Article.ListPublished(ctx, limit, offset)
}

// ListByCategory retrieves published articles in a category
func (s *contentService) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Article, error) {
	return s.repos.Article.ListByCategory(ctx, categorySlug, limit, offset)
}

// CreateArticle inserts a new article, generating an ID and slug as needed.
// An article created directly as published gets its published_at stamped.
func (s *contentService) CreateArticle(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	if article.Status == "" {
		article.Status = models.StatusDraft
	}
	if article.ReadingTime == 0 {
		article.ReadingTime = 5
	}
	now := time.Now()
	article.CreatedAt = now
	if article.Status == models.StatusPublished && article.PublishedAt == nil {
		article.PublishedAt = &now
	}
	return s.repos.Article.Create(ctx, article)
}

// PublishArticle transitions an article to published. The repository fills
// published_at only on the first transition and never overwrites it.
func (s *contentService) PublishArticle(ctx context.Context, id string, now time.Time) error {
	return s.repos.Article.UpdateStatus(ctx, id, models.StatusPublished, now)
}

// Related computes the bounded related-article set for the article with the
// given slug: published articles sharing its category, a team, or a player,
// deduplicated, most recently published first. An article with no category
// and no associations gets an empty result.
func (s *contentService) Related(ctx context.Context, articleSlug string, limit int) ([]*models.Article, error) {
	article, err := s.repos.Article.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	return s.repos.Article.ListRelated(ctx, article.ID, limit)
}

// GetTeam retrieves a team by ID
func (s *contentService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	return s.repos.Team.GetByID(ctx, id)
}

// ListTeams retrieves all teams
func (s *contentService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	return s.repos.Team.List(ctx)
}

// TeamRoster retrieves a team's players
func (s *contentService) TeamRoster(ctx context.Context, teamID string) ([]*models.Player, error) {
	return s.repos.Player.ListByTeam(ctx, teamID)
}

// TeamSummary computes the scalar rollup for a team's latest recorded
// season. A team with no stats records gets a nil summary, never zeros.
func (s *contentService) TeamSummary(ctx context.Context, teamID string) (*models.StatSummary, error) {
	seasons, err := s.repos.Player.ListTeamSeasons(ctx, teamID)
	if err != nil {
		return nil, err
	}
	season := LatestSeason(seasons)
	if season == "" {
		return nil, nil
	}

	records, err := s.repos.Player.ListTeamStatsBySeason(ctx, teamID, season)
	if err != nil {
		return nil, err
	}

	summary := Summarize(records)
	if summary != nil {
		summary.Season = season
	}
	return summary, nil
}

// GetPlayer retrieves a player by ID
func (s *contentService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return s.repos.Player.GetByID(ctx, id)
}

// PlayerStats retrieves a player's per-season records
func (s *contentService) PlayerStats(ctx context.Context, playerID string) ([]*models.PlayerStats, error) {
	return s.repos.Player.ListStats(ctx, playerID)
}

// Summarize computes arithmetic means over the given stats records.
// The caller restricts the records to one team and season. An empty input
// yields nil: absent, not zero.
func Summarize(records []*models.PlayerStats) *models.StatSummary {
	if len(records) == 0 {
		return nil
	}

	var points, rebounds, assists float64
	for _, r := range records {
		points += r.PointsPerGame
		rebounds += r.ReboundsPerGame
		assists += r.AssistsPerGame
	}

	n := float64(len(records))
	return &models.StatSummary{
		PlayerCount: len(records),
		AvgPoints:   points / n,
		AvgRebounds: rebounds / n,
		AvgAssists:  assists / n,
	}
}

// LatestSeason picks the most recent season string from the given set.
// Seasons are compared by their leading year ("2024-25" reads as 2024),
// with full-string comparison breaking ties. Strings with no parseable
// leading year sort lowest. Empty input yields "".
func LatestSeason(seasons []string) string {
	latest := ""
	latestYear := -1
	for _, season := range seasons {
		year := ParseSeasonStart(season)
		if year > latestYear || (year == latestYear && season > latest) {
			latest = season
			latestYear = year
		}
	}
	return latest
}

// ParseSeasonStart extracts the leading year of a season string, e.g.
// "2024-25" -> 2024. Returns -1 when no leading integer is present.
func ParseSeasonStart(season string) int {
	i := 0
	for i < len(season) && season[i] >= '0' && season[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	year, err := strconv.Atoi(season[:i])
	if err != nil {
		return -1
	}
	return year
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a title: lowercase, non-alphanumerics
// collapsed to single hyphens, trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

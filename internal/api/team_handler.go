package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/service"
	"github.com/rs/zerolog"
)

// TeamHandler handles team and player endpoints
type TeamHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(services *service.Services, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		services: services,
		log:      log.With().Str("handler", "team").Logger(),
	}
}

// ListTeams handles GET /v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	ctx := c.Request.Context()

	teams, err := h.services.Content.ListTeams(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list teams")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}
	if teams == nil {
		teams = []*models.Team{}
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}

// GetTeam handles GET /v1/teams/:id. The response carries the roster and
// the latest-season stat summary; a team with no recorded stats has a null
// summary rather than zeroed averages.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	team, err := h.services.Content.GetTeam(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("team_id", id).Msg("Failed to get team")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get team"})
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}

	roster, err := h.services.Content.TeamRoster(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("team_id", id).Msg("Failed to get roster")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get team"})
		return
	}
	if roster == nil {
		roster = []*models.Player{}
	}

	summary, err := h.services.Content.TeamSummary(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("team_id", id).Msg("Failed to compute team summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team":    team,
		"roster":  roster,
		"summary": summary,
	})
}

// GetPlayer handles GET /v1/players/:id
func (h *TeamHandler) GetPlayer(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	player, err := h.services.Content.GetPlayer(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("player_id", id).Msg("Failed to get player")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get player"})
		return
	}
	if player == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	stats, err := h.services.Content.PlayerStats(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("player_id", id).Msg("Failed to get player stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get player"})
		return
	}
	if stats == nil {
		stats = []*models.PlayerStats{}
	}

	c.JSON(http.StatusOK, gin.H{
		"player": player,
		"stats":  stats,
	})
}

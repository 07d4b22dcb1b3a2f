package repository

import (
	"context"
	"database/sql"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// playerRepo is the concrete implementation of PlayerRepository
type playerRepo struct {
	db *database.DB
}

// NewPlayerRepo creates a new player repository
func NewPlayerRepo(db *database.DB) PlayerRepository {
	return &playerRepo{db: db}
}

const statsColumns = `id, player_id, season, games_played, minutes_per_game, points_per_game,
	rebounds_per_game, assists_per_game, steals_per_game, blocks_per_game, turnovers_per_game,
	field_goal_pct, three_point_pct, free_throw_pct`

// Create inserts a new player
func (r *playerRepo) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (id, name, team_id, position, jersey_number, height, weight, years_pro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		player.ID, player.Name, player.TeamID, player.Position,
		player.JerseyNumber, player.Height, player.Weight, player.YearsPro,
	)
	return err
}

// GetByID retrieves a player by ID
func (r *playerRepo) GetByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	var jersey, weight sql.NullInt64

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, team_id, position, jersey_number, height, weight, years_pro
		 FROM players WHERE id = $1`, id).Scan(
		&player.ID, &player.Name, &player.TeamID, &player.Position,
		&jersey, &player.Height, &weight, &player.YearsPro,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if jersey.Valid {
		n := int(jersey.Int64)
		player.JerseyNumber = &n
	}
	if weight.Valid {
		w := int(weight.Int64)
		player.Weight = &w
	}
	return &player, nil
}

// ListByTeam retrieves a team's roster ordered by name
func (r *playerRepo) ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, team_id, position, jersey_number, height, weight, years_pro
		 FROM players WHERE team_id = $1 ORDER BY name`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var player models.Player
		var jersey, weight sql.NullInt64
		if err := rows.Scan(
			&player.ID, &player.Name, &player.TeamID, &player.Position,
			&jersey, &player.Height, &weight, &player.YearsPro,
		); err != nil {
			return nil, err
		}
		if jersey.Valid {
			n := int(jersey.Int64)
			player.JerseyNumber = &n
		}
		if weight.Valid {
			w := int(weight.Int64)
			player.Weight = &w
		}
		players = append(players, &player)
	}
	return players, rows.Err()
}

// CreateStats inserts a per-season stats record for a player
func (r *playerRepo) CreateStats(ctx context.Context, stats *models.PlayerStats) error {
	query := `
		INSERT INTO player_stats (id, player_id, season, games_played, minutes_per_game,
			points_per_game, rebounds_per_game, assists_per_game, steals_per_game,
			blocks_per_game, turnovers_per_game, field_goal_pct, three_point_pct, free_throw_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		stats.ID, stats.PlayerID, stats.Season, stats.GamesPlayed, stats.MinutesPerGame,
		stats.PointsPerGame, stats.ReboundsPerGame, stats.AssistsPerGame, stats.StealsPerGame,
		stats.BlocksPerGame, stats.TurnoversPG, stats.FieldGoalPct, stats.ThreePointPct,
		stats.FreeThrowPct,
	)
	return err
}

// ListStats retrieves all per-season records for a player, newest season first
func (r *playerRepo) ListStats(ctx context.Context, playerID string) ([]*models.PlayerStats, error) {
	query := `SELECT ` + statsColumns + ` FROM player_stats WHERE player_id = $1 ORDER BY season DESC`
	return r.listStats(ctx, query, playerID)
}

// ListTeamStatsBySeason retrieves one season's stats records for every player on a team
func (r *playerRepo) ListTeamStatsBySeason(ctx context.Context, teamID, season string) ([]*models.PlayerStats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM player_stats ps
		JOIN players p ON p.id = ps.player_id
		WHERE p.team_id = $1 AND ps.season = $2
		ORDER BY ps.points_per_game DESC
	`
	return r.listStats(ctx, query, teamID, season)
}

// ListTeamSeasons retrieves the distinct season strings recorded for a team's players
func (r *playerRepo) ListTeamSeasons(ctx context.Context, teamID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ps.season
		FROM player_stats ps
		JOIN players p ON p.id = ps.player_id
		WHERE p.team_id = $1
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (r *playerRepo) listStats(ctx context.Context, query string, args ...interface{}) ([]*models.PlayerStats, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PlayerStats
	for rows.Next() {
		var stats models.PlayerStats
		if err := rows.Scan(
			&stats.ID, &stats.PlayerID, &stats.Season, &stats.GamesPlayed, &stats.MinutesPerGame,
			&stats.PointsPerGame, &stats.ReboundsPerGame, &stats.AssistsPerGame, &stats.StealsPerGame,
			&stats.BlocksPerGame, &stats.TurnoversPG, &stats.FieldGoalPct, &stats.ThreePointPct,
			&stats.FreeThrowPct,
		); err != nil {
			return nil, err
		}
		records = append(records, &stats)
	}
	return records, rows.Err()
}

package repository

import (
	"context"
	"database/sql"

	"github.com/hoops-content-api/internal/database"
	"github.com/hoops-content-api/internal/models"
)

// teamRepo is the concrete implementation of TeamRepository
type teamRepo struct {
	db *database.DB
}

// NewTeamRepo creates a new team repository
func NewTeamRepo(db *database.DB) TeamRepository {
	return &teamRepo{db: db}
}

const teamColumns = `id, name, city, abbreviation, conference, division, primary_color, secondary_color`

// Create inserts a new team
func (r *teamRepo) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, city, abbreviation, conference, division, primary_color, secondary_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		team.ID, team.Name, team.City, team.Abbreviation,
		team.Conference, team.Division, team.PrimaryColor, team.SecondaryColor,
	)
	return err
}

// GetByID retrieves a team by ID
func (r *teamRepo) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	err := r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id).Scan(
		&team.ID, &team.Name, &team.City, &team.Abbreviation,
		&team.Conference, &team.Division, &team.PrimaryColor, &team.SecondaryColor,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams ordered by city then name
func (r *teamRepo) List(ctx context.Context) ([]*models.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY city, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID, &team.Name, &team.City, &team.Abbreviation,
			&team.Conference, &team.Division, &team.PrimaryColor, &team.SecondaryColor,
		); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}
	return teams, rows.Err()
}

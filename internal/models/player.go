package models

// ValidPositions defines allowed player positions
var ValidPositions = map[string]bool{
	"PG": true,
	"SG": true,
	"SF": true,
	"PF": true,
	"C":  true,
}

// Player represents an NBA player on a team roster
type Player struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	TeamID       string `json:"team_id" db:"team_id"`
	Position     string `json:"position" db:"position"`
	JerseyNumber *int   `json:"jersey_number,omitempty" db:"jersey_number"`
	Height       string `json:"height,omitempty" db:"height"`
	Weight       *int   `json:"weight,omitempty" db:"weight"`
	YearsPro     int    `json:"years_pro" db:"years_pro"`
}

// PlayerStats is a bundle of per-game averages for one player and season.
// (player_id, season) is unique.
type PlayerStats struct {
	ID              string  `json:"id" db:"id"`
	PlayerID        string  `json:"player_id" db:"player_id"`
	Season          string  `json:"season" db:"season"` // e.g. "2024-25"
	GamesPlayed     int     `json:"games_played" db:"games_played"`
	MinutesPerGame  float64 `json:"minutes_per_game" db:"minutes_per_game"`
	PointsPerGame   float64 `json:"points_per_game" db:"points_per_game"`
	ReboundsPerGame float64 `json:"rebounds_per_game" db:"rebounds_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game" db:"assists_per_game"`
	StealsPerGame   float64 `json:"steals_per_game" db:"steals_per_game"`
	BlocksPerGame   float64 `json:"blocks_per_game" db:"blocks_per_game"`
	TurnoversPG     float64 `json:"turnovers_per_game" db:"turnovers_per_game"`
	FieldGoalPct    float64 `json:"field_goal_pct" db:"field_goal_pct"`
	ThreePointPct   float64 `json:"three_point_pct" db:"three_point_pct"`
	FreeThrowPct    float64 `json:"free_throw_pct" db:"free_throw_pct"`
}

// StatSummary holds arithmetic means over a set of PlayerStats.
// A nil *StatSummary means the input set was empty; averages are never
// reported as zeros in that case.
type StatSummary struct {
	Season      string  `json:"season,omitempty"`
	PlayerCount int     `json:"player_count"`
	AvgPoints   float64 `json:"avg_points"`
	AvgRebounds float64 `json:"avg_rebounds"`
	AvgAssists  float64 `json:"avg_assists"`
}

package store

import (
	"database/sql"
	"time"

	"github.com/fortuna/courtside/internal/leaderboard"
)

// Team is one franchise-season row written by the simulation engine
type Team struct {
	TeamID       string         `json:"team_id" db:"team_id"`
	SeasonYear   string         `json:"season_year" db:"season_year"`
	Abbreviation sql.NullString `json:"abbreviation,omitempty" db:"abbreviation"`
	FullName     string         `json:"full_name" db:"full_name"`
	Wins         int            `json:"wins" db:"wins"`
	Losses       int            `json:"losses" db:"losses"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// Player is a rostered player with cumulative season stats and ratings
type Player struct {
	PlayerID   string                         `json:"player_id" db:"player_id"`
	SeasonYear string                         `json:"season_year" db:"season_year"`
	TeamID     sql.NullString                 `json:"team_id,omitempty" db:"team_id"`
	FullName   string                         `json:"full_name" db:"full_name"`
	Position   sql.NullString                 `json:"position,omitempty" db:"position"`
	Stats      JSONB[leaderboard.PlayerStats] `json:"stats" db:"stats"`
	Ratings    JSONB[leaderboard.Ratings]     `json:"ratings" db:"ratings"`
	UpdatedAt  time.Time                      `json:"updated_at" db:"updated_at"`
}

// Game is a schedule entry. Box score columns are NULL for games the
// simulation engine did not keep detail for.
type Game struct {
	GameID     string                        `json:"game_id" db:"game_id"`
	SeasonYear string                        `json:"season_year" db:"season_year"`
	GameDate   time.Time                     `json:"game_date" db:"game_date"`
	HomeTeamID string                        `json:"home_team_id" db:"home_team_id"`
	AwayTeamID string                        `json:"away_team_id" db:"away_team_id"`
	HomeScore  sql.NullInt32                 `json:"home_score,omitempty" db:"home_score"`
	AwayScore  sql.NullInt32                 `json:"away_score,omitempty" db:"away_score"`
	Played     bool                          `json:"played" db:"played"`
	HomeStats  JSONB[leaderboard.TeamTotals] `json:"home_stats" db:"home_stats"`
	AwayStats  JSONB[leaderboard.TeamTotals] `json:"away_stats" db:"away_stats"`
	UpdatedAt  time.Time                     `json:"updated_at" db:"updated_at"`
}

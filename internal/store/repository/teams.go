package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `team_id, season_year, abbreviation, full_name, wins, losses, updated_at`

func scanTeam(row interface{ Scan(...interface{}) error }, team *store.Team) error {
	return row.Scan(
		&team.TeamID, &team.SeasonYear, &team.Abbreviation, &team.FullName,
		&team.Wins, &team.Losses, &team.UpdatedAt,
	)
}

// GetAll returns every team in a season ordered by team ID
func (r *TeamRepository) GetAll(ctx context.Context, season string) ([]*store.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE season_year = $1 ORDER BY team_id`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		if err := scanTeam(rows, team); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByID finds a team in a season
func (r *TeamRepository) GetByID(ctx context.Context, teamID, season string) (*store.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE team_id = $1 AND season_year = $2`

	team := &store.Team{}
	err := scanTeam(r.db.DB().QueryRowContext(ctx, query, teamID, season), team)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %s: %w", teamID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// Upsert inserts or updates a team record through ex, which is the pool
// or an open transaction
func (r *TeamRepository) Upsert(ctx context.Context, ex store.Execer, team *store.Team) error {
	query := `
		INSERT INTO teams (team_id, season_year, abbreviation, full_name, wins, losses, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (team_id, season_year) DO UPDATE SET
			abbreviation = EXCLUDED.abbreviation,
			full_name = EXCLUDED.full_name,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			updated_at = NOW()
	`

	_, err := ex.ExecContext(ctx, query,
		team.TeamID, team.SeasonYear, team.Abbreviation, team.FullName, team.Wins, team.Losses,
	)
	if err != nil {
		return fmt.Errorf("upserting team: %w", err)
	}

	return nil
}

// DeleteSeason removes every team row of a season
func (r *TeamRepository) DeleteSeason(ctx context.Context, ex store.Execer, season string) error {
	if _, err := ex.ExecContext(ctx, "DELETE FROM teams WHERE season_year = $1", season); err != nil {
		return fmt.Errorf("deleting teams: %w", err)
	}
	return nil
}

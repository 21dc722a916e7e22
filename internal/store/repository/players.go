package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetAll returns every player in a season grouped by team ID. Free agents
// (NULL team_id) are grouped under the empty string.
func (r *PlayerRepository) GetAll(ctx context.Context, season string) (map[string][]*store.Player, error) {
	query := `
		SELECT player_id, season_year, team_id, full_name, position, stats, ratings, updated_at
		FROM players
		WHERE season_year = $1
		ORDER BY team_id, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	byTeam := make(map[string][]*store.Player)
	for rows.Next() {
		p := &store.Player{}
		err := rows.Scan(
			&p.PlayerID, &p.SeasonYear, &p.TeamID, &p.FullName, &p.Position,
			&p.Stats, &p.Ratings, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		byTeam[p.TeamID.String] = append(byTeam[p.TeamID.String], p)
	}

	return byTeam, rows.Err()
}

// Upsert inserts or updates a player record through ex, which is the pool
// or an open transaction
func (r *PlayerRepository) Upsert(ctx context.Context, ex store.Execer, p *store.Player) error {
	query := `
		INSERT INTO players (player_id, season_year, team_id, full_name, position, stats, ratings, updated_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, '{}'::jsonb), COALESCE($7, '{}'::jsonb), NOW())
		ON CONFLICT (player_id, season_year) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			full_name = EXCLUDED.full_name,
			position = EXCLUDED.position,
			stats = EXCLUDED.stats,
			ratings = EXCLUDED.ratings,
			updated_at = NOW()
	`

	_, err := ex.ExecContext(ctx, query,
		p.PlayerID, p.SeasonYear, p.TeamID, p.FullName, p.Position, p.Stats, p.Ratings,
	)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}

	return nil
}

// DeleteSeason removes every player row of a season
func (r *PlayerRepository) DeleteSeason(ctx context.Context, ex store.Execer, season string) error {
	if _, err := ex.ExecContext(ctx, "DELETE FROM players WHERE season_year = $1", season); err != nil {
		return fmt.Errorf("deleting players: %w", err)
	}
	return nil
}

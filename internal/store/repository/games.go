package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// GameRepository handles schedule data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetSchedule returns every game in a season in date order
func (r *GameRepository) GetSchedule(ctx context.Context, season string) ([]*store.Game, error) {
	query := `
		SELECT game_id, season_year, game_date, home_team_id, away_team_id,
			home_score, away_score, played, home_stats, away_stats, updated_at
		FROM games
		WHERE season_year = $1
		ORDER BY game_date, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []*store.Game
	for rows.Next() {
		g := &store.Game{}
		err := rows.Scan(
			&g.GameID, &g.SeasonYear, &g.GameDate, &g.HomeTeamID, &g.AwayTeamID,
			&g.HomeScore, &g.AwayScore, &g.Played, &g.HomeStats, &g.AwayStats, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// Upsert inserts or updates a game record through ex, which is the pool
// or an open transaction
func (r *GameRepository) Upsert(ctx context.Context, ex store.Execer, g *store.Game) error {
	query := `
		INSERT INTO games (game_id, season_year, game_date, home_team_id, away_team_id,
			home_score, away_score, played, home_stats, away_stats, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (game_id, season_year) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			played = EXCLUDED.played,
			home_stats = EXCLUDED.home_stats,
			away_stats = EXCLUDED.away_stats,
			updated_at = NOW()
	`

	_, err := ex.ExecContext(ctx, query,
		g.GameID, g.SeasonYear, g.GameDate, g.HomeTeamID, g.AwayTeamID,
		g.HomeScore, g.AwayScore, g.Played, g.HomeStats, g.AwayStats,
	)
	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// DeleteSeason removes every game row of a season
func (r *GameRepository) DeleteSeason(ctx context.Context, ex store.Execer, season string) error {
	if _, err := ex.ExecContext(ctx, "DELETE FROM games WHERE season_year = $1", season); err != nil {
		return fmt.Errorf("deleting games: %w", err)
	}
	return nil
}

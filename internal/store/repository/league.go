package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/leaderboard"
	"github.com/fortuna/courtside/internal/store"
)

// LeagueLoader assembles a leaderboard.League snapshot for one season
type LeagueLoader struct {
	db      *store.Database
	teams   *TeamRepository
	players *PlayerRepository
	games   *GameRepository
}

// NewLeagueLoader creates a loader over the three season tables
func NewLeagueLoader(db *store.Database) *LeagueLoader {
	return &LeagueLoader{
		db:      db,
		teams:   NewTeamRepository(db),
		players: NewPlayerRepository(db),
		games:   NewGameRepository(db),
	}
}

// Load reads teams, rosters and schedule for a season
func (l *LeagueLoader) Load(ctx context.Context, season string) (leaderboard.League, error) {
	teams, err := l.teams.GetAll(ctx, season)
	if err != nil {
		return leaderboard.League{}, fmt.Errorf("loading teams: %w", err)
	}
	if len(teams) == 0 {
		return leaderboard.League{}, fmt.Errorf("season %s: %w", season, store.ErrNotFound)
	}

	players, err := l.players.GetAll(ctx, season)
	if err != nil {
		return leaderboard.League{}, fmt.Errorf("loading players: %w", err)
	}

	games, err := l.games.GetSchedule(ctx, season)
	if err != nil {
		return leaderboard.League{}, fmt.Errorf("loading schedule: %w", err)
	}

	return BuildLeague(teams, players, games), nil
}

// Save replaces the season's rows with the snapshot in one transaction, so
// readers see either the previous snapshot or the new one in full
func (l *LeagueLoader) Save(ctx context.Context, season string, league leaderboard.League) error {
	teams, players, games := FlattenLeague(season, league)

	return l.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := l.games.DeleteSeason(ctx, tx, season); err != nil {
			return err
		}
		if err := l.players.DeleteSeason(ctx, tx, season); err != nil {
			return err
		}
		if err := l.teams.DeleteSeason(ctx, tx, season); err != nil {
			return err
		}

		for _, t := range teams {
			if err := l.teams.Upsert(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, p := range players {
			if err := l.players.Upsert(ctx, tx, p); err != nil {
				return err
			}
		}
		for _, g := range games {
			if err := l.games.Upsert(ctx, tx, g); err != nil {
				return err
			}
		}
		return nil
	})
}

// BuildLeague maps season rows onto the engine's snapshot shape. Players
// without a team are dropped; team order follows the input.
func BuildLeague(teams []*store.Team, players map[string][]*store.Player, games []*store.Game) leaderboard.League {
	league := leaderboard.League{
		Teams:    make([]leaderboard.Team, 0, len(teams)),
		Schedule: make([]leaderboard.ScheduledGame, 0, len(games)),
	}

	for _, t := range teams {
		team := leaderboard.Team{
			ID:           t.TeamID,
			Name:         t.FullName,
			Abbreviation: t.Abbreviation.String,
			Wins:         t.Wins,
			Losses:       t.Losses,
		}
		for _, p := range players[t.TeamID] {
			team.Roster = append(team.Roster, leaderboard.RosterPlayer{
				ID:       p.PlayerID,
				Name:     p.FullName,
				Position: p.Position.String,
				Stats:    p.Stats.V,
				Ratings:  p.Ratings.V,
			})
		}
		league.Teams = append(league.Teams, team)
	}

	for _, g := range games {
		league.Schedule = append(league.Schedule, leaderboard.ScheduledGame{
			ID:         g.GameID,
			HomeTeamID: g.HomeTeamID,
			AwayTeamID: g.AwayTeamID,
			Date:       g.GameDate,
			HomeScore:  int(g.HomeScore.Int32),
			AwayScore:  int(g.AwayScore.Int32),
			Played:     g.Played,
			HomeStats:  g.HomeStats.Ptr(),
			AwayStats:  g.AwayStats.Ptr(),
		})
	}

	return league
}

// FlattenLeague is the inverse of BuildLeague
func FlattenLeague(season string, league leaderboard.League) ([]*store.Team, []*store.Player, []*store.Game) {
	var (
		teams   []*store.Team
		players []*store.Player
		games   []*store.Game
	)

	for _, t := range league.Teams {
		teams = append(teams, &store.Team{
			TeamID:       t.ID,
			SeasonYear:   season,
			Abbreviation: nullString(t.Abbreviation),
			FullName:     t.Name,
			Wins:         t.Wins,
			Losses:       t.Losses,
		})
		for _, p := range t.Roster {
			players = append(players, &store.Player{
				PlayerID:   p.ID,
				SeasonYear: season,
				TeamID:     nullString(t.ID),
				FullName:   p.Name,
				Position:   nullString(p.Position),
				Stats:      store.JSONB[leaderboard.PlayerStats]{V: p.Stats, Valid: true},
				Ratings:    store.JSONB[leaderboard.Ratings]{V: p.Ratings, Valid: true},
			})
		}
	}

	for _, g := range league.Schedule {
		row := &store.Game{
			GameID:     g.ID,
			SeasonYear: season,
			GameDate:   g.Date,
			HomeTeamID: g.HomeTeamID,
			AwayTeamID: g.AwayTeamID,
			Played:     g.Played,
		}
		if g.Played {
			row.HomeScore = sql.NullInt32{Int32: int32(g.HomeScore), Valid: true}
			row.AwayScore = sql.NullInt32{Int32: int32(g.AwayScore), Valid: true}
		}
		if g.HomeStats != nil {
			row.HomeStats = store.JSONB[leaderboard.TeamTotals]{V: *g.HomeStats, Valid: true}
		}
		if g.AwayStats != nil {
			row.AwayStats = store.JSONB[leaderboard.TeamTotals]{V: *g.AwayStats, Valid: true}
		}
		games = append(games, row)
	}

	return teams, players, games
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package leaderboard_test

import (
	"math"
	"testing"
	"time"

	"github.com/fortuna/courtside/internal/leaderboard"
)

const eps = 1e-9

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func player(id, name, pos string, s leaderboard.PlayerStats) leaderboard.RosterPlayer {
	return leaderboard.RosterPlayer{ID: id, Name: name, Position: pos, Stats: s}
}

func game(id, home, away string, played bool) leaderboard.ScheduledGame {
	return leaderboard.ScheduledGame{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Played:     played,
	}
}

// scenarioLeague: team A plays B once with no embedded box scores. B has
// three played games in total. A shoots 40/80, 10/25 from three, 10/15 FT.
func scenarioLeague() leaderboard.League {
	a := leaderboard.Team{
		ID:   "A",
		Name: "Austin Armadillos",
		Roster: []leaderboard.RosterPlayer{
			player("a1", "Alan Archer", "PG", leaderboard.PlayerStats{
				G: 1, GS: 1, MP: 36, Pts: 60, Reb: 4, OffReb: 1, DefReb: 3, Ast: 8, Stl: 2, Blk: 0, Tov: 3,
				FGM: 24, FGA: 45, P3M: 8, P3A: 18, FTM: 4, FTA: 6,
			}),
			player("a2", "Bo Baxter", "C", leaderboard.PlayerStats{
				G: 1, GS: 1, MP: 30, Pts: 40, Reb: 12, OffReb: 4, DefReb: 8, Ast: 2, Stl: 1, Blk: 3, Tov: 2,
				FGM: 16, FGA: 35, P3M: 2, P3A: 7, FTM: 6, FTA: 9,
			}),
			player("a3", "Cy Cole", "SF", leaderboard.PlayerStats{}),
		},
		Wins:   1,
		Losses: 0,
	}
	b := leaderboard.Team{
		ID:   "B",
		Name: "Boise Bison",
		Roster: []leaderboard.RosterPlayer{
			player("b1", "Dan Dorsey", "SG", leaderboard.PlayerStats{
				G: 3, GS: 3, MP: 100, Pts: 90, Reb: 30, OffReb: 9, DefReb: 21, Ast: 15, Stl: 6, Blk: 3, Tov: 12,
				FGM: 36, FGA: 90, P3M: 9, P3A: 30, FTM: 9, FTA: 12,
			}),
		},
		Wins:   1,
		Losses: 2,
	}
	c := leaderboard.Team{
		ID:   "C",
		Name: "Camden Condors",
		Roster: []leaderboard.RosterPlayer{
			player("c1", "Eli Evans", "PF", leaderboard.PlayerStats{
				G: 2, GS: 2, MP: 70, Pts: 50, Reb: 20, OffReb: 5, DefReb: 15, Ast: 6, Stl: 2, Blk: 2, Tov: 6,
				FGM: 20, FGA: 50, P3M: 4, P3A: 12, FTM: 6, FTA: 8,
			}),
		},
		Wins:   1,
		Losses: 1,
	}

	g2 := game("g2", "B", "C", true)
	g2.HomeStats = &leaderboard.BoxScore{Pts: 30, FGM: 12, FGA: 30, P3M: 3, P3A: 10, FTM: 3, FTA: 4, Reb: 10, OffReb: 3, DefReb: 7, Tov: 4}
	g2.AwayStats = &leaderboard.BoxScore{Pts: 25, FGM: 10, FGA: 25, P3M: 2, P3A: 6, FTM: 3, FTA: 4, Reb: 10, OffReb: 2, DefReb: 8, Tov: 3}
	g3 := game("g3", "C", "B", true)
	g3.HomeStats = &leaderboard.BoxScore{Pts: 25, FGM: 10, FGA: 25, P3M: 2, P3A: 6, FTM: 3, FTA: 4, Reb: 10, OffReb: 3, DefReb: 7, Tov: 3}
	g3.AwayStats = &leaderboard.BoxScore{Pts: 30, FGM: 12, FGA: 30, P3M: 3, P3A: 10, FTM: 3, FTA: 4, Reb: 10, OffReb: 3, DefReb: 7, Tov: 4}

	return leaderboard.League{
		Teams: []leaderboard.Team{a, b, c},
		Schedule: []leaderboard.ScheduledGame{
			game("g1", "A", "B", true),
			g2,
			g3,
			game("g4", "A", "C", false),
		},
	}
}

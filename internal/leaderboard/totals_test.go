package leaderboard_test

import (
	"testing"

	"github.com/fortuna/courtside/internal/leaderboard"
)

func TestAggregateTeamTotals(t *testing.T) {
	league := scenarioLeague()
	totals := leaderboard.AggregateTeamTotals(league.Teams[0].Roster)

	approx(t, "pts", totals.Pts, 100)
	approx(t, "fgm", totals.FGM, 40)
	approx(t, "fga", totals.FGA, 80)
	approx(t, "p3m", totals.P3M, 10)
	approx(t, "p3a", totals.P3A, 25)
	approx(t, "ftm", totals.FTM, 10)
	approx(t, "fta", totals.FTA, 15)
	approx(t, "reb", totals.Reb, 16)
	approx(t, "offReb", totals.OffReb, 5)
	approx(t, "defReb", totals.DefReb, 11)
	approx(t, "tov", totals.Tov, 5)
}

func TestAggregateTeamTotals_Zones(t *testing.T) {
	var s1, s2 leaderboard.PlayerStats
	s1.Zones[leaderboard.ZoneRim] = leaderboard.ZoneLine{Made: 5, Attempts: 8}
	s2.Zones[leaderboard.ZoneRim] = leaderboard.ZoneLine{Made: 3, Attempts: 4}
	s2.Zones[leaderboard.ZoneAboveBreakCenter] = leaderboard.ZoneLine{Made: 2, Attempts: 7}

	totals := leaderboard.AggregateTeamTotals([]leaderboard.RosterPlayer{
		{ID: "1", Stats: s1},
		{ID: "2", Stats: s2},
	})

	rim := totals.Zones.Get(leaderboard.ZoneRim)
	if rim.Made != 8 || rim.Attempts != 12 {
		t.Errorf("rim = %+v, want 8/12", rim)
	}
	atb := totals.Zones.Get(leaderboard.ZoneAboveBreakCenter)
	if atb.Made != 2 || atb.Attempts != 7 {
		t.Errorf("atb3_c = %+v, want 2/7", atb)
	}
}

func TestAggregateTeamTotals_DoesNotMutateRoster(t *testing.T) {
	league := scenarioLeague()
	before := league.Teams[0].Roster[0].Stats

	leaderboard.AggregateTeamTotals(league.Teams[0].Roster)

	if league.Teams[0].Roster[0].Stats != before {
		t.Error("roster stats were modified")
	}
}

func TestGamesPlayed(t *testing.T) {
	schedule := scenarioLeague().Schedule

	tests := []struct {
		team string
		want int
	}{
		{"A", 1}, // g4 is unplayed
		{"B", 3},
		{"C", 2},
		{"nobody", 1}, // floored
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			if got := leaderboard.GamesPlayed(tt.team, schedule); got != tt.want {
				t.Errorf("GamesPlayed(%s) = %d, want %d", tt.team, got, tt.want)
			}
		})
	}
}

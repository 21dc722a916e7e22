package leaderboard_test

import (
	"testing"

	"github.com/fortuna/courtside/internal/leaderboard"
)

func seasonMaps(league leaderboard.League) (map[string]leaderboard.TeamTotals, map[string]int) {
	totals := make(map[string]leaderboard.TeamTotals)
	games := make(map[string]int)
	for _, team := range league.Teams {
		totals[team.ID] = leaderboard.AggregateTeamTotals(team.Roster)
		games[team.ID] = leaderboard.GamesPlayed(team.ID, league.Schedule)
	}
	return totals, games
}

func TestReconstructOpponentTotals_ScalesMissingGames(t *testing.T) {
	league := scenarioLeague()
	totals, games := seasonMaps(league)

	opp := leaderboard.ReconstructOpponentTotals("A", league.Schedule, totals, games)

	// B played 3 games; one of them against A without a box score.
	want := totals["B"].Scale(1.0 / 3.0)

	approx(t, "fga", opp.Totals.FGA, want.FGA)
	approx(t, "fta", opp.Totals.FTA, want.FTA)
	approx(t, "pts", opp.Totals.Pts, want.Pts)
	approx(t, "defReb", opp.Totals.DefReb, want.DefReb)
	approx(t, "tov", opp.Totals.Tov, want.Tov)

	if opp.Observed != 0 {
		t.Errorf("Observed = %d, want 0", opp.Observed)
	}
	if opp.Estimated["B"] != 1 {
		t.Errorf("Estimated[B] = %d, want 1", opp.Estimated["B"])
	}
	if !opp.HasEstimates() {
		t.Error("expected estimates")
	}
}

func TestReconstructOpponentTotals_UsesEmbeddedBoxScores(t *testing.T) {
	league := scenarioLeague()
	totals, games := seasonMaps(league)

	opp := leaderboard.ReconstructOpponentTotals("C", league.Schedule, totals, games)

	// Both of C's games carry B's box score: 30 + 30 points, 30 + 30 FGA.
	approx(t, "pts", opp.Totals.Pts, 60)
	approx(t, "fga", opp.Totals.FGA, 60)
	approx(t, "offReb", opp.Totals.OffReb, 6)
	if opp.Observed != 2 {
		t.Errorf("Observed = %d, want 2", opp.Observed)
	}
	if opp.HasEstimates() {
		t.Errorf("unexpected estimates: %v", opp.Estimated)
	}
}

func TestReconstructOpponentTotals_Mixed(t *testing.T) {
	league := scenarioLeague()
	totals, games := seasonMaps(league)

	opp := leaderboard.ReconstructOpponentTotals("B", league.Schedule, totals, games)

	// Two observed C box scores (25 + 25) plus all of A's single game.
	approx(t, "pts", opp.Totals.Pts, 25+25+100)
	approx(t, "fga", opp.Totals.FGA, 25+25+80)
	if opp.Observed != 2 || opp.Estimated["A"] != 1 {
		t.Errorf("Observed = %d, Estimated = %v", opp.Observed, opp.Estimated)
	}
}

func TestReconstructOpponentTotals_OpponentWithoutGames(t *testing.T) {
	schedule := []leaderboard.ScheduledGame{game("g1", "X", "Y", true)}
	totals := map[string]leaderboard.TeamTotals{"Y": {FGA: 50, Pts: 40}}

	// Y is missing from gamesPlayed, so its denominator is 1.
	opp := leaderboard.ReconstructOpponentTotals("X", schedule, totals, map[string]int{})

	approx(t, "fga", opp.Totals.FGA, 50)
	approx(t, "pts", opp.Totals.Pts, 40)
}

func TestReconstructOpponentTotals_SkipsUnplayed(t *testing.T) {
	schedule := []leaderboard.ScheduledGame{game("g1", "X", "Y", false)}
	totals := map[string]leaderboard.TeamTotals{"Y": {FGA: 50}}

	opp := leaderboard.ReconstructOpponentTotals("X", schedule, totals, map[string]int{"Y": 1})

	if opp.Totals.FGA != 0 || opp.HasEstimates() {
		t.Errorf("unplayed game contributed: %+v", opp)
	}
}

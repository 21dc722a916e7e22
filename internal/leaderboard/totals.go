package leaderboard

// AggregateTeamTotals sums the roster's counting stats into season totals.
// The roster is read only.
func AggregateTeamTotals(roster []RosterPlayer) TeamTotals {
	var t TeamTotals
	for i := range roster {
		t = t.Add(roster[i].Stats.Totals())
	}
	return t
}

// GamesPlayed counts played schedule entries involving the team, floored at 1
func GamesPlayed(teamID string, schedule []ScheduledGame) int {
	n := 0
	for i := range schedule {
		if schedule[i].Played && schedule[i].Involves(teamID) {
			n++
		}
	}
	return floorGames(n)
}

// seasonTotals holds the aggregated totals and games played of every team,
// computed once per Compute call
type seasonTotals struct {
	totals map[string]TeamTotals
	games  map[string]int
}

func aggregateLeague(league League) seasonTotals {
	st := seasonTotals{
		totals: make(map[string]TeamTotals, len(league.Teams)),
		games:  make(map[string]int, len(league.Teams)),
	}
	for i := range league.Teams {
		team := &league.Teams[i]
		st.totals[team.ID] = AggregateTeamTotals(team.Roster)
		st.games[team.ID] = GamesPlayed(team.ID, league.Schedule)
	}
	return st
}

func floorGames(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// safeDiv divides, returning 0 for a non-positive denominator
func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// Package leaderboard derives team and player statistics from season
// box-score totals and a schedule, then filters, sorts and range-profiles
// them. Everything here is a pure function of its inputs: nothing is cached
// and the league snapshot is never modified.
package leaderboard

// teamDerivation is the per-team output of the aggregation stages that
// player metrics depend on
type teamDerivation struct {
	team    *Team
	games   int
	totals  TeamTotals
	opp     OpponentTotals
	metrics TeamMetrics
}

// deriveTeams runs totals aggregation, opponent reconstruction and team
// metrics for every team, in league order
func deriveTeams(league League) []teamDerivation {
	season := aggregateLeague(league)

	out := make([]teamDerivation, len(league.Teams))
	for i := range league.Teams {
		team := &league.Teams[i]
		totals := season.totals[team.ID]
		games := season.games[team.ID]
		opp := ReconstructOpponentTotals(team.ID, league.Schedule, season.totals, season.games)

		out[i] = teamDerivation{
			team:    team,
			games:   games,
			totals:  totals,
			opp:     opp,
			metrics: ComputeTeamMetrics(totals, opp.Totals, games),
		}
	}
	return out
}

// TeamRows builds the unfiltered Teams-mode rows
func TeamRows(league League) []TeamRow {
	derived := deriveTeams(league)
	rows := make([]TeamRow, 0, len(derived))
	for _, d := range derived {
		rows = append(rows, newTeamRow(d))
	}
	return rows
}

func newTeamRow(d teamDerivation) TeamRow {
	stats := d.metrics.Values()
	stats[KeyWins] = float64(d.team.Wins)
	stats[KeyLosses] = float64(d.team.Losses)
	stats[KeyWinPct] = safeDiv(float64(d.team.Wins), float64(d.team.Wins+d.team.Losses))

	return TeamRow{
		ID:           d.team.ID,
		Name:         d.team.Name,
		Abbreviation: d.team.Abbreviation,
		Wins:         d.team.Wins,
		Losses:       d.team.Losses,
		GamesPlayed:  d.games,
		Stats:        stats,
		Metrics:      d.metrics,
		RawTotals:    d.totals,
		RawOppTotals: d.opp.Totals,
	}
}

// PlayerRows builds the unfiltered Players-mode rows. Players who have not
// appeared in a game (g = 0) are left out.
func PlayerRows(league League) []PlayerRow {
	derived := deriveTeams(league)

	var rows []PlayerRow
	for _, d := range derived {
		ctx := NewTeamContext(d.team.Roster, d.totals, d.opp.Totals, d.games)
		for i := range d.team.Roster {
			p := &d.team.Roster[i]
			if p.Stats.G <= 0 {
				continue
			}
			metrics := ComputePlayerMetrics(p.Stats, ctx)
			rows = append(rows, PlayerRow{
				ID:       p.ID,
				Name:     p.Name,
				Position: p.Position,
				TeamID:   d.team.ID,
				TeamName: d.team.Name,
				Ratings:  p.Ratings,
				Totals:   p.Stats,
				Stats:    metrics.Values(),
				Metrics:  metrics,
			})
		}
	}
	return rows
}

// Compute runs the whole pipeline for one query: aggregation, opponent
// reconstruction, team metrics, player metrics (players mode only),
// filtering, sorting and range profiling over the filtered rows.
func Compute(league League, q Query) Result {
	profiler := NewRangeProfiler()

	if q.Mode == ModeTeams {
		rows := FilterTeams(TeamRows(league), q)
		SortTeams(rows, q.Sort)
		for i := range rows {
			profiler.UpdateAll(rows[i].Stats)
		}
		return Result{Mode: ModeTeams, Teams: rows, Ranges: profiler.Ranges()}
	}

	rows := FilterPlayers(PlayerRows(league), q)
	SortPlayers(rows, q.Sort)
	for i := range rows {
		profiler.UpdateAll(rows[i].Stats)
	}
	return Result{Mode: ModePlayers, Players: rows, Ranges: profiler.Ranges()}
}

package leaderboard

// TeamMetrics are the derived per-game, shooting and advanced team stats
type TeamMetrics struct {
	G int `json:"g"`

	CountingLine
	ShootingSplits
	ZoneProfile

	ORBPct float64 `json:"orbPct"`
	DRBPct float64 `json:"drbPct"`
	TRBPct float64 `json:"trbPct"`
	TOVPct float64 `json:"tovPct"`

	Pace   float64 `json:"pace"`
	Poss   float64 `json:"poss"`
	ORtg   float64 `json:"ortg"`
	DRtg   float64 `json:"drtg"`
	NetRtg float64 `json:"netRtg"`
	OppPts float64 `json:"oppPts"`
}

// ComputeTeamMetrics derives team metrics from season totals and the
// reconstructed opponent totals. Counting stats are divided by gamesPlayed
// (floored at 1); any ratio with a non-positive denominator is 0.
func ComputeTeamMetrics(totals, opp TeamTotals, gamesPlayed int) TeamMetrics {
	g := float64(floorGames(gamesPlayed))

	teamPoss := Possessions(totals)
	oppPoss := Possessions(opp)

	pace := safeDiv(teamPoss, g)
	if oppPoss > 0 {
		pace = safeDiv(teamPoss+oppPoss, 2*g)
	}

	m := TeamMetrics{
		G:              floorGames(gamesPlayed),
		CountingLine:   perGame(totals, g),
		ShootingSplits: shooting(totals),
		ZoneProfile:    zoneProfile(totals.Zones, g),

		ORBPct: safeDiv(totals.OffReb, totals.OffReb+opp.DefReb),
		DRBPct: safeDiv(totals.DefReb, totals.DefReb+opp.OffReb),
		TRBPct: safeDiv(totals.Reb, totals.Reb+opp.Reb),
		TOVPct: safeDiv(totals.Tov, teamPoss),

		Pace:   pace,
		Poss:   safeDiv(teamPoss, g),
		ORtg:   100 * safeDiv(totals.Pts, teamPoss),
		DRtg:   100 * safeDiv(opp.Pts, oppPoss),
		OppPts: safeDiv(opp.Pts, g),
	}
	if m.ORtg > 0 && m.DRtg > 0 {
		m.NetRtg = m.ORtg - m.DRtg
	}
	return m
}

// Values flattens the metrics into the metric-key map
func (m TeamMetrics) Values() map[string]float64 {
	v := make(map[string]float64, 80)
	v[KeyG] = float64(m.G)
	m.CountingLine.put(v)
	m.ShootingSplits.put(v)
	m.ZoneProfile.put(v)
	v[KeyORBPct] = m.ORBPct
	v[KeyDRBPct] = m.DRBPct
	v[KeyTRBPct] = m.TRBPct
	v[KeyTOVPct] = m.TOVPct
	v[KeyPace] = m.Pace
	v[KeyPoss] = m.Poss
	v[KeyORtg] = m.ORtg
	v[KeyDRtg] = m.DRtg
	v[KeyNetRtg] = m.NetRtg
	v[KeyOppPts] = m.OppPts
	return v
}

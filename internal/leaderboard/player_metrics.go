package leaderboard

// TeamContext is the team-wide context player rate stats are measured
// against. It must be built from the team's final totals and opponent
// reconstruction.
type TeamContext struct {
	// Minutes is the roster's total minutes, or games*240 when no minutes
	// were recorded
	Minutes float64
	FGM     float64
	// Usage is fga + 0.44*fta + tov; unlike possessions it keeps offensive
	// rebounds in
	Usage  float64
	OffReb float64
	DefReb float64
	Reb    float64

	OppOffReb float64
	OppDefReb float64
	OppReb    float64
	OppPoss   float64
	// OppTwoPA is opponent fga - 3pa
	OppTwoPA float64
}

// NewTeamContext builds the context for one team's players
func NewTeamContext(roster []RosterPlayer, totals, opp TeamTotals, gamesPlayed int) TeamContext {
	var minutes float64
	for i := range roster {
		minutes += roster[i].Stats.MP
	}
	if minutes == 0 {
		minutes = float64(floorGames(gamesPlayed) * minutesPerTeamGame)
	}

	return TeamContext{
		Minutes:   minutes,
		FGM:       totals.FGM,
		Usage:     totals.FGA + ftaWeight*totals.FTA + totals.Tov,
		OffReb:    totals.OffReb,
		DefReb:    totals.DefReb,
		Reb:       totals.Reb,
		OppOffReb: opp.OffReb,
		OppDefReb: opp.DefReb,
		OppReb:    opp.Reb,
		OppPoss:   Possessions(opp),
		OppTwoPA:  opp.FGA - opp.P3A,
	}
}

// PlayerMetrics are a player's derived per-game and rate stats
type PlayerMetrics struct {
	G   float64 `json:"g"`
	GS  float64 `json:"gs"`
	MP  float64 `json:"mp"`
	MPG float64 `json:"mpg"`

	CountingLine
	ShootingSplits
	ZoneProfile

	TOVPct float64 `json:"tovPct"`
	UsgPct float64 `json:"usgPct"`
	AstPct float64 `json:"astPct"`
	ORBPct float64 `json:"orbPct"`
	DRBPct float64 `json:"drbPct"`
	TRBPct float64 `json:"trbPct"`
	StlPct float64 `json:"stlPct"`
	BlkPct float64 `json:"blkPct"`
}

// ComputePlayerMetrics derives one player's metrics. Every division with a
// non-positive denominator yields 0.
func ComputePlayerMetrics(s PlayerStats, ctx TeamContext) PlayerMetrics {
	t := s.Totals()
	g := s.G
	if g < 1 {
		g = 1
	}

	// Fifth of team minutes: the minutes one lineup slot was on the floor.
	slot := ctx.Minutes / 5
	poss := t.FGA + ftaWeight*t.FTA + t.Tov

	m := PlayerMetrics{
		G:   s.G,
		GS:  s.GS,
		MP:  s.MP,
		MPG: safeDiv(s.MP, g),

		CountingLine:   perGame(t, g),
		ShootingSplits: shooting(t),
		ZoneProfile:    zoneProfile(t.Zones, g),

		TOVPct: safeDiv(t.Tov, poss),
		UsgPct: safeDiv(poss*slot, s.MP*ctx.Usage),
		ORBPct: safeDiv(t.OffReb*slot, s.MP*(ctx.OffReb+ctx.OppDefReb)),
		DRBPct: safeDiv(t.DefReb*slot, s.MP*(ctx.DefReb+ctx.OppOffReb)),
		TRBPct: safeDiv(t.Reb*slot, s.MP*(ctx.Reb+ctx.OppReb)),
		StlPct: safeDiv(t.Stl*slot, s.MP*ctx.OppPoss),
		BlkPct: safeDiv(t.Blk*slot, s.MP*ctx.OppTwoPA),
	}
	if slot > 0 {
		m.AstPct = safeDiv(t.Ast, (s.MP/slot)*ctx.FGM-t.FGM)
	}
	return m
}

// Values flattens the metrics into the metric-key map
func (m PlayerMetrics) Values() map[string]float64 {
	v := make(map[string]float64, 80)
	v[KeyG] = m.G
	v[KeyGS] = m.GS
	v[KeyMP] = m.MP
	v[KeyMPG] = m.MPG
	m.CountingLine.put(v)
	m.ShootingSplits.put(v)
	m.ZoneProfile.put(v)
	v[KeyTOVPct] = m.TOVPct
	v[KeyUsgPct] = m.UsgPct
	v[KeyAstPct] = m.AstPct
	v[KeyORBPct] = m.ORBPct
	v[KeyDRBPct] = m.DRBPct
	v[KeyTRBPct] = m.TRBPct
	v[KeyStlPct] = m.StlPct
	v[KeyBlkPct] = m.BlkPct
	return v
}

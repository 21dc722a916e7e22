package leaderboard

// Free throws are weighted at 0.44 of a possession/shot attempt.
const ftaWeight = 0.44

// minutesPerTeamGame is five players times 48 minutes.
const minutesPerTeamGame = 240

// CountingLine holds per-game counting averages
type CountingLine struct {
	Pts    float64 `json:"pts"`
	Reb    float64 `json:"reb"`
	OffReb float64 `json:"oreb"`
	DefReb float64 `json:"dreb"`
	Ast    float64 `json:"ast"`
	Stl    float64 `json:"stl"`
	Blk    float64 `json:"blk"`
	Tov    float64 `json:"tov"`
	PF     float64 `json:"pf"`
	FGM    float64 `json:"fgm"`
	FGA    float64 `json:"fga"`
	P3M    float64 `json:"p3m"`
	P3A    float64 `json:"p3a"`
	FTM    float64 `json:"ftm"`
	FTA    float64 `json:"fta"`
}

func perGame(t TeamTotals, games float64) CountingLine {
	return CountingLine{
		Pts:    safeDiv(t.Pts, games),
		Reb:    safeDiv(t.Reb, games),
		OffReb: safeDiv(t.OffReb, games),
		DefReb: safeDiv(t.DefReb, games),
		Ast:    safeDiv(t.Ast, games),
		Stl:    safeDiv(t.Stl, games),
		Blk:    safeDiv(t.Blk, games),
		Tov:    safeDiv(t.Tov, games),
		PF:     safeDiv(t.PF, games),
		FGM:    safeDiv(t.FGM, games),
		FGA:    safeDiv(t.FGA, games),
		P3M:    safeDiv(t.P3M, games),
		P3A:    safeDiv(t.P3A, games),
		FTM:    safeDiv(t.FTM, games),
		FTA:    safeDiv(t.FTA, games),
	}
}

func (c CountingLine) put(m map[string]float64) {
	m[KeyPts] = c.Pts
	m[KeyReb] = c.Reb
	m[KeyOffReb] = c.OffReb
	m[KeyDefReb] = c.DefReb
	m[KeyAst] = c.Ast
	m[KeyStl] = c.Stl
	m[KeyBlk] = c.Blk
	m[KeyTov] = c.Tov
	m[KeyPF] = c.PF
	m[KeyFGM] = c.FGM
	m[KeyFGA] = c.FGA
	m[KeyP3M] = c.P3M
	m[KeyP3A] = c.P3A
	m[KeyFTM] = c.FTM
	m[KeyFTA] = c.FTA
}

// ShootingSplits are the efficiency ratios shared by players and teams
type ShootingSplits struct {
	FGPct  float64 `json:"fgPct"`
	P3Pct  float64 `json:"p3Pct"`
	FTPct  float64 `json:"ftPct"`
	TSPct  float64 `json:"tsPct"`
	EFGPct float64 `json:"efgPct"`
	P3AR   float64 `json:"p3ar"`
	FTR    float64 `json:"ftr"`
}

func shooting(t TeamTotals) ShootingSplits {
	return ShootingSplits{
		FGPct:  safeDiv(t.FGM, t.FGA),
		P3Pct:  safeDiv(t.P3M, t.P3A),
		FTPct:  safeDiv(t.FTM, t.FTA),
		TSPct:  safeDiv(t.Pts, 2*shotAttempts(t)),
		EFGPct: safeDiv(t.FGM+0.5*t.P3M, t.FGA),
		P3AR:   safeDiv(t.P3A, t.FGA),
		FTR:    safeDiv(t.FTA, t.FGA),
	}
}

func (s ShootingSplits) put(m map[string]float64) {
	m[KeyFGPct] = s.FGPct
	m[KeyP3Pct] = s.P3Pct
	m[KeyFTPct] = s.FTPct
	m[KeyTSPct] = s.TSPct
	m[KeyEFGPct] = s.EFGPct
	m[KeyP3AR] = s.P3AR
	m[KeyFTR] = s.FTR
}

// ZoneProfile is the per-game zone volume plus zone percentages
type ZoneProfile struct {
	// RimPct combines the restricted area and the paint
	RimPct float64 `json:"rimPct"`
	// MidPct combines the three mid-range zones
	MidPct float64 `json:"midPct"`

	PerGame ZoneSplits        `json:"zones"`
	Pct     [numZones]float64 `json:"-"`
}

func zoneProfile(z ZoneSplits, games float64) ZoneProfile {
	p := ZoneProfile{
		RimPct: z.Combined(ZoneRim, ZonePaint).Pct(),
		MidPct: z.Combined(ZoneMidLeft, ZoneMidCenter, ZoneMidRight).Pct(),
	}
	for i, line := range z {
		p.PerGame[i] = ZoneLine{
			Made:     safeDiv(line.Made, games),
			Attempts: safeDiv(line.Attempts, games),
		}
		p.Pct[i] = line.Pct()
	}
	return p
}

// ZonePct returns the percentage of a single zone
func (p ZoneProfile) ZonePct(z ShotZone) float64 {
	return p.Pct[z]
}

func (p ZoneProfile) put(m map[string]float64) {
	m[KeyRimPct] = p.RimPct
	m[KeyMidPct] = p.MidPct
	for i, line := range p.PerGame {
		z := ShotZone(i)
		m[z.MadeKey()] = line.Made
		m[z.AttemptsKey()] = line.Attempts
		m[z.PctKey()] = p.Pct[i]
	}
}

// shotAttempts is true shooting attempts, fga + 0.44*fta
func shotAttempts(t TeamTotals) float64 {
	return t.FGA + ftaWeight*t.FTA
}

// Possessions estimates possessions as fga + 0.44*fta + tov - oreb
func Possessions(t TeamTotals) float64 {
	return t.FGA + ftaWeight*t.FTA + t.Tov - t.OffReb
}

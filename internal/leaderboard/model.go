package leaderboard

import (
	"encoding/json"
	"time"
)

// PlayerStats holds a player's cumulative season counting totals.
// The JSON form is the flat key map of the simulation engine, zone pairs
// included as "{zone}_m"/"{zone}_a".
type PlayerStats struct {
	G      float64 `json:"g"`
	GS     float64 `json:"gs"`
	MP     float64 `json:"mp"`
	Pts    float64 `json:"pts"`
	Reb    float64 `json:"reb"`
	OffReb float64 `json:"offReb"`
	DefReb float64 `json:"defReb"`
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
	RimM   float64 `json:"rimM"`
	RimA   float64 `json:"rimA"`
	MidM   float64 `json:"midM"`
	MidA   float64 `json:"midA"`

	Zones ZoneSplits `json:"-"`
}

type playerStatsJSON PlayerStats

// MarshalJSON encodes the stats as one flat object
func (s PlayerStats) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(playerStatsJSON(s))
	if err != nil {
		return nil, err
	}
	return spliceZones(base, s.Zones)
}

// UnmarshalJSON decodes the flat object; absent keys stay 0
func (s *PlayerStats) UnmarshalJSON(data []byte) error {
	var raw playerStatsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := raw.Zones.UnmarshalJSON(data); err != nil {
		return err
	}
	*s = PlayerStats(raw)
	return nil
}

// Ratings are static skill attributes. They share short names with some
// statistics (def, reb, blk) but are never resolved as statistics.
type Ratings struct {
	Ovr float64 `json:"ovr"`
	Ins float64 `json:"ins"`
	Out float64 `json:"out"`
	Def float64 `json:"def"`
	Reb float64 `json:"reb"`
	Blk float64 `json:"blk"`
	Stl float64 `json:"stl"`
	Pas float64 `json:"pas"`
	Hnd float64 `json:"hnd"`
	Ath float64 `json:"ath"`
	IQ  float64 `json:"iq"`
}

// RosterPlayer is a player as owned by a team roster
type RosterPlayer struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
	Stats    PlayerStats `json:"stats"`
	Ratings  Ratings     `json:"ratings"`
}

// Team is a franchise with its roster and record
type Team struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Abbreviation string         `json:"abbreviation,omitempty"`
	Roster       []RosterPlayer `json:"roster"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
}

// TeamTotals are season or single-game team counting totals
type TeamTotals struct {
	Pts    float64 `json:"pts"`
	Reb    float64 `json:"reb"`
	OffReb float64 `json:"offReb"`
	DefReb float64 `json:"defReb"`
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
	RimM   float64 `json:"rimM"`
	RimA   float64 `json:"rimA"`
	MidM   float64 `json:"midM"`
	MidA   float64 `json:"midA"`

	Zones ZoneSplits `json:"-"`
}

type teamTotalsJSON TeamTotals

// MarshalJSON encodes the totals as one flat object
func (t TeamTotals) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(teamTotalsJSON(t))
	if err != nil {
		return nil, err
	}
	return spliceZones(base, t.Zones)
}

// UnmarshalJSON decodes the flat object; absent keys stay 0
func (t *TeamTotals) UnmarshalJSON(data []byte) error {
	var raw teamTotalsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := raw.Zones.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = TeamTotals(raw)
	return nil
}

// Add returns the field-wise sum of t and o
func (t TeamTotals) Add(o TeamTotals) TeamTotals {
	return TeamTotals{
		Pts:    t.Pts + o.Pts,
		Reb:    t.Reb + o.Reb,
		OffReb: t.OffReb + o.OffReb,
		DefReb: t.DefReb + o.DefReb,
		Ast:    t.Ast + o.Ast,
		Stl:    t.Stl + o.Stl,
		Blk:    t.Blk + o.Blk,
		Tov:    t.Tov + o.Tov,
		PF:     t.PF + o.PF,
		FGM:    t.FGM + o.FGM,
		FGA:    t.FGA + o.FGA,
		P3M:    t.P3M + o.P3M,
		P3A:    t.P3A + o.P3A,
		FTM:    t.FTM + o.FTM,
		FTA:    t.FTA + o.FTA,
		RimM:   t.RimM + o.RimM,
		RimA:   t.RimA + o.RimA,
		MidM:   t.MidM + o.MidM,
		MidA:   t.MidA + o.MidA,
		Zones:  t.Zones.Add(o.Zones),
	}
}

// Scale multiplies every total by factor
func (t TeamTotals) Scale(factor float64) TeamTotals {
	return TeamTotals{
		Pts:    t.Pts * factor,
		Reb:    t.Reb * factor,
		OffReb: t.OffReb * factor,
		DefReb: t.DefReb * factor,
		Ast:    t.Ast * factor,
		Stl:    t.Stl * factor,
		Blk:    t.Blk * factor,
		Tov:    t.Tov * factor,
		PF:     t.PF * factor,
		FGM:    t.FGM * factor,
		FGA:    t.FGA * factor,
		P3M:    t.P3M * factor,
		P3A:    t.P3A * factor,
		FTM:    t.FTM * factor,
		FTA:    t.FTA * factor,
		RimM:   t.RimM * factor,
		RimA:   t.RimA * factor,
		MidM:   t.MidM * factor,
		MidA:   t.MidA * factor,
		Zones:  t.Zones.Scale(factor),
	}
}

// BoxScore is a team's embedded single-game totals
type BoxScore = TeamTotals

// ScheduledGame is one schedule entry. HomeStats/AwayStats are only present
// for games the simulation engine kept box scores for.
type ScheduledGame struct {
	ID         string    `json:"id"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	Date       time.Time `json:"date"`
	HomeScore  int       `json:"homeScore"`
	AwayScore  int       `json:"awayScore"`
	Played     bool      `json:"played"`
	HomeStats  *BoxScore `json:"homeStats,omitempty"`
	AwayStats  *BoxScore `json:"awayStats,omitempty"`
}

// Involves reports whether the team is home or away in the game
func (g ScheduledGame) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// League is the (teams, schedule) snapshot every computation reads
type League struct {
	Teams    []Team          `json:"teams"`
	Schedule []ScheduledGame `json:"schedule"`
}

// TeamRow is a team in a Teams-mode result
type TeamRow struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Abbreviation string             `json:"abbreviation,omitempty"`
	Wins         int                `json:"wins"`
	Losses       int                `json:"losses"`
	GamesPlayed  int                `json:"gamesPlayed"`
	Stats        map[string]float64 `json:"stats"`
	Metrics      TeamMetrics        `json:"-"`
	RawTotals    TeamTotals         `json:"rawTotals"`
	RawOppTotals TeamTotals         `json:"rawOppTotals"`
}

// PlayerRow is a player in a Players-mode result. Stats is the flat metric
// map (per-game counts plus derived rates); Totals are the season totals.
type PlayerRow struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Position string             `json:"position"`
	TeamID   string             `json:"teamId"`
	TeamName string             `json:"teamName"`
	Ratings  Ratings            `json:"ratings"`
	Totals   PlayerStats        `json:"totals"`
	Stats    map[string]float64 `json:"stats"`
	Metrics  PlayerMetrics      `json:"-"`
}

// Range is the observed {min,max} of one metric
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Result is the output of Compute. Exactly one of Players/Teams is set,
// according to Mode.
type Result struct {
	Mode    Mode             `json:"mode"`
	Players []PlayerRow      `json:"players,omitempty"`
	Teams   []TeamRow        `json:"teams,omitempty"`
	Ranges  map[string]Range `json:"ranges"`
}

// MarshalJSON always writes the active mode's rows as an array, so an
// empty filtered result encodes as [] rather than dropping the key.
func (r Result) MarshalJSON() ([]byte, error) {
	type wire struct {
		Mode    Mode             `json:"mode"`
		Players *[]PlayerRow     `json:"players,omitempty"`
		Teams   *[]TeamRow       `json:"teams,omitempty"`
		Ranges  map[string]Range `json:"ranges"`
	}
	w := wire{Mode: r.Mode, Ranges: r.Ranges}
	if w.Ranges == nil {
		w.Ranges = map[string]Range{}
	}
	if r.Mode == ModeTeams {
		rows := r.Teams
		if rows == nil {
			rows = []TeamRow{}
		}
		w.Teams = &rows
	} else {
		rows := r.Players
		if rows == nil {
			rows = []PlayerRow{}
		}
		w.Players = &rows
	}
	return json.Marshal(w)
}

// Len returns the number of rows in the result
func (r Result) Len() int {
	if r.Mode == ModeTeams {
		return len(r.Teams)
	}
	return len(r.Players)
}

// Totals projects the player's counting stats onto the team-totals shape
func (s PlayerStats) Totals() TeamTotals {
	return TeamTotals{
		Pts:    s.Pts,
		Reb:    s.Reb,
		OffReb: s.OffReb,
		DefReb: s.DefReb,
		Ast:    s.Ast,
		Stl:    s.Stl,
		Blk:    s.Blk,
		Tov:    s.Tov,
		PF:     s.PF,
		FGM:    s.FGM,
		FGA:    s.FGA,
		P3M:    s.P3M,
		P3A:    s.P3A,
		FTM:    s.FTM,
		FTA:    s.FTA,
		RimM:   s.RimM,
		RimA:   s.RimA,
		MidM:   s.MidM,
		MidA:   s.MidA,
		Zones:  s.Zones,
	}
}

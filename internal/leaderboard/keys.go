package leaderboard

import (
	"sort"
	"strings"
)

// Metric keys of the flat stats map
const (
	KeyG   = "g"
	KeyGS  = "gs"
	KeyMP  = "mp"
	KeyMPG = "mpg"

	KeyPts    = "pts"
	KeyReb    = "reb"
	KeyOffReb = "oreb"
	KeyDefReb = "dreb"
	KeyAst    = "ast"
	KeyStl    = "stl"
	KeyBlk    = "blk"
	KeyTov    = "tov"
	KeyPF     = "pf"
	KeyFGM    = "fgm"
	KeyFGA    = "fga"
	KeyP3M    = "p3m"
	KeyP3A    = "p3a"
	KeyFTM    = "ftm"
	KeyFTA    = "fta"

	KeyFGPct  = "fgPct"
	KeyP3Pct  = "p3Pct"
	KeyFTPct  = "ftPct"
	KeyTSPct  = "tsPct"
	KeyEFGPct = "efgPct"
	KeyP3AR   = "p3ar"
	KeyFTR    = "ftr"
	KeyRimPct = "rimPct"
	KeyMidPct = "midPct"

	KeyTOVPct = "tovPct"
	KeyUsgPct = "usgPct"
	KeyAstPct = "astPct"
	KeyORBPct = "orbPct"
	KeyDRBPct = "drbPct"
	KeyTRBPct = "trbPct"
	KeyStlPct = "stlPct"
	KeyBlkPct = "blkPct"

	KeyPace   = "pace"
	KeyPoss   = "poss"
	KeyORtg   = "ortg"
	KeyDRtg   = "drtg"
	KeyNetRtg = "netRtg"
	KeyOppPts = "oppPts"

	KeyWins   = "wins"
	KeyLosses = "losses"
	KeyWinPct = "winPct"

	KeyName     = "name"
	KeyPosition = "position"
	KeyTeam     = "team"
)

// MetricKind decides how a metric is compared in filters
type MetricKind string

const (
	// KindPercent values are stored in [0,1] and compared x100
	KindPercent MetricKind = "percent"
	// KindCount values are season totals shown and compared per game
	KindCount MetricKind = "count"
	// KindRatio values are compared as stored
	KindRatio MetricKind = "ratio"
	// KindAttribute values are static player ratings
	KindAttribute MetricKind = "attribute"
	// KindText keys sort by collation and cannot be filtered numerically
	KindText MetricKind = "text"
)

// Scope tells which modes expose a metric
type Scope string

const (
	ScopeBoth    Scope = "both"
	ScopePlayers Scope = "players"
	ScopeTeams   Scope = "teams"
)

// Metric describes one sortable/filterable key
type Metric struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  MetricKind `json:"kind"`
	Scope Scope      `json:"scope"`
}

var metricTable = map[string]Metric{}

func register(kind MetricKind, scope Scope, key, label string) {
	metricTable[key] = Metric{Key: key, Label: label, Kind: kind, Scope: scope}
}

func init() {
	register(KindRatio, ScopeBoth, KeyG, "Games")
	register(KindRatio, ScopePlayers, KeyGS, "Games Started")
	register(KindRatio, ScopePlayers, KeyMP, "Minutes")
	register(KindRatio, ScopePlayers, KeyMPG, "Minutes Per Game")

	register(KindCount, ScopeBoth, KeyPts, "Points")
	register(KindCount, ScopeBoth, KeyReb, "Rebounds")
	register(KindCount, ScopeBoth, KeyOffReb, "Offensive Rebounds")
	register(KindCount, ScopeBoth, KeyDefReb, "Defensive Rebounds")
	register(KindCount, ScopeBoth, KeyAst, "Assists")
	register(KindCount, ScopeBoth, KeyStl, "Steals")
	register(KindCount, ScopeBoth, KeyBlk, "Blocks")
	register(KindCount, ScopeBoth, KeyTov, "Turnovers")
	register(KindCount, ScopeBoth, KeyPF, "Personal Fouls")
	register(KindCount, ScopeBoth, KeyFGM, "Field Goals Made")
	register(KindCount, ScopeBoth, KeyFGA, "Field Goals Attempted")
	register(KindCount, ScopeBoth, KeyP3M, "3PT Made")
	register(KindCount, ScopeBoth, KeyP3A, "3PT Attempted")
	register(KindCount, ScopeBoth, KeyFTM, "Free Throws Made")
	register(KindCount, ScopeBoth, KeyFTA, "Free Throws Attempted")

	register(KindPercent, ScopeBoth, KeyFGPct, "FG%")
	register(KindPercent, ScopeBoth, KeyP3Pct, "3P%")
	register(KindPercent, ScopeBoth, KeyFTPct, "FT%")
	register(KindPercent, ScopeBoth, KeyTSPct, "TS%")
	register(KindPercent, ScopeBoth, KeyEFGPct, "eFG%")
	register(KindPercent, ScopeBoth, KeyRimPct, "Rim%")
	register(KindPercent, ScopeBoth, KeyMidPct, "Mid%")
	register(KindPercent, ScopeBoth, KeyTOVPct, "TOV%")
	register(KindPercent, ScopeBoth, KeyORBPct, "ORB%")
	register(KindPercent, ScopeBoth, KeyDRBPct, "DRB%")
	register(KindPercent, ScopeBoth, KeyTRBPct, "TRB%")
	register(KindPercent, ScopePlayers, KeyUsgPct, "USG%")
	register(KindPercent, ScopePlayers, KeyAstPct, "AST%")
	register(KindPercent, ScopePlayers, KeyStlPct, "STL%")
	register(KindPercent, ScopePlayers, KeyBlkPct, "BLK%")
	register(KindPercent, ScopeTeams, KeyWinPct, "Win%")

	register(KindRatio, ScopeBoth, KeyP3AR, "3PA Rate")
	register(KindRatio, ScopeBoth, KeyFTR, "FT Rate")
	register(KindRatio, ScopeTeams, KeyPace, "Pace")
	register(KindRatio, ScopeTeams, KeyPoss, "Possessions")
	register(KindRatio, ScopeTeams, KeyORtg, "Offensive Rating")
	register(KindRatio, ScopeTeams, KeyDRtg, "Defensive Rating")
	register(KindRatio, ScopeTeams, KeyNetRtg, "Net Rating")
	register(KindRatio, ScopeTeams, KeyOppPts, "Opponent Points")
	register(KindRatio, ScopeTeams, KeyWins, "Wins")
	register(KindRatio, ScopeTeams, KeyLosses, "Losses")

	for _, z := range AllZones() {
		register(KindCount, ScopeBoth, z.MadeKey(), z.String()+" made")
		register(KindCount, ScopeBoth, z.AttemptsKey(), z.String()+" attempts")
		register(KindPercent, ScopeBoth, z.PctKey(), z.String()+"%")
	}

	register(KindText, ScopeBoth, KeyName, "Name")
	register(KindText, ScopePlayers, KeyPosition, "Position")
	register(KindText, ScopePlayers, KeyTeam, "Team")

	for key, a := range attributeTable {
		register(KindAttribute, ScopePlayers, key, a.label)
	}
}

// keyAliases maps alternate spellings onto canonical keys
var keyAliases = map[string]string{
	"offReb": KeyOffReb,
	"defReb": KeyDefReb,
	"fg%":    KeyFGPct,
	"3p%":    KeyP3Pct,
	"ft%":    KeyFTPct,
	"ts%":    KeyTSPct,
	"efg%":   KeyEFGPct,
	"tov%":   KeyTOVPct,
	"usg%":   KeyUsgPct,
	"ast%":   KeyAstPct,
	"orb%":   KeyORBPct,
	"drb%":   KeyDRBPct,
	"trb%":   KeyTRBPct,
	"stl%":   KeyStlPct,
	"blk%":   KeyBlkPct,
	"rim%":   KeyRimPct,
	"mid%":   KeyMidPct,
	"3par":   KeyP3AR,
}

type attribute struct {
	label string
	get   func(Ratings) float64
}

// attributeTable resolves rating keys. A bare "blk" or "def" is always the
// statistic; the rating is only reachable through its rating_ key.
var attributeTable = map[string]attribute{
	"rating_ovr": {"Overall", func(r Ratings) float64 { return r.Ovr }},
	"rating_ins": {"Inside Scoring", func(r Ratings) float64 { return r.Ins }},
	"rating_out": {"Outside Scoring", func(r Ratings) float64 { return r.Out }},
	"rating_def": {"Defense", func(r Ratings) float64 { return r.Def }},
	"rating_reb": {"Rebounding", func(r Ratings) float64 { return r.Reb }},
	"rating_blk": {"Shot Blocking", func(r Ratings) float64 { return r.Blk }},
	"rating_stl": {"Stealing", func(r Ratings) float64 { return r.Stl }},
	"rating_pas": {"Passing", func(r Ratings) float64 { return r.Pas }},
	"rating_hnd": {"Ball Handling", func(r Ratings) float64 { return r.Hnd }},
	"rating_ath": {"Athleticism", func(r Ratings) float64 { return r.Ath }},
	"rating_iq":  {"Basketball IQ", func(r Ratings) float64 { return r.IQ }},
}

// CanonicalKey resolves aliases ("fg%", "offReb", "attr:def") to the
// registered key. Unknown keys are returned unchanged.
func CanonicalKey(key string) string {
	if short, ok := strings.CutPrefix(key, "attr:"); ok {
		return "rating_" + short
	}
	if k, ok := keyAliases[key]; ok {
		return k
	}
	if k, ok := keyAliases[strings.ToLower(key)]; ok {
		return k
	}
	return key
}

// LookupMetric finds a metric by key or alias
func LookupMetric(key string) (Metric, bool) {
	m, ok := metricTable[CanonicalKey(key)]
	return m, ok
}

// IsAttributeKey reports whether key names a static rating
func IsAttributeKey(key string) bool {
	_, ok := attributeTable[CanonicalKey(key)]
	return ok
}

// AttributeValue reads a rating by key; unknown keys give 0, false
func AttributeValue(r Ratings, key string) (float64, bool) {
	a, ok := attributeTable[CanonicalKey(key)]
	if !ok {
		return 0, false
	}
	return a.get(r), true
}

// Metrics lists the metrics visible in a mode, sorted by key
func Metrics(mode Mode) []Metric {
	out := make([]Metric, 0, len(metricTable))
	for _, m := range metricTable {
		if m.Scope == ScopeBoth ||
			(mode == ModePlayers && m.Scope == ScopePlayers) ||
			(mode == ModeTeams && m.Scope == ScopeTeams) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

package leaderboard_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/fortuna/courtside/internal/leaderboard"
)

func TestCompute_Deterministic(t *testing.T) {
	league := scenarioLeague()

	for _, mode := range []leaderboard.Mode{leaderboard.ModePlayers, leaderboard.ModeTeams} {
		t.Run(string(mode), func(t *testing.T) {
			q := leaderboard.DefaultQuery(mode)
			first := leaderboard.Compute(league, q)
			second := leaderboard.Compute(league, q)
			if !reflect.DeepEqual(first, second) {
				t.Error("repeated Compute returned different results")
			}
		})
	}
}

func TestCompute_DoesNotMutateLeague(t *testing.T) {
	league := scenarioLeague()

	leaderboard.Compute(league, leaderboard.DefaultQuery(leaderboard.ModePlayers))
	leaderboard.Compute(league, leaderboard.DefaultQuery(leaderboard.ModeTeams))

	if !reflect.DeepEqual(league, scenarioLeague()) {
		t.Error("league snapshot was modified")
	}
}

func TestCompute_ExcludesPlayersWithoutGames(t *testing.T) {
	q := leaderboard.DefaultQuery(leaderboard.ModePlayers)
	q.Filters = []leaderboard.FilterCriterion{{Category: "pts", Operator: "<=", Value: 1000}}
	q.SelectedTeams = []string{"A"}

	res := leaderboard.Compute(scenarioLeague(), q)

	for _, row := range res.Players {
		if row.ID == "a3" {
			t.Fatal("player with g = 0 appeared in results")
		}
	}
	if res.Len() != 2 {
		t.Errorf("Len = %d, want 2", res.Len())
	}
}

func TestCompute_PlayersSortedByPointsPerGame(t *testing.T) {
	res := leaderboard.Compute(scenarioLeague(), leaderboard.DefaultQuery(leaderboard.ModePlayers))

	if res.Mode != leaderboard.ModePlayers || len(res.Teams) != 0 {
		t.Fatalf("unexpected result shape: mode %s", res.Mode)
	}
	if res.Players[0].Name != "Alan Archer" {
		t.Errorf("first = %s, want Alan Archer", res.Players[0].Name)
	}
	if res.Players[0].TeamName != "Austin Armadillos" || res.Players[0].TeamID != "A" {
		t.Errorf("team = %s/%s", res.Players[0].TeamID, res.Players[0].TeamName)
	}

	pts := res.Ranges["pts"]
	approx(t, "pts min", pts.Min, 25)
	approx(t, "pts max", pts.Max, 60)
	if _, ok := res.Ranges["g"]; ok {
		t.Error("g should not be range-profiled")
	}
}

func TestCompute_RangesFollowFilteredRows(t *testing.T) {
	q := leaderboard.DefaultQuery(leaderboard.ModePlayers)
	q.SelectedTeams = []string{"B"}

	res := leaderboard.Compute(scenarioLeague(), q)

	r := res.Ranges["pts"]
	approx(t, "min", r.Min, 30)
	approx(t, "max", r.Max, 30)
}

func TestCompute_Teams(t *testing.T) {
	res := leaderboard.Compute(scenarioLeague(), leaderboard.DefaultQuery(leaderboard.ModeTeams))

	if len(res.Teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(res.Teams))
	}
	top := res.Teams[0]
	if top.ID != "A" {
		t.Fatalf("first = %s, want A (100 ppg)", top.ID)
	}
	approx(t, "fgPct", top.Stats["fgPct"], 0.5)
	approx(t, "tsPct", top.Stats["tsPct"], 100/(2*(80+0.44*15)))
	approx(t, "raw opp fga", top.RawOppTotals.FGA, 30)
	approx(t, "raw fga", top.RawTotals.FGA, 80)
	if top.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", top.GamesPlayed)
	}
}

func TestCompute_TeamWithoutPlayedGames(t *testing.T) {
	league := leaderboard.League{
		Teams: []leaderboard.Team{{ID: "X", Name: "Expansion", Roster: []leaderboard.RosterPlayer{{ID: "x1"}}}},
	}

	res := leaderboard.Compute(league, leaderboard.DefaultQuery(leaderboard.ModeTeams))

	row := res.Teams[0]
	for _, key := range []string{"pts", "fgPct", "pace", "winPct"} {
		if v := row.Stats[key]; v != 0 {
			t.Errorf("%s = %v, want 0", key, v)
		}
	}
}

func TestPlayerStatsJSON_FlatZoneKeys(t *testing.T) {
	raw := `{"g":10,"pts":150,"offReb":12,"rim_m":20,"rim_a":31,"atb3_r_a":9,"unknown":1}`

	var s leaderboard.PlayerStats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.G != 10 || s.Pts != 150 || s.OffReb != 12 {
		t.Errorf("decoded %+v", s)
	}
	if z := s.Zones.Get(leaderboard.ZoneRim); z.Made != 20 || z.Attempts != 31 {
		t.Errorf("rim = %+v", z)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]float64
	if err := json.Unmarshal(out, &flat); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if flat["rim_a"] != 31 || flat["atb3_r_a"] != 9 || flat["pts"] != 150 {
		t.Errorf("flat = %v", flat)
	}
	if _, ok := flat["Zones"]; ok {
		t.Error("zones leaked as a nested field")
	}
}

func TestParseShotZone(t *testing.T) {
	for _, z := range leaderboard.AllZones() {
		got, ok := leaderboard.ParseShotZone(z.String())
		if !ok || got != z {
			t.Errorf("ParseShotZone(%q) = %v, %v", z.String(), got, ok)
		}
	}
	if _, ok := leaderboard.ParseShotZone("half_court"); ok {
		t.Error("unknown zone parsed")
	}
	if n := len(leaderboard.AllZones()); n != 10 {
		t.Errorf("%d zones, want 10", n)
	}
}

func TestParseHelpers(t *testing.T) {
	if m, err := leaderboard.ParseMode("teams"); err != nil || m != leaderboard.ModeTeams {
		t.Errorf("ParseMode(teams) = %v, %v", m, err)
	}
	if m, err := leaderboard.ParseMode(""); err != nil || m != leaderboard.ModePlayers {
		t.Errorf("ParseMode('') = %v, %v", m, err)
	}
	if _, err := leaderboard.ParseMode("coaches"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if op, err := leaderboard.ParseOperator("gte"); err != nil || op != leaderboard.OpGreaterEqual {
		t.Errorf("ParseOperator(gte) = %v, %v", op, err)
	}
	if d, err := leaderboard.ParseDirection("ASC"); err != nil || d != leaderboard.Asc {
		t.Errorf("ParseDirection(ASC) = %v, %v", d, err)
	}
}

func TestResultJSON_EmptyRowsEncodeAsArray(t *testing.T) {
	tests := []struct {
		mode    leaderboard.Mode
		rowsKey string
		absent  string
	}{
		{leaderboard.ModePlayers, "players", "teams"},
		{leaderboard.ModeTeams, "teams", "players"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			q := leaderboard.DefaultQuery(tt.mode)
			q.Search = "nobody by this name"
			res := leaderboard.Compute(scenarioLeague(), q)
			if res.Len() != 0 {
				t.Fatalf("Len = %d, want 0", res.Len())
			}

			out, err := json.Marshal(res)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var decoded map[string]json.RawMessage
			if err := json.Unmarshal(out, &decoded); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := string(decoded[tt.rowsKey]); got != "[]" {
				t.Errorf("%s = %q, want []", tt.rowsKey, got)
			}
			if _, ok := decoded[tt.absent]; ok {
				t.Errorf("%s present in %s result", tt.absent, tt.mode)
			}
			if got := string(decoded["ranges"]); got != "{}" {
				t.Errorf("ranges = %q, want {}", got)
			}

			var back leaderboard.Result
			if err := json.Unmarshal(out, &back); err != nil {
				t.Fatalf("round trip: %v", err)
			}
			if back.Mode != tt.mode || back.Len() != 0 {
				t.Errorf("round trip = %+v", back)
			}
		})
	}
}

package leaderboard_test

import (
	"reflect"
	"testing"

	"github.com/fortuna/courtside/internal/leaderboard"
)

func TestSortPlayers(t *testing.T) {
	tests := []struct {
		name  string
		order leaderboard.SortSpec
		want  []string
	}{
		{
			name:  "points per game descending",
			order: leaderboard.SortSpec{Key: "pts", Direction: leaderboard.Desc},
			want:  []string{"Alan Archer", "Bo Baxter", "Dan Dorsey", "Eli Evans"},
		},
		{
			name:  "points per game ascending",
			order: leaderboard.SortSpec{Key: "pts", Direction: leaderboard.Asc},
			want:  []string{"Eli Evans", "Dan Dorsey", "Bo Baxter", "Alan Archer"},
		},
		{
			name:  "name ascending",
			order: leaderboard.SortSpec{Key: "name", Direction: leaderboard.Asc},
			want:  []string{"Alan Archer", "Bo Baxter", "Dan Dorsey", "Eli Evans"},
		},
		{
			name:  "position descending",
			order: leaderboard.SortSpec{Key: "position", Direction: leaderboard.Desc},
			want:  []string{"Dan Dorsey", "Alan Archer", "Eli Evans", "Bo Baxter"},
		},
		{
			name:  "missing key keeps input order",
			order: leaderboard.SortSpec{Key: "nothing", Direction: leaderboard.Desc},
			want:  []string{"Alan Archer", "Bo Baxter", "Dan Dorsey", "Eli Evans"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := leaderboard.PlayerRows(scenarioLeague())
			leaderboard.SortPlayers(rows, tt.order)
			if got := names(rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortPlayers_CollationIgnoresCase(t *testing.T) {
	rows := []leaderboard.PlayerRow{
		{Name: "zed"}, {Name: "Émile"}, {Name: "adam"}, {Name: "Bea"},
	}

	leaderboard.SortPlayers(rows, leaderboard.SortSpec{Key: "name", Direction: leaderboard.Asc})

	want := []string{"adam", "Bea", "Émile", "zed"}
	if got := names(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortPlayers_AttributeKey(t *testing.T) {
	league := scenarioLeague()
	league.Teams[2].Roster[0].Ratings.Def = 95 // Evans
	rows := leaderboard.PlayerRows(league)

	leaderboard.SortPlayers(rows, leaderboard.SortSpec{Key: "rating_def", Direction: leaderboard.Desc})

	if rows[0].Name != "Eli Evans" {
		t.Errorf("first = %s, want Eli Evans", rows[0].Name)
	}
}

func TestSortTeams(t *testing.T) {
	rows := leaderboard.TeamRows(scenarioLeague())

	leaderboard.SortTeams(rows, leaderboard.SortSpec{Key: "winPct", Direction: leaderboard.Desc})

	got := []string{rows[0].ID, rows[1].ID, rows[2].ID}
	if want := []string{"A", "C", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

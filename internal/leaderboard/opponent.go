package leaderboard

import "sort"

// OpponentTotals is the reconstructed season line of a team's opponents
type OpponentTotals struct {
	Totals TeamTotals `json:"totals"`

	// Observed counts games whose opponent box score was embedded
	Observed int `json:"observed"`

	// Estimated counts, per opponent id, games filled in from that
	// opponent's season average
	Estimated map[string]int `json:"estimated,omitempty"`
}

// HasEstimates reports whether any part of the totals is approximated
func (o OpponentTotals) HasEstimates() bool {
	return len(o.Estimated) > 0
}

// ReconstructOpponentTotals accumulates what the team's opponents produced
// against it. Games with an embedded opponent box score contribute it
// exactly. For the rest, each opponent's season totals are scaled by
// missing/opponentGamesPlayed and added, which assumes the opponent played
// its season average in every unobserved game.
//
// seasonTotals and gamesPlayed are keyed by team id; an opponent absent from
// gamesPlayed is treated as having played 1 game.
func ReconstructOpponentTotals(
	teamID string,
	schedule []ScheduledGame,
	seasonTotals map[string]TeamTotals,
	gamesPlayed map[string]int,
) OpponentTotals {
	var out OpponentTotals
	missing := make(map[string]int)

	for i := range schedule {
		g := &schedule[i]
		if !g.Played || !g.Involves(teamID) {
			continue
		}

		oppID, oppBox := g.AwayTeamID, g.AwayStats
		if g.AwayTeamID == teamID {
			oppID, oppBox = g.HomeTeamID, g.HomeStats
		}

		if oppBox != nil {
			out.Totals = out.Totals.Add(*oppBox)
			out.Observed++
			continue
		}
		missing[oppID]++
	}

	if len(missing) == 0 {
		return out
	}

	// Fixed order keeps the floating-point sum identical across calls.
	oppIDs := make([]string, 0, len(missing))
	for id := range missing {
		oppIDs = append(oppIDs, id)
	}
	sort.Strings(oppIDs)

	out.Estimated = missing
	for _, id := range oppIDs {
		factor := float64(missing[id]) / float64(floorGames(gamesPlayed[id]))
		out.Totals = out.Totals.Add(seasonTotals[id].Scale(factor))
	}
	return out
}

package leaderboard

import "strings"

// criterionValue resolves the number a filter compares. Count metrics are
// already per game in the stats map, percentages are scaled x100, and an
// unknown category resolves to 0.
func criterionValue(stats map[string]float64, ratings *Ratings, category string) float64 {
	key := CanonicalKey(category)
	if ratings != nil {
		if v, ok := AttributeValue(*ratings, key); ok {
			return v
		}
	}
	m, ok := metricTable[key]
	if !ok || m.Kind == KindAttribute {
		return 0
	}
	v := stats[key]
	if m.Kind == KindPercent {
		v *= 100
	}
	return v
}

func matchesCriteria(stats map[string]float64, ratings *Ratings, filters []FilterCriterion) bool {
	for _, f := range filters {
		if !f.Operator.Compare(criterionValue(stats, ratings, f.Category), f.Value) {
			return false
		}
	}
	return true
}

// stringSet is nil when the selection is empty, meaning "everything"
type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	if len(items) == 0 {
		return nil
	}
	s := make(stringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s stringSet) allows(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

func containsFold(name, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}

// FilterPlayers keeps rows matching the team, position, name search and
// every stat criterion
func FilterPlayers(rows []PlayerRow, q Query) []PlayerRow {
	teams := newStringSet(q.SelectedTeams)
	positions := newStringSet(q.SelectedPositions)
	search := strings.TrimSpace(q.Search)

	out := make([]PlayerRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		if !teams.allows(r.TeamID) || !positions.allows(r.Position) {
			continue
		}
		if !containsFold(r.Name, search) {
			continue
		}
		if !matchesCriteria(r.Stats, &r.Ratings, q.Filters) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// FilterTeams keeps rows matching the team selection, name search and every
// stat criterion. Position selection does not apply to teams.
func FilterTeams(rows []TeamRow, q Query) []TeamRow {
	teams := newStringSet(q.SelectedTeams)
	search := strings.TrimSpace(q.Search)

	out := make([]TeamRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		if !teams.allows(r.ID) {
			continue
		}
		if !containsFold(r.Name, search) && !containsFold(r.Abbreviation, search) {
			continue
		}
		if !matchesCriteria(r.Stats, nil, q.Filters) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

package leaderboard

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a collator for name-like keys. Collators are not safe
// for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase, collate.Loose)
}

func (r *PlayerRow) textValue(key string) (string, bool) {
	switch key {
	case KeyName:
		return r.Name, true
	case KeyPosition:
		return r.Position, true
	case KeyTeam:
		return r.TeamName, true
	}
	return "", false
}

func (r *TeamRow) textValue(key string) (string, bool) {
	switch key {
	case KeyName, KeyTeam:
		return r.Name, true
	}
	return "", false
}

// numericValue returns the sort value; missing keys sort as 0
func numericValue(stats map[string]float64, ratings *Ratings, key string) float64 {
	if ratings != nil {
		if v, ok := AttributeValue(*ratings, key); ok {
			return v
		}
	}
	return stats[key]
}

// SortPlayers orders rows in place by the single active sort. Rows with
// equal values keep their input order within one call; callers must not
// rely on any particular tie order across calls.
func SortPlayers(rows []PlayerRow, order SortSpec) {
	if order.Key == "" {
		return
	}
	key := CanonicalKey(order.Key)
	desc := order.Direction != Asc

	if _, ok := (&PlayerRow{}).textValue(key); ok {
		c := newCollator()
		sort.SliceStable(rows, func(i, j int) bool {
			a, _ := rows[i].textValue(key)
			b, _ := rows[j].textValue(key)
			cmp := c.CompareString(a, b)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		d := numericValue(rows[i].Stats, &rows[i].Ratings, key) -
			numericValue(rows[j].Stats, &rows[j].Ratings, key)
		if desc {
			return d > 0
		}
		return d < 0
	})
}

// SortTeams orders rows in place; tie handling matches SortPlayers
func SortTeams(rows []TeamRow, order SortSpec) {
	if order.Key == "" {
		return
	}
	key := CanonicalKey(order.Key)
	desc := order.Direction != Asc

	if _, ok := (&TeamRow{}).textValue(key); ok {
		c := newCollator()
		sort.SliceStable(rows, func(i, j int) bool {
			a, _ := rows[i].textValue(key)
			b, _ := rows[j].textValue(key)
			cmp := c.CompareString(a, b)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		d := numericValue(rows[i].Stats, nil, key) - numericValue(rows[j].Stats, nil, key)
		if desc {
			return d > 0
		}
		return d < 0
	})
}

package rest

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/fortuna/courtside/internal/leaderboard"
)

// queryErrors collects per-parameter validation failures
type queryErrors map[string]string

func (e queryErrors) add(key, message string) {
	if _, exists := e[key]; !exists {
		e[key] = message
	}
}

func (e queryErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// parseQuery builds a leaderboard query from URL parameters. mode, when
// non-empty, overrides the mode parameter.
func parseQuery(qs url.Values, mode leaderboard.Mode) (leaderboard.Query, error) {
	errs := queryErrors{}

	if mode == "" {
		m, err := leaderboard.ParseMode(qs.Get("mode"))
		if err != nil {
			errs.add("mode", err.Error())
		}
		mode = m
	}
	q := leaderboard.DefaultQuery(mode)

	if key := strings.TrimSpace(qs.Get("sort")); key != "" {
		q.Sort.Key = key
	}
	if d := qs.Get("dir"); d != "" {
		dir, err := leaderboard.ParseDirection(d)
		if err != nil {
			errs.add("dir", err.Error())
		}
		q.Sort.Direction = dir
	}

	q.SelectedTeams = readCSV(qs, "team")
	q.SelectedPositions = readCSV(qs, "position")
	q.Search = qs.Get("q")

	for _, raw := range qs["filter"] {
		f, err := parseFilter(raw)
		if err != nil {
			errs.add("filter", err.Error())
			continue
		}
		q.Filters = append(q.Filters, f)
	}

	if len(errs) > 0 {
		return q, errs
	}
	return q, nil
}

// parseFilter reads "category:op:value". The category may itself contain
// colons (attr:def), so the operator and value are taken from the right.
func parseFilter(raw string) (leaderboard.FilterCriterion, error) {
	vi := strings.LastIndex(raw, ":")
	if vi <= 0 {
		return leaderboard.FilterCriterion{}, fmt.Errorf("%q must be category:op:value", raw)
	}
	oi := strings.LastIndex(raw[:vi], ":")
	if oi <= 0 {
		return leaderboard.FilterCriterion{}, fmt.Errorf("%q must be category:op:value", raw)
	}

	op, err := leaderboard.ParseOperator(raw[oi+1 : vi])
	if err != nil {
		return leaderboard.FilterCriterion{}, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw[vi+1:]), 64)
	if err != nil {
		return leaderboard.FilterCriterion{}, fmt.Errorf("%q: value must be a number", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return leaderboard.FilterCriterion{}, fmt.Errorf("%q: value must be finite", raw)
	}

	return leaderboard.FilterCriterion{
		Category: strings.TrimSpace(raw[:oi]),
		Operator: op,
		Value:    value,
	}, nil
}

// readCSV accepts both repeated parameters and comma-separated lists
func readCSV(qs url.Values, key string) []string {
	var out []string
	for _, v := range qs[key] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

package leaderboard

import (
	"fmt"
	"strings"
)

// Mode selects player or team rows
type Mode string

const (
	ModePlayers Mode = "Players"
	ModeTeams   Mode = "Teams"
)

// ParseMode accepts "players"/"teams" in any case; empty means players
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "players", "player":
		return ModePlayers, nil
	case "teams", "team":
		return ModeTeams, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Operator is a stat filter comparison
type Operator string

const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "="
)

// equalTolerance absorbs rounding in displayed values
const equalTolerance = 0.1

var operatorNames = map[string]Operator{
	">": OpGreater, "gt": OpGreater,
	"<": OpLess, "lt": OpLess,
	">=": OpGreaterEqual, "gte": OpGreaterEqual,
	"<=": OpLessEqual, "lte": OpLessEqual,
	"=": OpEqual, "==": OpEqual, "eq": OpEqual,
}

// ParseOperator accepts symbols and their gt/lt/gte/lte/eq names
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Compare applies the operator to a resolved value and the threshold
func (op Operator) Compare(value, threshold float64) bool {
	switch op {
	case OpGreater:
		return value > threshold
	case OpLess:
		return value < threshold
	case OpGreaterEqual:
		return value >= threshold
	case OpLessEqual:
		return value <= threshold
	case OpEqual:
		d := value - threshold
		return d <= equalTolerance && d >= -equalTolerance
	}
	return false
}

// FilterCriterion keeps rows whose category value satisfies Operator Value.
// Percentages are entered as whole numbers (45 means 45%).
type FilterCriterion struct {
	Category string   `json:"category"`
	Operator Operator `json:"operator"`
	Value    float64  `json:"value"`
}

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc/desc; empty means desc
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Desc, nil
	case "asc", "ascending":
		return Asc, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// SortSpec is the single active sort
type SortSpec struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Query is everything that shapes one leaderboard view
type Query struct {
	Mode              Mode              `json:"mode"`
	Filters           []FilterCriterion `json:"activeFilters,omitempty"`
	Sort              SortSpec          `json:"sortConfig"`
	SelectedTeams     []string          `json:"selectedTeams,omitempty"`
	SelectedPositions []string          `json:"selectedPositions,omitempty"`
	Search            string            `json:"searchQuery,omitempty"`
}

// DefaultQuery sorts the mode by points, highest first
func DefaultQuery(mode Mode) Query {
	return Query{Mode: mode, Sort: SortSpec{Key: KeyPts, Direction: Desc}}
}

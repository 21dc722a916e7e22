package leaderboard

import "math"

// RangeProfiler tracks the running {min,max} of each metric key for color
// scaling. Results do not depend on the order values are fed in.
type RangeProfiler struct {
	ranges map[string]Range
}

// NewRangeProfiler creates an empty profiler
func NewRangeProfiler() *RangeProfiler {
	return &RangeProfiler{ranges: make(map[string]Range)}
}

// rangeExcluded keys carry no color-scale meaning
var rangeExcluded = map[string]bool{
	KeyG:  true,
	KeyMP: true,
}

// Update merges value into the range of key. The first observation seeds
// both bounds. NaN and excluded keys are ignored.
func (p *RangeProfiler) Update(key string, value float64) {
	if rangeExcluded[key] || math.IsNaN(value) {
		return
	}
	r, ok := p.ranges[key]
	if !ok {
		p.ranges[key] = Range{Min: value, Max: value}
		return
	}
	if value < r.Min {
		r.Min = value
	}
	if value > r.Max {
		r.Max = value
	}
	p.ranges[key] = r
}

// UpdateAll merges every entry of a metric map
func (p *RangeProfiler) UpdateAll(values map[string]float64) {
	for k, v := range values {
		p.Update(k, v)
	}
}

// Merge folds another profiler's ranges into p
func (p *RangeProfiler) Merge(other *RangeProfiler) {
	for k, r := range other.ranges {
		p.Update(k, r.Min)
		p.Update(k, r.Max)
	}
}

// Ranges returns a copy of the current ranges
func (p *RangeProfiler) Ranges() map[string]Range {
	out := make(map[string]Range, len(p.ranges))
	for k, r := range p.ranges {
		out[k] = r
	}
	return out
}

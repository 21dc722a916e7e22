package leaderboard

import (
	"encoding/json"
	"fmt"
)

// ShotZone identifies one of the ten tracked court regions
type ShotZone int

const (
	ZoneRim ShotZone = iota
	ZonePaint
	ZoneMidLeft
	ZoneMidCenter
	ZoneMidRight
	ZoneCornerThreeLeft
	ZoneCornerThreeRight
	ZoneAboveBreakLeft
	ZoneAboveBreakCenter
	ZoneAboveBreakRight

	numZones
)

var zoneKeys = [numZones]string{
	ZoneRim:              "rim",
	ZonePaint:            "paint",
	ZoneMidLeft:          "mid_l",
	ZoneMidCenter:        "mid_c",
	ZoneMidRight:         "mid_r",
	ZoneCornerThreeLeft:  "c3_l",
	ZoneCornerThreeRight: "c3_r",
	ZoneAboveBreakLeft:   "atb3_l",
	ZoneAboveBreakCenter: "atb3_c",
	ZoneAboveBreakRight:  "atb3_r",
}

// AllZones lists every shot zone in court order
func AllZones() []ShotZone {
	zones := make([]ShotZone, numZones)
	for i := range zones {
		zones[i] = ShotZone(i)
	}
	return zones
}

// String returns the wire key of the zone (e.g. "mid_l")
func (z ShotZone) String() string {
	if z < 0 || z >= numZones {
		return fmt.Sprintf("zone(%d)", int(z))
	}
	return zoneKeys[z]
}

// ParseShotZone maps a wire key back to its zone
func ParseShotZone(key string) (ShotZone, bool) {
	for i, k := range zoneKeys {
		if k == key {
			return ShotZone(i), true
		}
	}
	return 0, false
}

// MadeKey is the "{zone}_m" key used in stat maps
func (z ShotZone) MadeKey() string { return z.String() + "_m" }

// AttemptsKey is the "{zone}_a" key used in stat maps
func (z ShotZone) AttemptsKey() string { return z.String() + "_a" }

// PctKey is the "{zone}_pct" key of the derived percentage
func (z ShotZone) PctKey() string { return z.String() + "_pct" }

// ZoneLine holds makes and attempts for a single zone
type ZoneLine struct {
	Made     float64 `json:"made"`
	Attempts float64 `json:"attempts"`
}

// Pct returns Made/Attempts, or 0 with no attempts
func (l ZoneLine) Pct() float64 {
	return safeDiv(l.Made, l.Attempts)
}

// ZoneSplits is the fixed per-zone record carried by players, teams and box scores
type ZoneSplits [numZones]ZoneLine

// Get returns the line for a zone
func (s ZoneSplits) Get(z ShotZone) ZoneLine {
	return s[z]
}

// Add returns the zone-wise sum of s and o
func (s ZoneSplits) Add(o ZoneSplits) ZoneSplits {
	for i := range s {
		s[i].Made += o[i].Made
		s[i].Attempts += o[i].Attempts
	}
	return s
}

// Scale multiplies every line by factor
func (s ZoneSplits) Scale(factor float64) ZoneSplits {
	for i := range s {
		s[i].Made *= factor
		s[i].Attempts *= factor
	}
	return s
}

// Combined sums the lines of the given zones
func (s ZoneSplits) Combined(zones ...ShotZone) ZoneLine {
	var out ZoneLine
	for _, z := range zones {
		out.Made += s[z].Made
		out.Attempts += s[z].Attempts
	}
	return out
}

// MarshalJSON flattens the splits into "{zone}_m"/"{zone}_a" keys
func (s ZoneSplits) MarshalJSON() ([]byte, error) {
	flat := make(map[string]float64, 2*numZones)
	for i, line := range s {
		z := ShotZone(i)
		flat[z.MadeKey()] = line.Made
		flat[z.AttemptsKey()] = line.Attempts
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads "{zone}_m"/"{zone}_a" keys; unknown keys are ignored
// and absent keys stay 0
func (s *ZoneSplits) UnmarshalJSON(data []byte) error {
	var flat map[string]float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("decoding zone splits: %w", err)
	}
	*s = ZoneSplits{}
	for i := range s {
		z := ShotZone(i)
		s[i].Made = flat[z.MadeKey()]
		s[i].Attempts = flat[z.AttemptsKey()]
	}
	return nil
}

// spliceZones appends the flattened zone keys to an encoded JSON object
func spliceZones(base []byte, zones ZoneSplits) ([]byte, error) {
	zj, err := zones.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if len(base) < 2 || base[len(base)-1] != '}' {
		return nil, fmt.Errorf("splicing zones: not a JSON object")
	}
	if len(base) == 2 {
		return zj, nil
	}
	out := make([]byte, 0, len(base)+len(zj))
	out = append(out, base[:len(base)-1]...)
	out = append(out, ',')
	out = append(out, zj[1:]...)
	return out, nil
}

package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a start
// snapshot, a sequence of check-ins, and the outcomes each one must
// produce. Replaying a fixture exercises the engine end to end with no
// database and no wall clock.
type Fixture struct {
	Description string               `json:"description"`
	Start       FixtureStart         `json:"start"`
	Checkins    []FixtureCheckin     `json:"checkins"`
	Expected    []FixtureExpectation `json:"expected_results"`
}

// FixtureStart is the JSON-serializable initial snapshot. DaysSince maps
// pattern → days before BaseTime it was last trained; patterns absent
// from the map have never been trained.
type FixtureStart struct {
	BaseTime      string         `json:"base_time"` // RFC3339
	DaysSince     map[string]int `json:"days_since"`
	Levels        map[string]int `json:"conditioning_levels"`
	LastPushPlane string         `json:"last_push_plane,omitempty"`
}

// FixtureCheckin is one simulated check-in, Day days after BaseTime.
// When Complete is set the composed session is marked done, feeding the
// completion mutator before the next check-in.
type FixtureCheckin struct {
	Day      int  `json:"day"`
	Pain     int  `json:"pain"`
	Energy   int  `json:"energy"`
	Complete bool `json:"complete"`
}

// FixtureExpectation pins the outcome of the check-in on a given day.
// Empty fields are not checked.
type FixtureExpectation struct {
	Day      int    `json:"day"`
	State    string `json:"state,omitempty"`
	Anchor   string `json:"anchor,omitempty"`
	Main     string `json:"main,omitempty"`
	Protocol string `json:"protocol,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if _, err := time.Parse(time.RFC3339, f.Start.BaseTime); err != nil {
		return nil, fmt.Errorf("fixture %s: bad base_time: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader

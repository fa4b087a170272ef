package replay

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize default config: %v", err)
	}
	return cfg
}

func weekFixture() *Fixture {
	return &Fixture{
		Description: "one training week: three green days, a flare-up, recovery",
		Start: FixtureStart{
			BaseTime:  "2026-03-02T08:00:00Z",
			DaysSince: map[string]int{"SQUAT": 2, "HINGE": 4},
		},
		Checkins: []FixtureCheckin{
			{Day: 0, Pain: 1, Energy: 8, Complete: true},
			{Day: 1, Pain: 2, Energy: 7, Complete: true},
			{Day: 2, Pain: 4, Energy: 6, Complete: true},
			{Day: 3, Pain: 8, Energy: 4, Complete: true},
			{Day: 4, Pain: 2, Energy: 7, Complete: false},
		},
		Expected: []FixtureExpectation{
			// PUSH and PULL have never been trained; priority puts PUSH first.
			{Day: 0, State: "GREEN", Anchor: "PUSH", Main: "Bench Press", Protocol: "SIT"},
			{Day: 1, State: "GREEN", Anchor: "PULL", Main: "Weighted Pull-Up", Protocol: "HIIT"},
			// Pain 4 crosses the lower band: orange selections.
			{Day: 2, State: "ORANGE", Anchor: "HINGE", Main: "Romanian Deadlift", Protocol: "SIT"},
			// Flare-up: recovery day. Squat holds the most debt but its
			// main is SKIP on red, so the anchor falls through to PUSH.
			{Day: 3, State: "RED", Anchor: "PUSH", Protocol: "SS"},
			{Day: 4, State: "GREEN", Anchor: "SQUAT", Main: "Back Squat"},
		},
	}
}

func TestRun_Week(t *testing.T) {
	cfg := testConfig(t)

	results, summary, err := Run(cfg, weekFixture())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.TotalCheckins != 5 {
		t.Errorf("checkins: got %d, want 5", summary.TotalCheckins)
	}
	for _, m := range summary.Mismatches {
		t.Errorf("day %d %s: got %q, want %q", m.Day, m.Field, m.Got, m.Want)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("day %d: unexpected error %v", r.Day, r.Err)
		}
	}
	if !summary.Passed() {
		t.Error("expectation summary reports failure")
	}

	// Day 3's SS completion must not advance any level; the two SIT and
	// one HIIT completions must.
	if got := summary.FinalLevels.Level(config.ProtocolSIT); got != 3 {
		t.Errorf("final SIT level: got %d, want 3", got)
	}
	if got := summary.FinalLevels.Level(config.ProtocolHIIT); got != 2 {
		t.Errorf("final HIIT level: got %d, want 2", got)
	}
}

func TestRun_MismatchReported(t *testing.T) {
	cfg := testConfig(t)

	f := weekFixture()
	f.Expected = []FixtureExpectation{{Day: 0, Main: "Back Squat"}}

	_, summary, err := Run(cfg, f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Passed() {
		t.Fatal("expected a mismatch")
	}
	m := summary.Mismatches[0]
	if m.Day != 0 || m.Field != "main" || m.Want != "Back Squat" {
		t.Errorf("mismatch: %+v", m)
	}
}

func TestRun_BadBaseTime(t *testing.T) {
	f := weekFixture()
	f.Start.BaseTime = "yesterday"
	if _, _, err := Run(testConfig(t), f); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.json")
	if err := SaveFixture(path, weekFixture()); err != nil {
		t.Fatalf("SaveFixture: %v", err)
	}
	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if got.Description != weekFixture().Description {
		t.Errorf("description: got %q", got.Description)
	}
	if len(got.Checkins) != 5 || len(got.Expected) != 5 {
		t.Errorf("lost rows: %d checkins, %d expectations", len(got.Checkins), len(got.Expected))
	}

	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

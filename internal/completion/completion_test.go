package completion

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	earlier := now.AddDate(0, 0, -5)

	snap := history.NewSnapshot()
	snap.LastTrained[config.PatternSquat] = earlier
	snap.LastTrained[config.PatternHinge] = earlier
	snap.LastPushPlane = config.PlaneVertical
	levels := history.Levels{config.ProtocolSIT: 2}

	facts := Facts{
		Anchor:    config.PatternSquat,
		Protocol:  config.ProtocolSIT,
		PushPlane: config.PlaneHorizontal,
	}
	newSnap, newLevels := Apply(snap, levels, facts, now, 7)

	if got := newSnap.LastTrained[config.PatternSquat]; !got.Equal(now) {
		t.Errorf("anchor timestamp: got %v, want %v", got, now)
	}
	if got := newSnap.LastTrained[config.PatternHinge]; !got.Equal(earlier) {
		t.Errorf("non-anchor timestamp moved: got %v, want %v", got, earlier)
	}
	if _, trained := newSnap.LastTrained[config.PatternPush]; trained {
		t.Error("never-trained pattern gained a timestamp")
	}
	if newSnap.LastPushPlane != config.PlaneHorizontal {
		t.Errorf("push plane: got %q, want %q", newSnap.LastPushPlane, config.PlaneHorizontal)
	}
	if got := newLevels.Level(config.ProtocolSIT); got != 3 {
		t.Errorf("protocol level: got %d, want 3", got)
	}

	// Inputs stay untouched.
	if !snap.LastTrained[config.PatternSquat].Equal(earlier) {
		t.Error("input snapshot mutated")
	}
	if levels[config.ProtocolSIT] != 2 {
		t.Error("input levels mutated")
	}
}

func TestApply_EmptyOptionalFacts(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	snap := history.NewSnapshot()
	snap.LastPushPlane = config.PlaneVertical

	newSnap, newLevels := Apply(snap, history.Levels{}, Facts{Anchor: config.PatternPull}, now, 7)

	if newSnap.LastPushPlane != config.PlaneVertical {
		t.Errorf("plane changed on empty fact: got %q", newSnap.LastPushPlane)
	}
	if len(newLevels) != 0 {
		t.Errorf("levels changed on empty protocol: %v", newLevels)
	}
	if !newSnap.LastTrained[config.PatternPull].Equal(now) {
		t.Error("anchor not stamped")
	}
}

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSnapshot_Empty(t *testing.T) {
	s := tempStore(t)

	snap, levels, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.LastTrained) != 0 {
		t.Errorf("expected empty history, got %v", snap.LastTrained)
	}
	if snap.LastPushPlane != "" {
		t.Errorf("expected empty plane, got %q", snap.LastPushPlane)
	}
	if got := levels.Level(config.ProtocolSIT); got != 1 {
		t.Errorf("absent protocol level: got %d, want 1", got)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	snap := NewSnapshot()
	snap.LastTrained[config.PatternSquat] = now
	snap.LastTrained[config.PatternPull] = now.AddDate(0, 0, -3)
	snap.LastPushPlane = config.PlaneHorizontal
	levels := Levels{config.ProtocolSIT: 3, config.ProtocolHIIT: 2}

	if err := s.SaveSnapshot(snap, levels); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, gotLevels, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !got.LastTrained[config.PatternSquat].Equal(now) {
		t.Errorf("squat timestamp: got %v, want %v", got.LastTrained[config.PatternSquat], now)
	}
	if _, ok := got.LastTrained[config.PatternHinge]; ok {
		t.Error("never-trained pattern appeared in snapshot")
	}
	if got.LastPushPlane != config.PlaneHorizontal {
		t.Errorf("plane: got %q, want %q", got.LastPushPlane, config.PlaneHorizontal)
	}
	if gotLevels[config.ProtocolSIT] != 3 || gotLevels[config.ProtocolHIIT] != 2 {
		t.Errorf("levels: got %v", gotLevels)
	}

	// Saving again upserts rather than duplicating.
	snap.LastTrained[config.PatternSquat] = now.AddDate(0, 0, 1)
	levels[config.ProtocolSIT] = 4
	if err := s.SaveSnapshot(snap, levels); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	got, gotLevels, err = s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !got.LastTrained[config.PatternSquat].Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("squat timestamp after upsert: got %v", got.LastTrained[config.PatternSquat])
	}
	if gotLevels[config.ProtocolSIT] != 4 {
		t.Errorf("level after upsert: got %d, want 4", gotLevels[config.ProtocolSIT])
	}
}

func TestSessionLog(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	id, err := s.RecordSession(config.StateGreen, config.ArchetypePerformance,
		config.PatternSquat, `{"state":"GREEN"}`, now)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty session id")
	}

	records, err := s.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.SessionID != id || rec.State != config.StateGreen || rec.AnchorPattern != config.PatternSquat {
		t.Errorf("record mismatch: %+v", rec)
	}
	if rec.CompletedAt != nil {
		t.Error("session completed before MarkCompleted")
	}

	done := now.Add(time.Hour)
	if err := s.MarkCompleted(id, done); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	records, err = s.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if records[0].CompletedAt == nil || !records[0].CompletedAt.Equal(done) {
		t.Errorf("completed_at: got %v, want %v", records[0].CompletedAt, done)
	}
}

func TestMarkCompleted_UnknownSession(t *testing.T) {
	s := tempStore(t)
	if err := s.MarkCompleted("no-such-session", time.Now()); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

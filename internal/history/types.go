package history

import (
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

// #region snapshot

// Snapshot is a read-only view of the user's training history at one
// instant. The engine never mutates a Snapshot in place; completion
// returns a new one for the caller to persist.
type Snapshot struct {
	// LastTrained maps pattern → last-trained instant. An absent key
	// means "never trained", which ranks as infinite debt.
	LastTrained map[config.Pattern]time.Time

	// LastPushPlane is the plane of the most recent push accessory,
	// used for red-day push/pull balance. Empty = unknown.
	LastPushPlane config.Plane
}

// NewSnapshot returns an empty snapshot (all patterns never trained).
func NewSnapshot() Snapshot {
	return Snapshot{LastTrained: make(map[config.Pattern]time.Time)}
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		LastTrained:   make(map[config.Pattern]time.Time, len(s.LastTrained)),
		LastPushPlane: s.LastPushPlane,
	}
	for p, t := range s.LastTrained {
		out.LastTrained[p] = t
	}
	return out
}

// #endregion snapshot

// #region levels

// Levels maps conditioning protocol → current level. An absent protocol
// is level 1; SS is never persisted above 1.
type Levels map[config.Protocol]int

// Level returns the current level for a protocol, defaulting to 1.
func (l Levels) Level(p config.Protocol) int {
	if l == nil {
		return 1
	}
	if lv, ok := l[p]; ok && lv >= 1 {
		return lv
	}
	return 1
}

// Clone returns a copy.
func (l Levels) Clone() Levels {
	out := make(Levels, len(l))
	for p, lv := range l {
		out[p] = lv
	}
	return out
}

// #endregion levels

// #region session-record

// SessionRecord is one generated (and possibly completed) session in the
// session_log table.
type SessionRecord struct {
	SessionID     string
	State         config.State
	Archetype     config.Archetype
	AnchorPattern config.Pattern
	PlanJSON      string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// #endregion session-record

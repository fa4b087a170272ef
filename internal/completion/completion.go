package completion

import (
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/conditioning"
	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

// #region facts

// Facts is what the caller reports about a finished session.
type Facts struct {
	// Anchor is the completed session's anchor pattern.
	Anchor config.Pattern

	// Protocol is the conditioning protocol actually performed; empty
	// means the conditioning block was skipped.
	Protocol config.Protocol

	// PushPlane is the plane of the push accessory performed, if any;
	// empty leaves the recorded plane unchanged.
	PushPlane config.Plane
}

// #endregion facts

// #region apply

// Apply computes the post-completion snapshots. Pure: inputs are cloned,
// never mutated, and nothing is persisted here.
//
// History uses the timestamp form: the anchor's last-trained instant is
// stamped to now and every other pattern is untouched (their debt grows
// on its own as time passes). The completed protocol - and only it -
// advances per the progression rule.
func Apply(snap history.Snapshot, levels history.Levels, facts Facts, now time.Time, maxLevel int) (history.Snapshot, history.Levels) {
	newSnap := snap.Clone()
	newSnap.LastTrained[facts.Anchor] = now
	if facts.PushPlane != "" {
		newSnap.LastPushPlane = facts.PushPlane
	}

	newLevels := conditioning.Advance(levels, facts.Protocol, maxLevel)
	return newSnap, newLevels
}

// #endregion apply

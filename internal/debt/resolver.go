package debt

import (
	"fmt"
	"sort"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

// #region debt-type

// Debt is how long a pattern has gone untrained. Never-trained patterns
// carry infinite debt and outrank any finite elapsed duration.
type Debt struct {
	Pattern config.Pattern
	Elapsed time.Duration
	Never   bool
}

// outranks reports whether d should be trained before other, priority
// ranks breaking exact-debt ties.
func (d Debt) outranks(other Debt, rank map[config.Pattern]int) bool {
	if d.Never != other.Never {
		return d.Never
	}
	if !d.Never && d.Elapsed != other.Elapsed {
		return d.Elapsed > other.Elapsed
	}
	return priorityRank(d.Pattern, rank) < priorityRank(other.Pattern, rank)
}

func priorityRank(p config.Pattern, rank map[config.Pattern]int) int {
	if r, ok := rank[p]; ok {
		return r
	}
	return len(rank)
}

// #endregion debt-type

// #region rank

// Rank computes the debt for each listed pattern against the snapshot and
// returns them highest-debt first. The priority list breaks exact ties
// (including multiple never-trained patterns), so the ordering is total.
func Rank(snap history.Snapshot, patterns []config.Pattern, priority []config.Pattern, now time.Time) []Debt {
	rank := make(map[config.Pattern]int, len(priority))
	for i, p := range priority {
		rank[p] = i
	}

	debts := make([]Debt, 0, len(patterns))
	for _, p := range patterns {
		last, trained := snap.LastTrained[p]
		if !trained {
			debts = append(debts, Debt{Pattern: p, Never: true})
			continue
		}
		debts = append(debts, Debt{Pattern: p, Elapsed: now.Sub(last)})
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].outranks(debts[j], rank)
	})
	return debts
}

// #endregion rank

// #region anchor

// Anchor picks today's anchor pattern: the highest-debt pattern whose
// main-lift entry is not the Skip sentinel for the current state. Skip
// entries fall through to the next candidate; a missing entry is a
// configuration defect and aborts. If every candidate is Skip the
// selection is exhausted, which is also fatal - a plan is never composed
// without a main lift.
func Anchor(ranked []Debt, sel config.Matrix, state config.State) (config.Pattern, error) {
	for _, d := range ranked {
		name, ok := sel.Lookup(d.Pattern, config.TierMain, state)
		if !ok {
			return "", &config.ConfigError{
				Section: "selections",
				Key:     fmt.Sprintf("%s/%s/%s", d.Pattern, config.TierMain, state),
				Reason:  "no main-lift entry",
			}
		}
		if name == config.Skip {
			continue
		}
		return d.Pattern, nil
	}
	return "", fmt.Errorf("anchor for state %s: %w", state, config.ErrPatternsExhausted)
}

// #endregion anchor

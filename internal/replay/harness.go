package replay

import (
	"fmt"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/completion"
	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/engine"
	"github.com/danielpatrickdp/flux-engine/internal/history"
	"github.com/danielpatrickdp/flux-engine/internal/readiness"
)

// #region result-types

// Result captures one replayed check-in.
type Result struct {
	Day      int
	State    config.State
	Anchor   config.Pattern
	Main     string
	Protocol config.Protocol
	Err      error
}

// Mismatch is one failed expectation.
type Mismatch struct {
	Day   int
	Field string
	Want  string
	Got   string
}

// Summary aggregates a fixture run.
type Summary struct {
	TotalCheckins int
	Mismatches    []Mismatch
	FinalSnapshot history.Snapshot
	FinalLevels   history.Levels
}

// Passed reports whether every expectation held.
func (s Summary) Passed() bool {
	return len(s.Mismatches) == 0
}

// #endregion result-types

// #region run

// Run replays a fixture through the engine. Time advances only via the
// fixture's day offsets, so a fixture run is fully deterministic.
func Run(cfg *config.Config, f *Fixture) ([]Result, Summary, error) {
	base, err := time.Parse(time.RFC3339, f.Start.BaseTime)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("parse base_time: %w", err)
	}

	snap := history.NewSnapshot()
	for pattern, days := range f.Start.DaysSince {
		snap.LastTrained[config.Pattern(pattern)] = base.AddDate(0, 0, -days)
	}
	snap.LastPushPlane = config.Plane(f.Start.LastPushPlane)

	levels := make(history.Levels, len(f.Start.Levels))
	for proto, lv := range f.Start.Levels {
		levels[config.Protocol(proto)] = lv
	}

	eng := engine.New(cfg)
	results := make([]Result, 0, len(f.Checkins))

	for _, ci := range f.Checkins {
		now := base.AddDate(0, 0, ci.Day)
		plan, err := eng.ClassifyAndCompose(
			readiness.Input{Pain: ci.Pain, Energy: ci.Energy},
			snap, levels, now,
		)
		if err != nil {
			results = append(results, Result{Day: ci.Day, Err: err})
			continue
		}

		results = append(results, Result{
			Day:      ci.Day,
			State:    plan.State,
			Anchor:   plan.AnchorPattern,
			Main:     plan.MainExercise(),
			Protocol: plan.ConditioningProtocol(),
		})

		if ci.Complete {
			snap, levels = eng.ApplyCompletion(snap, levels, completion.Facts{
				Anchor:    plan.AnchorPattern,
				Protocol:  plan.ConditioningProtocol(),
				PushPlane: plan.PushPlane(),
			}, now)
		}
	}

	return results, summarize(results, f, snap, levels), nil
}

// #endregion run

// #region summarize

func summarize(results []Result, f *Fixture, snap history.Snapshot, levels history.Levels) Summary {
	byDay := make(map[int]Result, len(results))
	for _, r := range results {
		byDay[r.Day] = r
	}

	s := Summary{
		TotalCheckins: len(results),
		FinalSnapshot: snap,
		FinalLevels:   levels,
	}

	for _, exp := range f.Expected {
		r, ok := byDay[exp.Day]
		if !ok {
			s.Mismatches = append(s.Mismatches, Mismatch{Day: exp.Day, Field: "checkin", Want: "present", Got: "absent"})
			continue
		}
		if r.Err != nil {
			s.Mismatches = append(s.Mismatches, Mismatch{Day: exp.Day, Field: "error", Want: "", Got: r.Err.Error()})
			continue
		}
		check := func(field, want, got string) {
			if want != "" && want != got {
				s.Mismatches = append(s.Mismatches, Mismatch{Day: exp.Day, Field: field, Want: want, Got: got})
			}
		}
		check("state", exp.State, string(r.State))
		check("anchor", exp.Anchor, string(r.Anchor))
		check("main", exp.Main, r.Main)
		check("protocol", exp.Protocol, string(r.Protocol))
	}

	return s
}

// #endregion summarize

package readiness

import (
	"github.com/danielpatrickdp/flux-engine/internal/config"
)

// #region input

// Input is one check-in: self-reported pain and energy, each 0-10.
// Callers validate the range at the boundary; Classify clamps anyway so
// an out-of-contract value still maps deterministically.
type Input struct {
	Pain   int `json:"pain"`
	Energy int `json:"energy"`
}

// #endregion input

// #region classify

// Classify maps a check-in to a biological state and session archetype.
//
// Each axis is scored independently against its configured band, then the
// worse axis dictates the overall state. Boundary convention (pinned):
//
//	pain:   GREEN iff pain <= lower,  ORANGE iff lower < pain <= upper,  RED iff pain > upper
//	energy: GREEN iff energy > upper, ORANGE iff lower < energy <= upper, RED iff energy <= lower
//
// RED maps to the RECOVERY archetype; GREEN and ORANGE to PERFORMANCE.
func Classify(in Input, th config.Thresholds) (config.State, config.Archetype) {
	pain := clamp(in.Pain)
	energy := clamp(in.Energy)

	painState := axisState(pain, th.Pain, false)
	energyState := axisState(energy, th.Energy, true)

	state := worst(painState, energyState)
	archetype := config.ArchetypePerformance
	if state == config.StateRed {
		archetype = config.ArchetypeRecovery
	}
	return state, archetype
}

// #endregion classify

// #region axis-state

// axisState scores one axis. For higherIsBetter axes (energy) the band is
// read top-down; otherwise (pain) bottom-up.
func axisState(score int, band config.Band, higherIsBetter bool) config.State {
	if higherIsBetter {
		switch {
		case score > band.Upper:
			return config.StateGreen
		case score > band.Lower:
			return config.StateOrange
		default:
			return config.StateRed
		}
	}
	switch {
	case score <= band.Lower:
		return config.StateGreen
	case score <= band.Upper:
		return config.StateOrange
	default:
		return config.StateRed
	}
}

// #endregion axis-state

// #region helpers

var stateOrder = map[config.State]int{
	config.StateRed:    0,
	config.StateOrange: 1,
	config.StateGreen:  2,
}

// worst returns the lower-ranked of two states (red < orange < green).
func worst(a, b config.State) config.State {
	if stateOrder[a] <= stateOrder[b] {
		return a
	}
	return b
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// #endregion helpers

package readiness

import (
	"testing"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

func defaultThresholds() config.Thresholds {
	return config.Thresholds{
		Pain:   config.Band{Lower: 3, Upper: 6},
		Energy: config.Band{Lower: 2, Upper: 5},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		pain, energy  int
		wantState     config.State
		wantArchetype config.Archetype
	}{
		// Clear cases
		{"all-green", 0, 10, config.StateGreen, config.ArchetypePerformance},
		{"all-red", 10, 0, config.StateRed, config.ArchetypeRecovery},
		{"mid-orange", 5, 4, config.StateOrange, config.ArchetypePerformance},

		// Pain boundaries: green iff ≤ lower, red iff > upper
		{"pain-at-lower-green", 3, 10, config.StateGreen, config.ArchetypePerformance},
		{"pain-above-lower-orange", 4, 10, config.StateOrange, config.ArchetypePerformance},
		{"pain-at-upper-orange", 6, 10, config.StateOrange, config.ArchetypePerformance},
		{"pain-above-upper-red", 7, 10, config.StateRed, config.ArchetypeRecovery},

		// Energy boundaries: green iff > upper, red iff ≤ lower
		{"energy-above-upper-green", 0, 6, config.StateGreen, config.ArchetypePerformance},
		{"energy-at-upper-orange", 0, 5, config.StateOrange, config.ArchetypePerformance},
		{"energy-above-lower-orange", 0, 3, config.StateOrange, config.ArchetypePerformance},
		{"energy-at-lower-red", 0, 2, config.StateRed, config.ArchetypeRecovery},

		// Worst axis wins
		{"pain-3-energy-4-orange", 3, 4, config.StateOrange, config.ArchetypePerformance},
		{"pain-4-energy-3-orange", 4, 3, config.StateOrange, config.ArchetypePerformance},
		{"green-pain-red-energy", 0, 0, config.StateRed, config.ArchetypeRecovery},
		{"red-pain-green-energy", 9, 9, config.StateRed, config.ArchetypeRecovery},
		{"green-pain-orange-energy", 2, 4, config.StateOrange, config.ArchetypePerformance},
		{"orange-pain-green-energy", 4, 8, config.StateOrange, config.ArchetypePerformance},

		// Out-of-range scores clamp to [0, 10]
		{"pain-clamped-low", -3, 10, config.StateGreen, config.ArchetypePerformance},
		{"pain-clamped-high", 14, 10, config.StateRed, config.ArchetypeRecovery},
		{"energy-clamped-high", 0, 99, config.StateGreen, config.ArchetypePerformance},
		{"energy-clamped-low", 0, -1, config.StateRed, config.ArchetypeRecovery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, archetype := Classify(Input{Pain: tt.pain, Energy: tt.energy}, defaultThresholds())
			if state != tt.wantState {
				t.Errorf("state: got %q, want %q", state, tt.wantState)
			}
			if archetype != tt.wantArchetype {
				t.Errorf("archetype: got %q, want %q", archetype, tt.wantArchetype)
			}
		})
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	th := config.Thresholds{
		Pain:   config.Band{Lower: 0, Upper: 9},
		Energy: config.Band{Lower: 0, Upper: 0},
	}

	state, _ := Classify(Input{Pain: 9, Energy: 1}, th)
	if state != config.StateOrange {
		t.Errorf("got %q, want %q", state, config.StateOrange)
	}
	state, _ = Classify(Input{Pain: 0, Energy: 1}, th)
	if state != config.StateGreen {
		t.Errorf("got %q, want %q", state, config.StateGreen)
	}
}

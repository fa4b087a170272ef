package composer

import (
	"strings"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

// #region exercise

// Exercise is one prescribed movement inside a block. Tracking metadata
// comes straight from the library catalog; the composer selects, it never
// rewrites identity data.
type Exercise struct {
	Name         string         `json:"name"`
	Pattern      config.Pattern `json:"pattern,omitempty"`
	Tier         config.Tier    `json:"tier,omitempty"`
	Unilateral   bool           `json:"is_unilateral"`
	TrackingUnit string         `json:"tracking_unit"`
	LoadType     string         `json:"load_type"`

	// Timed-hold prescription (repair isometrics).
	HoldSeconds int `json:"hold_seconds,omitempty"`
	Sets        int `json:"sets,omitempty"`

	// Conditioning prescription.
	IsConditioning  bool   `json:"is_conditioning,omitempty"`
	Rounds          int    `json:"rounds,omitempty"`
	WorkSeconds     int    `json:"work_seconds,omitempty"`
	RestSeconds     int    `json:"rest_seconds,omitempty"`
	TargetIntensity string `json:"target_intensity,omitempty"`
	Description     string `json:"description,omitempty"`
	IsBenchmark     bool   `json:"is_benchmark,omitempty"`
}

// #endregion exercise

// #region block

// Block is one ordered section of the session.
type Block struct {
	Type      string     `json:"type"`
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// #endregion block

// #region plan

// Plan is a fully composed session. Immutable once generated; identical
// inputs and config always produce an identical plan.
type Plan struct {
	State         config.State     `json:"state"`
	Archetype     config.Archetype `json:"archetype"`
	AnchorPattern config.Pattern   `json:"anchor_pattern"`
	Blocks        []Block          `json:"blocks"`
}

// MainExercise returns the main-lift exercise name, or "" for plans
// whose template has no MAIN block (recovery days).
func (p Plan) MainExercise() string {
	for _, b := range p.Blocks {
		if b.Type == "MAIN" && len(b.Exercises) > 0 {
			return b.Exercises[0].Name
		}
	}
	return ""
}

// PushPlane returns the plane of the plan's push accessory, or "" when
// the plan has none. Callers feed this into completion facts so red days
// can alternate planes.
func (p Plan) PushPlane() config.Plane {
	for _, b := range p.Blocks {
		for _, ex := range b.Exercises {
			if ex.Pattern != config.PatternPush {
				continue
			}
			switch ex.Tier {
			case config.TierAccessoryVertical:
				return config.PlaneVertical
			case config.TierAccessoryHorizontal:
				return config.PlaneHorizontal
			}
		}
	}
	return ""
}

// ConditioningProtocol returns the protocol of the plan's conditioning
// exercise, or "" when the plan has none.
func (p Plan) ConditioningProtocol() config.Protocol {
	for _, b := range p.Blocks {
		for _, ex := range b.Exercises {
			if !ex.IsConditioning {
				continue
			}
			if proto, ok := strings.CutPrefix(string(ex.Pattern), "CONDITIONING:"); ok {
				return config.Protocol(proto)
			}
		}
	}
	return ""
}

// #endregion plan

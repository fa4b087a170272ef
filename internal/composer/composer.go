package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/conditioning"
	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/debt"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

// Component grammar for session templates (sessions.yaml):
//
//	MAIN_PATTERN          anchor pattern's main lift for the current state
//	RELATED_ACCESSORIES   accessory slots configured for the anchor
//	CORE                  highest-debt core subpattern at the CORE tier
//	POWER                 RFD tier chosen by state via power_selection
//	CONDITIONING:AUTO     rotation protocol at its current level
//	CONDITIONING:SS       steady state (red day)
//	MOBILITY_FLOW         recovery mobility checklist
//	REPAIR_ISOMETRICS     recovery timed holds
//	PLANE_BALANCE         one push + one pull on opposing planes
//	PATTERN:TIER          direct selection-matrix literal
//
// A Skip entry omits the slot; a missing entry aborts composition.

// #region compose

// Compose assembles the ordered blocks for a session. It is a pure
// selector over the config: same inputs, same plan. anchor must already
// be resolved (see debt.Anchor); recovery templates simply never
// reference MAIN_PATTERN.
func Compose(
	cfg *config.Config,
	state config.State,
	archetype config.Archetype,
	anchor config.Pattern,
	snap history.Snapshot,
	levels history.Levels,
	now time.Time,
) (Plan, error) {
	template := cfg.Sessions.Performance
	if archetype == config.ArchetypeRecovery {
		template = cfg.Sessions.Recovery
	}

	c := composition{
		cfg:    cfg,
		state:  state,
		anchor: anchor,
		snap:   snap,
		levels: levels,
		now:    now,
	}

	blocks := make([]Block, 0, len(template.Blocks))
	for _, bt := range template.Blocks {
		var exercises []Exercise
		for _, component := range bt.Components {
			resolved, err := c.resolve(component)
			if err != nil {
				return Plan{}, err
			}
			exercises = append(exercises, resolved...)
		}
		blocks = append(blocks, Block{Type: bt.Type, Label: bt.Label, Exercises: exercises})
	}

	return Plan{
		State:         state,
		Archetype:     archetype,
		AnchorPattern: anchor,
		Blocks:        blocks,
	}, nil
}

// #endregion compose

// #region composition

type composition struct {
	cfg    *config.Config
	state  config.State
	anchor config.Pattern
	snap   history.Snapshot
	levels history.Levels
	now    time.Time
}

func (c *composition) resolve(component string) ([]Exercise, error) {
	switch component {
	case "MAIN_PATTERN":
		return c.mainLift()
	case "RELATED_ACCESSORIES":
		return c.relatedAccessories()
	case "CORE":
		return c.core()
	case "POWER":
		return c.power()
	case "MOBILITY_FLOW":
		return c.mobilityFlow(), nil
	case "REPAIR_ISOMETRICS":
		return c.repairIsometrics(), nil
	case "PLANE_BALANCE":
		return c.planeBalance()
	}

	if proto, ok := strings.CutPrefix(component, "CONDITIONING:"); ok {
		return c.conditioningBlock(config.Protocol(proto))
	}

	if pat, tier, ok := strings.Cut(component, ":"); ok {
		return c.literal(config.Pattern(pat), config.Tier(tier))
	}

	return nil, &config.ConfigError{
		Section: "sessions",
		Key:     component,
		Reason:  "unknown template component",
	}
}

// #endregion composition

// #region main-lift

func (c *composition) mainLift() ([]Exercise, error) {
	name, ok := c.cfg.Selections.Lookup(c.anchor, config.TierMain, c.state)
	if !ok {
		return nil, c.missing(c.anchor, config.TierMain)
	}
	if name == config.Skip {
		// Anchor resolution already skipped ineligible patterns, so a
		// Skip here means anchor and composer disagree about the matrix.
		return nil, &config.ConfigError{
			Section: "selections",
			Key:     fmt.Sprintf("%s/%s/%s", c.anchor, config.TierMain, c.state),
			Reason:  "anchor pattern resolved to SKIP",
		}
	}
	return []Exercise{c.exercise(name, c.anchor, config.TierMain)}, nil
}

// #endregion main-lift

// #region accessories

func (c *composition) relatedAccessories() ([]Exercise, error) {
	slots, ok := c.cfg.Logic.Relationships[c.anchor]
	if !ok {
		return nil, &config.ConfigError{
			Section: "logic",
			Key:     fmt.Sprintf("relationships/%s", c.anchor),
			Reason:  "no accessory slots for anchor pattern",
		}
	}

	var out []Exercise
	for _, slot := range slots {
		name, ok := c.cfg.Selections.Lookup(slot.Pattern, slot.Tier, c.state)
		if !ok {
			return nil, c.missing(slot.Pattern, slot.Tier)
		}
		if name == config.Skip {
			continue
		}
		out = append(out, c.exercise(name, slot.Pattern, slot.Tier))
	}
	return out, nil
}

// #endregion accessories

// #region core

// core picks the highest-debt core subpattern; Skip entries fall through
// to the next subpattern so a contraindicated plane never blanks the slot.
func (c *composition) core() ([]Exercise, error) {
	patterns := c.cfg.Logic.Patterns.Core
	if len(patterns) == 0 {
		return nil, nil
	}
	ranked := debt.Rank(c.snap, patterns, c.cfg.Logic.PatternPriority, c.now)
	for _, d := range ranked {
		name, ok := c.cfg.Selections.Lookup(d.Pattern, config.TierCore, c.state)
		if !ok {
			return nil, c.missing(d.Pattern, config.TierCore)
		}
		if name == config.Skip {
			continue
		}
		return []Exercise{c.exercise(name, d.Pattern, config.TierCore)}, nil
	}
	return nil, nil
}

// #endregion core

// #region power

func (c *composition) power() ([]Exercise, error) {
	tier, ok := c.cfg.Logic.PowerSelection[c.state]
	if !ok {
		return nil, &config.ConfigError{
			Section: "logic",
			Key:     fmt.Sprintf("power_selection/%s", c.state),
			Reason:  "no power tier for state",
		}
	}
	name, ok := c.cfg.Selections.Lookup(config.PatternRFD, tier, c.state)
	if !ok {
		return nil, c.missing(config.PatternRFD, tier)
	}
	if name == config.Skip {
		return nil, nil
	}
	return []Exercise{c.exercise(name, config.PatternRFD, tier)}, nil
}

// #endregion power

// #region literal

func (c *composition) literal(p config.Pattern, t config.Tier) ([]Exercise, error) {
	name, ok := c.cfg.Selections.Lookup(p, t, c.state)
	if !ok {
		return nil, c.missing(p, t)
	}
	if name == config.Skip {
		return nil, nil
	}
	return []Exercise{c.exercise(name, p, t)}, nil
}

// #endregion literal

// #region recovery-components

func (c *composition) mobilityFlow() []Exercise {
	out := make([]Exercise, 0, len(c.cfg.Sessions.MobilityFlow))
	for _, name := range c.cfg.Sessions.MobilityFlow {
		out = append(out, c.exercise(name, config.PatternMobility, config.TierDynamic))
	}
	return out
}

func (c *composition) repairIsometrics() []Exercise {
	out := make([]Exercise, 0, len(c.cfg.Sessions.RepairIsometrics))
	for _, iso := range c.cfg.Sessions.RepairIsometrics {
		ex := c.exercise(iso.Name, "", "")
		ex.HoldSeconds = iso.HoldSeconds
		ex.Sets = iso.Sets
		out = append(out, ex)
	}
	return out
}

// planeBalance prescribes one push and one pull on opposing planes,
// alternating against the last recorded push plane. Volume is pulled
// from the ORANGE column: red-day pump work, not a red-day selection.
func (c *composition) planeBalance() ([]Exercise, error) {
	pushTier := config.TierAccessoryVertical
	pullTier := config.TierAccessoryHorizontal
	if c.snap.LastPushPlane == config.PlaneVertical {
		pushTier = config.TierAccessoryHorizontal
		pullTier = config.TierAccessoryVertical
	}

	var out []Exercise
	for _, slot := range []config.Slot{
		{Pattern: config.PatternPush, Tier: pushTier},
		{Pattern: config.PatternPull, Tier: pullTier},
	} {
		name, ok := c.cfg.Selections.Lookup(slot.Pattern, slot.Tier, config.StateOrange)
		if !ok {
			return nil, &config.ConfigError{
				Section: "selections",
				Key:     fmt.Sprintf("%s/%s/%s", slot.Pattern, slot.Tier, config.StateOrange),
				Reason:  "no entry",
			}
		}
		if name == config.Skip {
			continue
		}
		out = append(out, c.exercise(name, slot.Pattern, slot.Tier))
	}
	return out, nil
}

// #endregion recovery-components

// #region conditioning-block

func (c *composition) conditioningBlock(proto config.Protocol) ([]Exercise, error) {
	if proto == "AUTO" {
		proto = conditioning.Pick(c.cfg, c.levels)
	}
	params, level, err := conditioning.Params(c.cfg, proto, c.levels.Level(proto))
	if err != nil {
		return nil, err
	}

	cond := c.cfg.Conditioning
	return []Exercise{{
		Name:            fmt.Sprintf("%s - %s (Level %d)", cond.Equipment, proto, level),
		Pattern:         config.Pattern(fmt.Sprintf("CONDITIONING:%s", proto)),
		TrackingUnit:    cond.TrackingUnit,
		LoadType:        "BODYWEIGHT",
		IsConditioning:  true,
		Rounds:          params.Rounds,
		WorkSeconds:     params.WorkSeconds,
		RestSeconds:     params.RestSeconds,
		TargetIntensity: params.TargetIntensity,
		Description:     params.Description,
		IsBenchmark:     params.IsBenchmark,
	}}, nil
}

// #endregion conditioning-block

// #region helpers

// exercise enriches a catalog name with its tracking metadata.
func (c *composition) exercise(name string, p config.Pattern, t config.Tier) Exercise {
	settings := c.cfg.CatalogSettings(name)
	return Exercise{
		Name:         name,
		Pattern:      p,
		Tier:         t,
		Unilateral:   settings.Unilateral,
		TrackingUnit: settings.Unit,
		LoadType:     settings.Load,
	}
}

func (c *composition) missing(p config.Pattern, t config.Tier) error {
	return &config.ConfigError{
		Section: "selections",
		Key:     fmt.Sprintf("%s/%s/%s", p, t, c.state),
		Reason:  "no entry",
	}
}

// #endregion helpers

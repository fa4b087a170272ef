package conditioning

import (
	"fmt"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

// #region params

// Params resolves the work/rest/rounds tuple for a protocol at the given
// level. A persisted level above the highest defined one clamps down to
// it (config tables may shrink between releases); a protocol with no
// definitions at all is a configuration defect. Returns the tuple and
// the effective level used.
func Params(cfg *config.Config, p config.Protocol, level int) (config.ProtocolLevel, int, error) {
	levels, ok := cfg.Conditioning.Protocols[p]
	if !ok || len(levels) == 0 {
		return config.ProtocolLevel{}, 0, &config.ConfigError{
			Section: "conditioning",
			Key:     string(p),
			Reason:  "no level definitions",
		}
	}
	if pl, ok := levels[level]; ok {
		return pl, level, nil
	}

	max := 0
	for lv := range levels {
		if lv > max {
			max = lv
		}
	}
	if level > max {
		return levels[max], max, nil
	}
	return config.ProtocolLevel{}, 0, &config.ConfigError{
		Section: "conditioning",
		Key:     fmt.Sprintf("%s/%d", p, level),
		Reason:  "no entry for level",
	}
}

// #endregion params

// #region pick

// Pick chooses the protocol for a standard day: the lowest current level
// among the configured rotation order, earliest in the order winning
// ties. SS never appears here - it is the red-day protocol.
func Pick(cfg *config.Config, levels history.Levels) config.Protocol {
	order := cfg.Conditioning.Order
	if len(order) == 0 {
		return config.ProtocolHIIT
	}
	best := order[0]
	for _, p := range order[1:] {
		if levels.Level(p) < levels.Level(best) {
			best = p
		}
	}
	return best
}

// #endregion pick

// #region advance

// Advance returns the levels after completing a protocol. HIIT/SIT bump
// by one up to the configured cap; SS is pinned at level 1 and completing
// it changes nothing. Pure - the input map is not modified.
func Advance(levels history.Levels, completed config.Protocol, maxLevel int) history.Levels {
	out := levels.Clone()
	if completed == "" || completed == config.ProtocolSS {
		return out
	}
	next := levels.Level(completed) + 1
	if next > maxLevel {
		next = maxLevel
	}
	out[completed] = next
	return out
}

// #endregion advance

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// The configuration is split across five domain files, loaded once and
// merged. A missing file falls back to the built-in defaults for that
// section so a partial config dir still produces a runnable engine.
const (
	libraryFile      = "library.yaml"
	logicFile        = "logic.yaml"
	sessionsFile     = "sessions.yaml"
	selectionsFile   = "selections.yaml"
	conditioningFile = "conditioning.yaml"
)

// #region load

// Load reads the five config files from dir, merges them over the
// defaults, and finalizes derived lookups. The returned Config is
// immutable by convention; callers share it by reference.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if err := loadYAML(filepath.Join(dir, libraryFile), &cfg.Library); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, logicFile), &cfg.Logic); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, sessionsFile), &cfg.Sessions); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, selectionsFile), &cfg.Selections); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, conditioningFile), &cfg.Conditioning); err != nil {
		return nil, err
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML decodes path into out; a missing file is not an error.
func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// #endregion load

// #region finalize

// Finalize builds derived lookups (relationship slots, protocol index,
// catalog map) and validates the result.
func (c *Config) Finalize() error {
	// Parse "PATTERN:TIER" relationship strings.
	c.Logic.Relationships = make(map[Pattern][]Slot, len(c.Logic.RawRelationships))
	for main, specs := range c.Logic.RawRelationships {
		slots := make([]Slot, 0, len(specs))
		for _, spec := range specs {
			pat, tier, ok := strings.Cut(spec, ":")
			if !ok {
				return &ConfigError{
					Section: "logic",
					Key:     fmt.Sprintf("relationships/%s", main),
					Reason:  fmt.Sprintf("accessory spec %q is not PATTERN:TIER", spec),
				}
			}
			slots = append(slots, Slot{Pattern: Pattern(pat), Tier: Tier(tier)})
		}
		c.Logic.Relationships[main] = slots
	}

	// Index protocol rows by (tier, level).
	c.Conditioning.Protocols = make(map[Protocol]map[int]ProtocolLevel)
	for _, row := range c.Conditioning.RawProtocols {
		levels, ok := c.Conditioning.Protocols[row.Tier]
		if !ok {
			levels = make(map[int]ProtocolLevel)
			c.Conditioning.Protocols[row.Tier] = levels
		}
		levels[row.Level] = row.ProtocolLevel
	}

	// Catalog fast lookup.
	c.catalog = make(map[string]CatalogSettings, len(c.Library.Catalog))
	for _, entry := range c.Library.Catalog {
		c.catalog[entry.Name] = entry.Settings
	}

	return c.validate()
}

// #endregion finalize

// #region validate

// validate rejects configurations the engine cannot run against. It
// checks structural totality, not matrix completeness: a missing matrix
// entry is only a defect if a generation call actually reaches it.
func (c *Config) validate() error {
	if len(c.Logic.Patterns.Main) == 0 {
		return &ConfigError{Section: "logic", Key: "patterns/main", Reason: "no main patterns defined"}
	}

	// Tie-break totality: every main pattern needs a distinct priority rank.
	rank := make(map[Pattern]bool, len(c.Logic.PatternPriority))
	for _, p := range c.Logic.PatternPriority {
		if rank[p] {
			return &ConfigError{Section: "logic", Key: "pattern_priority", Reason: fmt.Sprintf("duplicate priority entry %s", p)}
		}
		rank[p] = true
	}
	for _, p := range c.Logic.Patterns.Main {
		if !rank[p] {
			return &ConfigError{Section: "logic", Key: "pattern_priority", Reason: fmt.Sprintf("main pattern %s has no priority rank", p)}
		}
	}

	for _, s := range []State{StateGreen, StateOrange, StateRed} {
		if _, ok := c.Logic.PowerSelection[s]; !ok {
			return &ConfigError{Section: "logic", Key: "power_selection", Reason: fmt.Sprintf("no power tier for state %s", s)}
		}
	}

	if len(c.Sessions.Performance.Blocks) == 0 {
		return &ConfigError{Section: "sessions", Key: "performance", Reason: "no blocks defined"}
	}
	if len(c.Sessions.Recovery.Blocks) == 0 {
		return &ConfigError{Section: "sessions", Key: "recovery", Reason: "no blocks defined"}
	}

	if c.Conditioning.MaxLevel < 1 {
		return &ConfigError{Section: "conditioning", Key: "max_level", Reason: "must be >= 1"}
	}
	for _, p := range c.Conditioning.Order {
		if p == ProtocolSS {
			return &ConfigError{Section: "conditioning", Key: "order", Reason: "SS is red-day only and cannot be in the rotation order"}
		}
		if _, ok := c.Conditioning.Protocols[p]; !ok {
			return &ConfigError{Section: "conditioning", Key: string(p), Reason: "protocol in order has no level definitions"}
		}
	}

	return nil
}

// #endregion validate

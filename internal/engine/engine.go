package engine

import (
	"log"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/completion"
	"github.com/danielpatrickdp/flux-engine/internal/composer"
	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/debt"
	"github.com/danielpatrickdp/flux-engine/internal/history"
	"github.com/danielpatrickdp/flux-engine/internal/readiness"
)

// #region engine-struct

// Engine is the top-level coordinator for readiness classification, debt
// resolution, and session composition. It holds only the immutable
// config, so one Engine is safe for concurrent use; every call is a pure
// function of its arguments plus the supplied instant.
type Engine struct {
	cfg *config.Config
}

// New creates an engine over a finalized config.
func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's shared configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// #endregion engine-struct

// #region classify-and-compose

// ClassifyAndCompose turns one check-in plus the current history snapshot
// into a fully composed session plan. The anchor is always resolved, even
// on recovery days, so completion knows which pattern's debt to reset.
func (e *Engine) ClassifyAndCompose(in readiness.Input, snap history.Snapshot, levels history.Levels, now time.Time) (composer.Plan, error) {
	state, archetype := readiness.Classify(in, e.cfg.Logic.Thresholds)

	ranked := debt.Rank(snap, e.cfg.Logic.Patterns.Main, e.cfg.Logic.PatternPriority, now)
	anchor, err := debt.Anchor(ranked, e.cfg.Selections, state)
	if err != nil {
		return composer.Plan{}, err
	}

	log.Printf("[ENGINE] classify: pain=%d energy=%d → state=%s archetype=%s anchor=%s",
		in.Pain, in.Energy, state, archetype, anchor)

	return composer.Compose(e.cfg, state, archetype, anchor, snap, levels, now)
}

// #endregion classify-and-compose

// #region apply-completion

// ApplyCompletion computes the post-session snapshots for the caller to
// persist. Pure and side-effect free; see completion.Apply for the rules.
func (e *Engine) ApplyCompletion(snap history.Snapshot, levels history.Levels, facts completion.Facts, now time.Time) (history.Snapshot, history.Levels) {
	newSnap, newLevels := completion.Apply(snap, levels, facts, now, e.cfg.Conditioning.MaxLevel)

	log.Printf("[ENGINE] complete: anchor=%s protocol=%s → level=%d",
		facts.Anchor, facts.Protocol, newLevels.Level(facts.Protocol))

	return newSnap, newLevels
}

// #endregion apply-completion

package conditioning

import (
	"errors"
	"testing"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/history"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize default config: %v", err)
	}
	return cfg
}

func TestParams(t *testing.T) {
	cfg := testConfig(t)

	t.Run("defined-level", func(t *testing.T) {
		pl, eff, err := Params(cfg, config.ProtocolSIT, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eff != 3 {
			t.Errorf("effective level: got %d, want 3", eff)
		}
		if pl.WorkSeconds <= 0 || pl.Rounds <= 0 {
			t.Errorf("incomplete tuple: %+v", pl)
		}
	})

	t.Run("level-above-table-clamps", func(t *testing.T) {
		want, _, err := Params(cfg, config.ProtocolHIIT, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pl, eff, err := Params(cfg, config.ProtocolHIIT, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eff != 7 {
			t.Errorf("effective level: got %d, want 7", eff)
		}
		if pl != want {
			t.Errorf("clamped tuple: got %+v, want %+v", pl, want)
		}
	})

	t.Run("ss-has-single-level", func(t *testing.T) {
		_, eff, err := Params(cfg, config.ProtocolSS, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eff != 1 {
			t.Errorf("effective level: got %d, want 1", eff)
		}
	})

	t.Run("unknown-protocol", func(t *testing.T) {
		_, _, err := Params(cfg, config.Protocol("TEMPO"), 1)
		var cfgErr *config.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("got %v, want *config.ConfigError", err)
		}
	})

	t.Run("gap-below-max-is-error", func(t *testing.T) {
		_, _, err := Params(cfg, config.ProtocolSIT, 0)
		var cfgErr *config.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("got %v, want *config.ConfigError", err)
		}
	})
}

func TestPick(t *testing.T) {
	cfg := testConfig(t) // order: SIT, HIIT

	tests := []struct {
		name   string
		levels history.Levels
		want   config.Protocol
	}{
		{"fresh-levels-tie-first-in-order", history.Levels{}, config.ProtocolSIT},
		{"lowest-level-wins", history.Levels{config.ProtocolSIT: 4, config.ProtocolHIIT: 2}, config.ProtocolHIIT},
		{"tie-first-in-order", history.Levels{config.ProtocolSIT: 3, config.ProtocolHIIT: 3}, config.ProtocolSIT},
		{"absent-reads-as-one", history.Levels{config.ProtocolSIT: 2}, config.ProtocolHIIT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(cfg, tt.levels); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		levels    history.Levels
		completed config.Protocol
		want      int
	}{
		{"bump-by-one", history.Levels{config.ProtocolHIIT: 3}, config.ProtocolHIIT, 4},
		{"absent-starts-at-one", history.Levels{}, config.ProtocolSIT, 2},
		{"capped-at-max", history.Levels{config.ProtocolSIT: 7}, config.ProtocolSIT, 7},
		{"ss-pinned", history.Levels{config.ProtocolSS: 1}, config.ProtocolSS, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.levels, tt.completed, 7)
			if got.Level(tt.completed) != tt.want {
				t.Errorf("got level %d, want %d", got.Level(tt.completed), tt.want)
			}
		})
	}

	t.Run("input-not-mutated", func(t *testing.T) {
		in := history.Levels{config.ProtocolHIIT: 3}
		Advance(in, config.ProtocolHIIT, 7)
		if in[config.ProtocolHIIT] != 3 {
			t.Errorf("input mutated: got %d, want 3", in[config.ProtocolHIIT])
		}
	})

	t.Run("empty-protocol-no-op", func(t *testing.T) {
		got := Advance(history.Levels{config.ProtocolSIT: 2}, "", 7)
		if len(got) != 1 || got[config.ProtocolSIT] != 2 {
			t.Errorf("unexpected change: %v", got)
		}
	})
}

package config

import (
	"errors"
	"fmt"
)

// #region config-error

// ConfigError reports a missing or malformed entry for a combination the
// engine needed at plan-generation time. It is an operator-facing defect,
// not a user error; plan generation aborts rather than omitting the slot.
type ConfigError struct {
	Section string // "selections", "conditioning", "sessions", "logic"
	Key     string // e.g. "SQUAT/MAIN/GREEN" or "HIIT/3"
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s: %s", e.Section, e.Key, e.Reason)
}

// #endregion config-error

// #region exhaustion

// ErrPatternsExhausted means every main-pattern candidate resolved to the
// Skip sentinel for the current state. Reachable only with a configuration
// that leaves no always-eligible pattern; fail the whole generation.
var ErrPatternsExhausted = errors.New("all main patterns are SKIP for the current state")

// #endregion exhaustion

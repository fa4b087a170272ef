package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region decision-entry
// DecisionEntry is a single row in the decision_log table: one engine
// decision (plan generation or completion) with the exact inputs that
// produced it, serialized for deterministic replay.
type DecisionEntry struct {
	SessionID   string
	TriggerType string // "generate" | "complete"
	InputsJSON  string
	Decision    string // "plan" | "config_error" | "exhausted" | "completed"
	Reason      string
	CreatedAt   time.Time
}

// #endregion decision-entry

// #region log-decision
// LogDecision writes a decision entry to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (session_id, trigger_type, inputs_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.SessionID),
		entry.TriggerType,
		nullIfEmpty(entry.InputsJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

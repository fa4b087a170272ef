package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS pattern_history (
	pattern       TEXT PRIMARY KEY,
	last_trained  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS conditioning_progress (
	protocol      TEXT PRIMARY KEY,
	level         INTEGER NOT NULL CHECK (level >= 1)
);

CREATE TABLE IF NOT EXISTS user_state (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	last_push_plane TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS session_log (
	session_id     TEXT PRIMARY KEY,
	state          TEXT NOT NULL,
	archetype      TEXT NOT NULL,
	anchor_pattern TEXT NOT NULL,
	plan_json      TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	completed_at   TEXT
);

CREATE TABLE IF NOT EXISTS decision_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT,
	trigger_type TEXT NOT NULL,
	inputs_json  TEXT,
	decision     TEXT NOT NULL,
	reason       TEXT,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists the single-user training history in SQLite. The engine
// itself never touches it; callers read a snapshot, run the engine, and
// write the result back through one transaction here.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region load-snapshot
// LoadSnapshot reads the current history snapshot and conditioning levels.
func (s *Store) LoadSnapshot() (Snapshot, Levels, error) {
	snap := NewSnapshot()
	levels := make(Levels)

	rows, err := s.db.Query(`SELECT pattern, last_trained FROM pattern_history`)
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("query pattern history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pattern, stamp string
		if err := rows.Scan(&pattern, &stamp); err != nil {
			return Snapshot{}, nil, fmt.Errorf("scan pattern history: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return Snapshot{}, nil, fmt.Errorf("parse last_trained for %s: %w", pattern, err)
		}
		snap.LastTrained[config.Pattern(pattern)] = t
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, nil, fmt.Errorf("pattern history rows: %w", err)
	}

	lrows, err := s.db.Query(`SELECT protocol, level FROM conditioning_progress`)
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("query conditioning progress: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var protocol string
		var level int
		if err := lrows.Scan(&protocol, &level); err != nil {
			return Snapshot{}, nil, fmt.Errorf("scan conditioning progress: %w", err)
		}
		levels[config.Protocol(protocol)] = level
	}
	if err := lrows.Err(); err != nil {
		return Snapshot{}, nil, fmt.Errorf("conditioning progress rows: %w", err)
	}

	var plane string
	err = s.db.QueryRow(`SELECT last_push_plane FROM user_state WHERE id = 1`).Scan(&plane)
	if err != nil && err != sql.ErrNoRows {
		return Snapshot{}, nil, fmt.Errorf("query user state: %w", err)
	}
	snap.LastPushPlane = config.Plane(plane)

	return snap, levels, nil
}

// #endregion load-snapshot

// #region save-snapshot
// SaveSnapshot upserts the full snapshot and levels in one transaction,
// so a concurrent reader never observes a half-applied completion.
func (s *Store) SaveSnapshot(snap Snapshot, levels Levels) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for pattern, t := range snap.LastTrained {
		_, err := tx.Exec(
			`INSERT INTO pattern_history (pattern, last_trained) VALUES (?, ?)
			 ON CONFLICT(pattern) DO UPDATE SET last_trained = excluded.last_trained`,
			string(pattern), t.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("upsert pattern %s: %w", pattern, err)
		}
	}

	for protocol, level := range levels {
		_, err := tx.Exec(
			`INSERT INTO conditioning_progress (protocol, level) VALUES (?, ?)
			 ON CONFLICT(protocol) DO UPDATE SET level = excluded.level`,
			string(protocol), level,
		)
		if err != nil {
			return fmt.Errorf("upsert protocol %s: %w", protocol, err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO user_state (id, last_push_plane) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET last_push_plane = excluded.last_push_plane`,
		string(snap.LastPushPlane),
	)
	if err != nil {
		return fmt.Errorf("upsert user state: %w", err)
	}

	return tx.Commit()
}

// #endregion save-snapshot

// #region record-session
// RecordSession inserts a generated plan into session_log and returns its id.
func (s *Store) RecordSession(state config.State, archetype config.Archetype, anchor config.Pattern, planJSON string, createdAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO session_log (session_id, state, archetype, anchor_pattern, plan_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, string(state), string(archetype), string(anchor), planJSON,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// #endregion record-session

// #region mark-completed
// MarkCompleted stamps a session's completion time.
func (s *Store) MarkCompleted(sessionID string, at time.Time) error {
	res, err := s.db.Exec(
		`UPDATE session_log SET completed_at = ? WHERE session_id = ?`,
		at.UTC().Format(time.RFC3339Nano), sessionID,
	)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

// #endregion mark-completed

// #region recent-sessions
// RecentSessions returns the most recent session records.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, state, archetype, anchor_pattern, plan_json, created_at, completed_at
		 FROM session_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var state, archetype, anchor, createdStr string
		var completedStr sql.NullString
		if err := rows.Scan(&rec.SessionID, &state, &archetype, &anchor, &rec.PlanJSON, &createdStr, &completedStr); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.State = config.State(state)
		rec.Archetype = config.Archetype(archetype)
		rec.AnchorPattern = config.Pattern(anchor)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if completedStr.Valid {
			t, err := time.Parse(time.RFC3339Nano, completedStr.String)
			if err == nil {
				rec.CompletedAt = &t
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion recent-sessions

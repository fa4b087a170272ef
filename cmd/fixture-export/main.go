package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/history"
	"github.com/danielpatrickdp/flux-engine/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to flux.db")
	last := flag.Int("last", 7, "number of most recent check-ins to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/flux.db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

// checkinRow joins a generate decision with its session outcome.
type checkinRow struct {
	SessionID string
	Pain      int
	Energy    int
	State     string
	Anchor    string
	Protocol  string
	Main      string
	Completed bool
	CreatedAt time.Time
}

// readinessInputs mirrors the JSON stored in decision_log.inputs_json
// for generate triggers.
type readinessInputs struct {
	Pain   int `json:"pain"`
	Energy int `json:"energy"`
}

// planShape extracts only what the fixture needs from plan_json.
type planShape struct {
	Blocks []struct {
		Type      string `json:"type"`
		Exercises []struct {
			Name           string `json:"name"`
			Pattern        string `json:"pattern,omitempty"`
			IsConditioning bool   `json:"is_conditioning,omitempty"`
		} `json:"exercises"`
	} `json:"blocks"`
}

func run(dbPath string, last int, outPath string) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rows, err := store.DB().Query(
		`SELECT d.session_id, d.inputs_json, s.state, s.anchor_pattern, s.plan_json,
		        s.completed_at, s.created_at
		 FROM (
			SELECT session_id, inputs_json, created_at FROM decision_log
			WHERE trigger_type = 'generate' AND decision = 'plan' AND session_id IS NOT NULL
			ORDER BY created_at DESC LIMIT ?
		 ) d
		 JOIN session_log s ON s.session_id = d.session_id
		 ORDER BY d.created_at ASC`, last,
	)
	if err != nil {
		return fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var checkins []checkinRow
	for rows.Next() {
		var r checkinRow
		var inputsJSON sql.NullString
		var planJSON, createdStr string
		var completedStr sql.NullString
		if err := rows.Scan(&r.SessionID, &inputsJSON, &r.State, &r.Anchor, &planJSON, &completedStr, &createdStr); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if !inputsJSON.Valid {
			continue
		}
		var in readinessInputs
		if err := json.Unmarshal([]byte(inputsJSON.String), &in); err != nil {
			continue
		}
		r.Pain, r.Energy = in.Pain, in.Energy
		r.Completed = completedStr.Valid
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return fmt.Errorf("parse created_at: %w", err)
		}
		r.Main, r.Protocol = planSummary(planJSON)
		checkins = append(checkins, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}
	if len(checkins) == 0 {
		return fmt.Errorf("no generate decisions found in last %d entries", last)
	}

	fixture, err := buildFixture(store, checkins)
	if err != nil {
		return err
	}
	if err := replay.SaveFixture(outPath, fixture); err != nil {
		return err
	}

	fmt.Printf("exported %d check-ins to %s\n", len(checkins), outPath)
	return nil
}

// planSummary pulls the main lift and conditioning protocol out of a
// recorded plan.
func planSummary(planJSON string) (main, protocol string) {
	var p planShape
	if err := json.Unmarshal([]byte(planJSON), &p); err != nil {
		return "", ""
	}
	for _, b := range p.Blocks {
		for _, ex := range b.Exercises {
			if b.Type == "MAIN" && main == "" {
				main = ex.Name
			}
			if ex.IsConditioning && len(ex.Pattern) > len("CONDITIONING:") {
				protocol = ex.Pattern[len("CONDITIONING:"):]
			}
		}
	}
	return main, protocol
}

// #endregion extract

// #region build-fixture

// buildFixture rewinds the current snapshot to the start of the export
// window. The rewind is approximate: a pattern stamped during the window
// has lost its earlier timestamp, so it exports as never-trained.
func buildFixture(store *history.Store, checkins []checkinRow) (*replay.Fixture, error) {
	base := checkins[0].CreatedAt

	snap, levels, err := store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	daysSince := make(map[string]int)
	for pattern, trained := range snap.LastTrained {
		if trained.Before(base) {
			daysSince[string(pattern)] = int(base.Sub(trained).Hours() / 24)
		}
	}

	// Rewind levels by the completions inside the window.
	startLevels := make(map[string]int)
	for protocol, level := range levels {
		startLevels[string(protocol)] = level
	}
	for _, c := range checkins {
		if !c.Completed || c.Protocol == "" || c.Protocol == "SS" {
			continue
		}
		if startLevels[c.Protocol] > 1 {
			startLevels[c.Protocol]--
		}
	}

	f := &replay.Fixture{
		Description: fmt.Sprintf("exported from %s: %d check-ins from %s",
			time.Now().UTC().Format("2006-01-02"), len(checkins), base.Format("2006-01-02")),
		Start: replay.FixtureStart{
			BaseTime:  base.Format(time.RFC3339),
			DaysSince: daysSince,
			Levels:    startLevels,
		},
	}

	for _, c := range checkins {
		day := int(c.CreatedAt.Sub(base).Hours() / 24)
		f.Checkins = append(f.Checkins, replay.FixtureCheckin{
			Day:      day,
			Pain:     c.Pain,
			Energy:   c.Energy,
			Complete: c.Completed,
		})
		f.Expected = append(f.Expected, replay.FixtureExpectation{
			Day:      day,
			State:    c.State,
			Anchor:   c.Anchor,
			Main:     c.Main,
			Protocol: c.Protocol,
		})
	}

	return f, nil
}

// #endregion build-fixture

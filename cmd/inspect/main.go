package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/history"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to flux.db")
	last := flag.Int("last", 10, "show N most recent sessions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of tables")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/flux.db [--last N] [--json]")
		os.Exit(2)
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

type dump struct {
	Patterns []patternRow   `json:"pattern_history"`
	Levels   map[string]int `json:"conditioning_levels"`
	Plane    string         `json:"last_push_plane"`
	Sessions []sessionRow   `json:"sessions"`
}

type patternRow struct {
	Pattern     string `json:"pattern"`
	LastTrained string `json:"last_trained"`
	DaysAgo     int    `json:"days_ago"`
}

type sessionRow struct {
	SessionID   string `json:"session_id"`
	State       string `json:"state"`
	Archetype   string `json:"archetype"`
	Anchor      string `json:"anchor"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func run(store *history.Store, last int, jsonOut bool) error {
	snap, levels, err := store.LoadSnapshot()
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(last)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	d := dump{
		Levels: make(map[string]int, len(levels)),
		Plane:  string(snap.LastPushPlane),
	}
	for pattern, t := range snap.LastTrained {
		d.Patterns = append(d.Patterns, patternRow{
			Pattern:     string(pattern),
			LastTrained: t.Format(time.RFC3339),
			DaysAgo:     int(now.Sub(t).Hours() / 24),
		})
	}
	sort.Slice(d.Patterns, func(i, j int) bool {
		return d.Patterns[i].DaysAgo > d.Patterns[j].DaysAgo
	})
	for protocol, level := range levels {
		d.Levels[string(protocol)] = level
	}
	for _, s := range sessions {
		row := sessionRow{
			SessionID: s.SessionID,
			State:     string(s.State),
			Archetype: string(s.Archetype),
			Anchor:    string(s.AnchorPattern),
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		}
		if s.CompletedAt != nil {
			row.CompletedAt = s.CompletedAt.Format(time.RFC3339)
		}
		d.Sessions = append(d.Sessions, row)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	printTables(d)
	return nil
}

// #endregion run

// #region output

func printTables(d dump) {
	fmt.Println("Pattern debt (oldest first):")
	if len(d.Patterns) == 0 {
		fmt.Println("  (no patterns trained yet)")
	}
	for _, p := range d.Patterns {
		fmt.Printf("  %-16s %4d days ago  (%s)\n", p.Pattern, p.DaysAgo, p.LastTrained)
	}

	fmt.Println("\nConditioning levels:")
	protocols := make([]string, 0, len(d.Levels))
	for p := range d.Levels {
		protocols = append(protocols, p)
	}
	sort.Strings(protocols)
	if len(protocols) == 0 {
		fmt.Println("  (all protocols at level 1)")
	}
	for _, p := range protocols {
		fmt.Printf("  %-6s level %d\n", p, d.Levels[p])
	}

	if d.Plane != "" {
		fmt.Printf("\nLast push plane: %s\n", d.Plane)
	}

	fmt.Printf("\nRecent sessions:\n")
	fmt.Printf("  %-36s  %-7s  %-12s  %-6s  %-20s  %s\n", "Session", "State", "Archetype", "Anchor", "Created", "Completed")
	for _, s := range d.Sessions {
		completed := "-"
		if s.CompletedAt != "" {
			completed = s.CompletedAt
		}
		fmt.Printf("  %-36s  %-7s  %-12s  %-6s  %-20s  %s\n",
			s.SessionID, s.State, s.Archetype, s.Anchor, s.CreatedAt, completed)
	}
}

// #endregion output

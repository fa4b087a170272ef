package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	configDir := flag.String("config", "config", "config directory")
	verbose := flag.Bool("verbose", false, "print every replayed day, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--config dir] [--verbose]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *configDir, *verbose))
}

// #endregion main

// #region run

func run(fixturePath, configDir string, verbose bool) int {
	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}

	fixture, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Run(cfg, fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if fixture.Description != "" {
		fmt.Printf("Fixture: %s\n\n", fixture.Description)
	}

	if verbose {
		printResults(results)
	}

	for _, m := range summary.Mismatches {
		fmt.Printf("DIFF day %d %s: expected %q, got %q\n", m.Day, m.Field, m.Want, m.Got)
	}

	fmt.Printf("\nSummary: %d check-ins, %d mismatches\n", summary.TotalCheckins, len(summary.Mismatches))
	if !summary.Passed() {
		return 1
	}
	return 0
}

func printResults(results []replay.Result) {
	fmt.Printf("%-5s| %-7s| %-6s| %-25s| %s\n", "Day", "State", "Anchor", "Main", "Protocol")
	fmt.Printf("%-5s+%-8s+%-7s+%-26s+%s\n", "-----", "--------", "-------", "--------------------------", "---------")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-5d| error: %v\n", r.Day, r.Err)
			continue
		}
		fmt.Printf("%-5d| %-7s| %-6s| %-25s| %s\n", r.Day, r.State, r.Anchor, r.Main, r.Protocol)
	}
	fmt.Println()
}

// #endregion run

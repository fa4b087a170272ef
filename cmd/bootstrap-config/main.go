package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/flux-engine/internal/config"
)

// #region main

// bootstrap-config writes the built-in defaults out as the five config
// files, giving a new deployment an editable starting point.
func main() {
	dir := flag.String("dir", "config", "directory to write config files into")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	if err := run(*dir, *force); err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
}

func run(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	cfg := config.Default()
	files := []struct {
		name    string
		section interface{}
	}{
		{"library.yaml", cfg.Library},
		{"logic.yaml", cfg.Logic},
		{"sessions.yaml", cfg.Sessions},
		{"selections.yaml", cfg.Selections},
		{"conditioning.yaml", cfg.Conditioning},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("skip %s (exists; use --force to overwrite)\n", path)
				continue
			}
		}
		data, err := yaml.Marshal(f.section)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	// Round-trip sanity: the files just written must load back cleanly.
	if _, err := config.Load(dir); err != nil {
		return fmt.Errorf("written config does not load: %w", err)
	}
	return nil
}

// #endregion main

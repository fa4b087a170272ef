package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danielpatrickdp/flux-engine/internal/completion"
	"github.com/danielpatrickdp/flux-engine/internal/composer"
	"github.com/danielpatrickdp/flux-engine/internal/config"
	"github.com/danielpatrickdp/flux-engine/internal/engine"
	"github.com/danielpatrickdp/flux-engine/internal/history"
	"github.com/danielpatrickdp/flux-engine/internal/logging"
	"github.com/danielpatrickdp/flux-engine/internal/readiness"
)

// #region main
func main() {
	dbPath := envOr("FLUX_DB", "flux.db")
	configDir := envOr("FLUX_CONFIG", "config")

	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatalf("failed to load config from %s: %v", configDir, err)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	eng := engine.New(cfg)

	fmt.Println("Flux Session Engine ready.")
	fmt.Printf("  DB: %s | Config: %s\n", dbPath, configDir)
	fmt.Println("Commands: generate <pain> <energy> | complete | quit")

	scanner := bufio.NewScanner(os.Stdin)

	// Pending session awaiting completion.
	var pendingID string
	var pendingPlan composer.Plan

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "generate":
			if len(fields) != 3 {
				fmt.Println("usage: generate <pain 0-10> <energy 0-10>")
				continue
			}
			pain, err1 := strconv.Atoi(fields[1])
			energy, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				fmt.Println("usage: generate <pain 0-10> <energy 0-10>")
				continue
			}
			id, plan, err := generate(eng, store, pain, energy)
			if err != nil {
				log.Printf("generate error: %v", err)
				continue
			}
			pendingID, pendingPlan = id, plan

		case "complete":
			if pendingID == "" {
				fmt.Println("no pending session; run generate first")
				continue
			}
			if err := complete(eng, store, pendingID, pendingPlan); err != nil {
				log.Printf("complete error: %v", err)
				continue
			}
			pendingID, pendingPlan = "", composer.Plan{}

		default:
			fmt.Println("unknown command; try: generate <pain> <energy> | complete | quit")
		}
	}
}

// #endregion main

// #region generate

func generate(eng *engine.Engine, store *history.Store, pain, energy int) (string, composer.Plan, error) {
	now := time.Now().UTC()
	in := readiness.Input{Pain: pain, Energy: energy}

	snap, levels, err := store.LoadSnapshot()
	if err != nil {
		return "", composer.Plan{}, fmt.Errorf("load snapshot: %w", err)
	}

	plan, err := eng.ClassifyAndCompose(in, snap, levels, now)
	if err != nil {
		inputsJSON, _ := json.Marshal(in)
		logErr := logging.LogDecision(store.DB(), logging.DecisionEntry{
			TriggerType: "generate",
			InputsJSON:  string(inputsJSON),
			Decision:    "config_error",
			Reason:      err.Error(),
			CreatedAt:   now,
		})
		if logErr != nil {
			log.Printf("logging error: %v", logErr)
		}
		return "", composer.Plan{}, err
	}

	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", composer.Plan{}, fmt.Errorf("marshal plan: %w", err)
	}

	id, err := store.RecordSession(plan.State, plan.Archetype, plan.AnchorPattern, string(planJSON), now)
	if err != nil {
		return "", composer.Plan{}, fmt.Errorf("record session: %w", err)
	}

	inputsJSON, _ := json.Marshal(in)
	err = logging.LogDecision(store.DB(), logging.DecisionEntry{
		SessionID:   id,
		TriggerType: "generate",
		InputsJSON:  string(inputsJSON),
		Decision:    "plan",
		CreatedAt:   now,
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}

	fmt.Printf("\n%s\n\n", planJSON)
	fmt.Printf("[%s] state=%s archetype=%s anchor=%s\n", id, plan.State, plan.Archetype, plan.AnchorPattern)
	return id, plan, nil
}

// #endregion generate

// #region complete

func complete(eng *engine.Engine, store *history.Store, sessionID string, plan composer.Plan) error {
	now := time.Now().UTC()

	snap, levels, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	facts := completion.Facts{
		Anchor:    plan.AnchorPattern,
		Protocol:  plan.ConditioningProtocol(),
		PushPlane: plan.PushPlane(),
	}
	newSnap, newLevels := eng.ApplyCompletion(snap, levels, facts, now)

	if err := store.SaveSnapshot(newSnap, newLevels); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := store.MarkCompleted(sessionID, now); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	factsJSON, _ := json.Marshal(facts)
	err = logging.LogDecision(store.DB(), logging.DecisionEntry{
		SessionID:   sessionID,
		TriggerType: "complete",
		InputsJSON:  string(factsJSON),
		Decision:    "completed",
		CreatedAt:   now,
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}

	fmt.Printf("[%s] completed; %s level now %d\n",
		sessionID, facts.Protocol, newLevels.Level(facts.Protocol))
	return nil
}

// #endregion complete

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

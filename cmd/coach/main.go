package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ellenbrook/stillpoint/go-core/internal/config"
	"github.com/ellenbrook/stillpoint/go-core/internal/detect"
	"github.com/ellenbrook/stillpoint/go-core/internal/diag"
	"github.com/ellenbrook/stillpoint/go-core/internal/infer"
	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
	"github.com/ellenbrook/stillpoint/go-core/internal/report"
	"github.com/ellenbrook/stillpoint/go-core/internal/respond"
)

// #region main
func main() {
	cfgPath := envOr("STILLPOINT_CONFIG", "stillpoint.yaml")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	registry, err := infer.NewRegistryWithDB(db)
	if err != nil {
		log.Fatalf("failed to init artifact registry: %v", err)
	}
	recorder, err := diag.NewRecorder(db)
	if err != nil {
		log.Fatalf("failed to init diagnostics: %v", err)
	}

	orch := infer.NewOrchestrator(infer.OrchestratorConfig{
		Candidates: infer.BuildCascades(cfg.Runtime.BaseURL, cfg.Runtime.MoodModels, cfg.Runtime.CoachModels),
		Registry:   registry,
		LoadWait:   time.Duration(cfg.Runtime.LoadWaitSeconds) * time.Second,
		RuntimeURL: cfg.Runtime.BaseURL,
	})

	synth := report.NewSynthesizer(orch, recorder, report.PromptConfig{
		Protocols:                      cfg.Protocols,
		AllowStructuredRecommendations: cfg.AllowStructuredRecommendations,
	})

	fmt.Println("Stillpoint coach ready.")
	fmt.Printf("  Config: %s | DB: %s | Runtime: %s\n", cfgPath, cfg.DBPath, cfg.Runtime.BaseURL)
	fmt.Println("Type journal text to check it, or a command:")
	fmt.Println("  :report <entries.json>   synthesize a report from a JSON entry file")
	fmt.Println("  :status                  show model slot status")
	fmt.Println("  :reload                  force-reload the coach slot")
	fmt.Println("  :quit")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == "quit" || line == "exit" {
			break
		}

		switch {
		case strings.HasPrefix(line, ":report"):
			runReport(synth, cfg, strings.TrimSpace(strings.TrimPrefix(line, ":report")))
		case line == ":status":
			printStatus(orch)
		case line == ":reload":
			if err := orch.ForceReload(infer.SlotCounselingCoach); err != nil {
				log.Printf("reload error: %v", err)
			} else {
				fmt.Println("coach slot reset; next use reloads from scratch")
			}
		default:
			checkText(line, cfg)
		}
	}
}

// #endregion main

// #region commands

// checkText runs detection over one line and prints the safety response
// when anything surfaces.
func checkText(text string, cfg config.Config) {
	res := detect.Detect(text)
	fmt.Printf("[DETECT] crisis=%v severity=%s action=%s\n", res.IsCrisis, res.Severity, res.Action)
	if res.IsCrisis {
		fmt.Println()
		fmt.Println(respond.Select(res, cfg.Contact))
		fmt.Println()
	}
}

// runReport synthesizes a report from a JSON file holding a log-entry array.
func runReport(synth *report.Synthesizer, cfg config.Config, path string) {
	if path == "" {
		fmt.Println("usage: :report <entries.json>")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read entries: %v", err)
		return
	}
	var entries []journal.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("parse entries: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	rep := synth.Synthesize(ctx, report.Input{
		Entries: entries,
		Contact: cfg.Contact,
	})
	cancel()

	fmt.Printf("\n%s\n\n", rep.Text)
	fmt.Printf("[%s] via=%s entries=%d\n", rep.ID, rep.GeneratedVia, len(entries))
}

func printStatus(orch *infer.Orchestrator) {
	for _, slot := range []infer.SlotID{infer.SlotMoodTracker, infer.SlotCounselingCoach} {
		st := orch.Status(slot)
		fmt.Printf("  %-18s ready=%v loading=%v\n", slot, st.Ready, st.Loading)
	}
}

// #endregion commands

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

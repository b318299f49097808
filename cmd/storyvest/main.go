package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storyvest/storyvest/internal/config"
	"github.com/storyvest/storyvest/internal/logger"
	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/scenario/llm"
	"github.com/storyvest/storyvest/internal/sim"
	"github.com/storyvest/storyvest/internal/storage"
	"github.com/storyvest/storyvest/internal/strategy"
	"github.com/storyvest/storyvest/tui"
)

func main() {
	var (
		mode         = flag.String("mode", "play", "play (interactive TUI), auto (one strategy) or batch (all strategies)")
		scenarioFile = flag.String("scenario", "", "scenario JSON file to play; empty generates or uses the sample")
		theme        = flag.String("theme", "three_little_pigs", "story theme for generated scenarios")
		strategyName = flag.String("strategy", "random", "strategy for -mode auto")
		strategyList = flag.String("strategies", "", "comma-separated strategies for -mode batch (empty runs all)")
		seed         = flag.Int64("seed", 0, "random seed (0 uses the clock)")
		capital      = flag.Float64("capital", 0, "starting coins (0 uses the configured default)")
		save         = flag.Bool("save", false, "save the run summary to the data directory")
	)
	flag.Parse()

	appCfg := config.Load()
	logger.Setup(appCfg.LogFile, 10, 3)

	store, err := storage.New(appCfg.DataDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	simCfg := sim.Config{InitialCapital: appCfg.InitialCapital, Seed: *seed}
	if *capital > 0 {
		simCfg.InitialCapital = *capital
	}

	switch *mode {
	case "play":
		runInteractive(appCfg, simCfg, store, *scenarioFile, *save)
	case "auto":
		scn := loadScenario(appCfg, store, *scenarioFile, *theme)
		runAuto(simCfg, store, scn, *strategyName, *save)
	case "batch":
		scn := loadScenario(appCfg, store, *scenarioFile, *theme)
		runBatch(simCfg, store, scn, *strategyList, *save)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

// loadScenario resolves the scenario for the automated modes: an explicit
// file wins, then generation when an API key is configured, then the
// built-in sample.
func loadScenario(appCfg config.AppConfig, store *storage.Store, file, theme string) *scenario.Scenario {
	if file != "" {
		scn, err := store.LoadScenario(file)
		if err != nil {
			log.Fatalf("load scenario: %v", err)
		}
		return scn
	}

	if provider := newProvider(appCfg); provider != nil {
		scn, err := provider.Generate(context.Background(), theme)
		if err == nil {
			if _, err := store.SaveScenario(scn, storage.ScenarioFilename(theme)); err != nil {
				log.Printf("save scenario: %v", err)
			}
			return scn
		}
		log.Printf("generation failed, using the sample scenario: %v", err)
	}

	scn := scenario.Sample()
	scn.Theme = theme
	return scn
}

func newProvider(appCfg config.AppConfig) *llm.Provider {
	if appCfg.GeminiAPIKey == "" {
		return nil
	}
	provider, err := llm.NewProvider(llm.Config{
		APIKey:      appCfg.GeminiAPIKey,
		Model:       appCfg.ModelName,
		Temperature: appCfg.Temperature,
		MaxTokens:   appCfg.MaxTokens,
	})
	if err != nil {
		log.Printf("scenario provider unavailable: %v", err)
		return nil
	}
	return provider
}

func runInteractive(appCfg config.AppConfig, simCfg sim.Config, store *storage.Store, file string, save bool) {
	var generate tui.GenerateFunc
	if file != "" {
		generate = func(_ context.Context, themeID string) (*scenario.Scenario, error) {
			scn, err := store.LoadScenario(file)
			if err != nil {
				return nil, err
			}
			scn.Theme = themeID
			return scn, nil
		}
	} else if provider := newProvider(appCfg); provider != nil {
		generate = provider.Generate
	}

	model := tui.NewModel(generate, simCfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatalf("tui: %v", err)
	}

	m, ok := final.(*tui.Model)
	if !ok || m.Summary() == nil {
		return
	}
	printSummary(m.Summary())
	if save {
		saveSummary(store, m.Summary())
		if _, err := store.SaveProfile(m.Profile()); err != nil {
			log.Printf("save profile: %v", err)
		}
	}
}

func runAuto(simCfg sim.Config, store *storage.Store, scn *scenario.Scenario, name string, save bool) {
	runner := sim.NewRunner(simCfg)
	summary, err := runner.Run(scn, strategy.ForName(name))
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}
	printSummary(summary)
	if save {
		saveSummary(store, summary)
	}
}

func runBatch(simCfg sim.Config, store *storage.Store, scn *scenario.Scenario, list string, save bool) {
	names := strategy.Names()
	if list != "" {
		names = nil
		for _, n := range strings.Split(list, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}

	runner := sim.NewRunner(simCfg)
	batch := runner.RunBatch(scn, names)

	printJSON(batch)
	if save {
		for name, summary := range batch.Results {
			if summary == nil {
				continue
			}
			if _, err := store.SaveSummary(summary, storage.SummaryFilename(name)); err != nil {
				log.Printf("save summary: %v", err)
			}
		}
	}
}

func printSummary(summary *sim.Summary) {
	printJSON(summary)
}

func saveSummary(store *storage.Store, summary *sim.Summary) {
	if _, err := store.SaveSummary(summary, storage.SummaryFilename(summary.Strategy)); err != nil {
		log.Printf("save summary: %v", err)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

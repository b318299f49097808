// Package api is the thin HTTP adapter over the game's two core entry
// points (run a simulation, fetch/generate a scenario). It translates
// requests, never holding simulation state of its own.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/scenario/llm"
	"github.com/storyvest/storyvest/internal/sim"
	"github.com/storyvest/storyvest/internal/storage"
	"github.com/storyvest/storyvest/internal/strategy"
)

// Generator produces a scenario for a theme. *llm.Provider implements it;
// tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, themeID string) (*scenario.Scenario, error)
}

// Service serves the game API. gen may be nil (offline mode), in which case
// /scenario/generate answers with the built-in sample scenario.
type Service struct {
	cfg   Config
	store *storage.Store
	gen   Generator
	mux   *http.ServeMux
}

// NewService wires the routes.
func NewService(cfg Config, store *storage.Store, gen Generator) *Service {
	s := &Service{
		cfg:   cfg.withDefaults(),
		store: store,
		gen:   gen,
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /scenario/generate", s.handleGenerate)
	s.mux.HandleFunc("GET /scenario/{id}", s.handleGetScenario)
	s.mux.HandleFunc("GET /scenarios", s.handleListScenarios)
	s.mux.HandleFunc("GET /scenario-types", s.handleScenarioTypes)
	s.mux.HandleFunc("POST /simulation/run", s.handleRunSimulation)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type generateRequest struct {
	ScenarioType string `json:"scenario_type"`
}

type generateResponse struct {
	ScenarioID   string          `json:"scenario_id"`
	ScenarioType string          `json:"scenario_type"`
	Data         []scenario.Turn `json:"data"`
}

func (s *Service) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{ScenarioType: "magic_kingdom"}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	theme := strings.ToLower(strings.TrimSpace(req.ScenarioType))
	if !llm.KnownTheme(theme) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown scenario type %q", theme))
		return
	}

	var scn *scenario.Scenario
	if s.gen != nil {
		var err error
		scn, err = s.gen.Generate(r.Context(), theme)
		if err != nil {
			log.Printf("scenario generation failed, serving sample: %v", err)
		}
	}
	if scn == nil {
		scn = scenario.Sample()
		scn.Theme = theme
	}

	id := fmt.Sprintf("game_scenario_%s_%s_%s.json",
		theme, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	if _, err := s.store.SaveScenario(scn, id); err != nil {
		log.Printf("save scenario: %v", err)
		writeError(w, http.StatusInternalServerError, "could not persist scenario")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		ScenarioID:   id,
		ScenarioType: theme,
		Data:         scn.Turns,
	})
}

func (s *Service) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id, err := cleanScenarioID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scn, err := s.store.LoadScenario(id)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("scenario %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenario_id": id, "data": scn.Turns})
}

func (s *Service) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListScenarios()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list scenarios")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Service) handleScenarioTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scenario_types": llm.Themes()})
}

type runRequest struct {
	ScenarioID string   `json:"scenario_id"`
	Strategies []string `json:"strategies"`
	Seed       int64    `json:"seed,omitempty"`
}

type runResponse struct {
	ScenarioID     string                  `json:"scenario_id"`
	Results        map[string]*sim.Summary `json:"results"`
	BestStrategy   string                  `json:"best_strategy,omitempty"`
	BestProfitRate float64                 `json:"best_profit_rate"`
}

func (s *Service) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := cleanScenarioID(req.ScenarioID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	names, err := s.cleanStrategies(req.Strategies)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scn, err := s.store.LoadScenario(id)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("scenario %q not found", id))
		return
	}

	cfg := s.cfg.Sim
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	batch := sim.NewRunner(cfg).RunBatch(scn, names)

	writeJSON(w, http.StatusOK, runResponse{
		ScenarioID:     id,
		Results:        batch.Results,
		BestStrategy:   batch.BestStrategy,
		BestProfitRate: batch.BestProfitRate,
	})
}

// cleanStrategies lower-cases, dedupes and validates the requested strategy
// names. Defaults to the full benchmark set when the list is empty.
func (s *Service) cleanStrategies(names []string) ([]string, error) {
	if len(names) == 0 {
		return strategy.Names(), nil
	}
	if len(names) > s.cfg.MaxStrategies {
		return nil, fmt.Errorf("too many strategies (maximum %d)", s.cfg.MaxStrategies)
	}

	known := make(map[string]bool, len(strategy.Names()))
	for _, n := range strategy.Names() {
		known[n] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, raw := range names {
		n := strings.ToLower(strings.TrimSpace(raw))
		if n == "" {
			continue
		}
		if !known[n] {
			return nil, fmt.Errorf("invalid strategy %q", n)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no valid strategies provided")
	}
	return out, nil
}

// cleanScenarioID rejects path traversal and forces the .json suffix.
func cleanScenarioID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("scenario id cannot be empty")
	}
	if strings.Contains(id, "..") || strings.ContainsAny(id, "/\\") {
		return "", errors.New("invalid scenario id")
	}
	if !strings.HasSuffix(id, ".json") {
		id += ".json"
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

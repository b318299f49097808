// Package storage persists scenarios, run summaries and player profiles as
// flat JSON files: UTF-8 with non-ASCII preserved, 2-space indent, atomic
// temp-file + rename writes.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/storyvest/storyvest/internal/mentor"
	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/sim"
)

// Store reads and writes game data under a single directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string { return s.dir }

// ScenarioFilename builds the timestamped filename for a freshly generated
// scenario.
func ScenarioFilename(theme string) string {
	return fmt.Sprintf("game_scenario_%s_%s.json", theme, time.Now().Format("20060102_150405"))
}

// SummaryFilename builds the timestamped filename for a run summary.
func SummaryFilename(strategy string) string {
	return fmt.Sprintf("game_result_%s_%s.json", strategy, time.Now().Format("20060102_150405"))
}

// SaveScenario writes a scenario and returns the path it was written to.
func (s *Store) SaveScenario(scn *scenario.Scenario, filename string) (string, error) {
	return s.write(filename, scn.Turns)
}

// LoadScenario reads and normalizes a stored scenario.
func (s *Store) LoadScenario(filename string) (*scenario.Scenario, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	var turns []scenario.Turn
	if err := json.Unmarshal(b, &turns); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", filename, err)
	}
	scn := &scenario.Scenario{Turns: turns}
	if err := scenario.Normalize(scn); err != nil {
		return nil, err
	}
	return scn, nil
}

// SaveSummary writes a run summary.
func (s *Store) SaveSummary(summary *sim.Summary, filename string) (string, error) {
	return s.write(filename, summary)
}

// SaveProfile writes a player profile keyed by player id.
func (s *Store) SaveProfile(p *mentor.Profile) (string, error) {
	return s.write(profileFilename(p.PlayerID), p)
}

// LoadProfile reads a player profile, returning a fresh one when none has
// been saved yet.
func (s *Store) LoadProfile(playerID string) (*mentor.Profile, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, profileFilename(playerID)))
	if os.IsNotExist(err) {
		return mentor.NewProfile(playerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	var p mentor.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("load profile %s: %w", playerID, err)
	}
	return &p, nil
}

// ListScenarios returns the stored scenario filenames, sorted.
func (s *Store) ListScenarios() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, "profile_") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func profileFilename(playerID string) string {
	return fmt.Sprintf("profile_%s.json", playerID)
}

// write marshals v with narrative text preserved verbatim (no HTML
// escaping), then writes atomically via a temp file in the same directory.
func (s *Store) write(filename string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal %s: %w", filename, err)
	}

	path := filepath.Join(s.dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}

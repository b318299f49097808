// Package llm is the scenario provider: it asks Gemini for a themed
// multi-turn market story and parses the reply through the scenario
// ingestion boundary. Its only contract is "returns a scenario or fails";
// callers fall back to scenario.Sample() on failure.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/storyvest/storyvest/internal/scenario"
)

var ErrNoAPIKey = errors.New("no Gemini API key configured")

// Config holds the generation settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int32
}

// DefaultConfig returns the default model settings.
func DefaultConfig() Config {
	return Config{
		Model:       "gemini-2.5-flash",
		Temperature: 1.0,
		MaxTokens:   65536,
	}
}

// Provider generates scenarios through the Gemini API.
type Provider struct {
	cfg Config
}

// NewProvider validates the config and returns a Provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	return &Provider{cfg: cfg}, nil
}

// Generate asks the model for a scenario in the given theme. The raw reply
// is cleaned and repaired by scenario.ParseJSON, so minor format drift from
// the model does not fail the call.
func (p *Provider) Generate(ctx context.Context, themeID string) (*scenario.Scenario, error) {
	if !KnownTheme(themeID) {
		return nil, fmt.Errorf("unknown theme %q", themeID)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.cfg.Model)
	model.SetTemperature(p.cfg.Temperature)
	model.SetMaxOutputTokens(p.cfg.MaxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(scenarioPrompt(themeID)))
	if err != nil {
		return nil, fmt.Errorf("generate scenario: %w", err)
	}

	raw := responseText(resp)
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("model returned an empty response")
	}

	scn, err := scenario.ParseJSON(raw)
	if err != nil {
		log.Printf("scenario reply unparseable: %v", err)
		return nil, err
	}
	scn.Theme = themeID
	return scn, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

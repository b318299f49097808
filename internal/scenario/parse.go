package scenario

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	lineComments  = regexp.MustCompile(`(?s)//[^\n]*\n|/\*.*?\*/`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	jsonArray     = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// ParseJSON turns raw model output into a Scenario. The model frequently
// wraps its answer in markdown fences, emits comments or trailing commas, or
// surrounds the JSON with prose, so parsing tries progressively harder
// repairs before giving up: direct parse, then a cleaned parse, then
// extraction of the outermost JSON array. A single turn object is promoted
// to a one-turn list. The result is always Normalized.
func ParseJSON(raw string) (*Scenario, error) {
	raw = stripFences(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fmt.Errorf("parse scenario: %w", ErrEmptyScenario)
	}

	turns, err := decodeTurns(raw)
	if err != nil {
		cleaned := lineComments.ReplaceAllString(raw+"\n", "")
		cleaned = controlChars.ReplaceAllString(cleaned, "")
		cleaned = trailingComma.ReplaceAllString(cleaned, "$1")
		if turns, err = decodeTurns(cleaned); err != nil {
			if m := jsonArray.FindString(cleaned); m != "" {
				turns, err = decodeTurns(m)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("parse scenario: %w", err)
		}
	}

	s := &Scenario{Turns: turns}
	if err := Normalize(s); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeTurns(raw string) ([]Turn, error) {
	var turns []Turn
	if err := json.Unmarshal([]byte(raw), &turns); err == nil {
		return turns, nil
	}
	// Maybe a lone turn object instead of an array.
	var one Turn
	if err := json.Unmarshal([]byte(raw), &one); err != nil {
		return nil, err
	}
	if len(one.Stocks) == 0 {
		return nil, fmt.Errorf("single object is not a turn")
	}
	return []Turn{one}, nil
}

// stripFences removes a surrounding markdown code block (```json ... ```).
func stripFences(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	if len(lines) < 3 {
		return raw
	}
	if strings.Contains(lines[len(lines)-1], "```") {
		return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	}
	return raw
}

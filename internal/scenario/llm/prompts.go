package llm

import "fmt"

// Theme describes one selectable story world.
type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Themes lists the story worlds a scenario can be generated for.
func Themes() []Theme {
	return []Theme{
		{
			ID:          "magic_kingdom",
			Name:        "🏰 Magic Kingdom",
			Description: "A bakery, a circus troupe and a magic lab: become a wizard investing magic coins",
		},
		{
			ID:          "foodtruck_kingdom",
			Name:        "🚚 Food Truck Kingdom",
			Description: "A sandwich truck, an ice cream truck and a fusion taco truck: become a chef investing gourmet coins",
		},
		{
			ID:          "moonlight_thief",
			Name:        "🌙 Moonlight Thief",
			Description: "Moondust gathering, moon-shard necklaces and moonlight shields: become a moonlight thief investing moon coins",
		},
		{
			ID:          "three_little_pigs",
			Name:        "🐷 Three Little Pigs",
			Description: "Straw house, wood house and brick house: become an advisor investing construction coins",
		},
	}
}

// KnownTheme reports whether id names a selectable theme.
func KnownTheme(id string) bool {
	for _, t := range Themes() {
		if t.ID == id {
			return true
		}
	}
	return false
}

const systemPrompt = `You are a story writer for a children's investing game.
You create multi-turn market stories where fictional companies rise and fall
with the events of a fairy tale. Your stories teach basic investing ideas
(risk, diversification, reacting to news) in language a child understands.

You MUST respond with a single valid JSON array and nothing else: no prose,
no markdown fences, no comments. Each element of the array is one turn:

{
  "turn_number": <integer starting at 1, increasing by 1>,
  "news": "<one or two sentences of story news for this turn>",
  "event_description": "<a dramatic event, or \"none\" when nothing special happens>",
  "stocks": [
    {
      "name": "<stock name, identical across all turns>",
      "description": "<one sentence about the company>",
      "initial_value": <starting price, the same in every turn>,
      "current_value": <this turn's price, a non-negative number>,
      "risk_level": "<one of: high risk, high return | balanced | long-term hold>"
    }
  ]
}

Rules:
- Produce between 7 and 10 turns.
- Exactly three stocks, present in every turn with the same names.
- Exactly one stock per risk level.
- Prices move because of the news and events; at least one mid-story event
  should move prices sharply.
- Keep every number plausible: prices stay between 0 and 500.`

// scenarioPrompt builds the user prompt for one theme.
func scenarioPrompt(themeID string) string {
	var world string
	switch themeID {
	case "magic_kingdom":
		world = "a magic kingdom where the three stocks are the royal bakery, the traveling circus and the magic research lab"
	case "foodtruck_kingdom":
		world = "a food truck kingdom where the three stocks are a sandwich truck, an ice cream truck and a fusion taco truck"
	case "moonlight_thief":
		world = "a moonlit city where the three stocks are moondust gathering, moon-shard necklaces and moonlight shields"
	default:
		world = "the three little pigs' village where the three stocks are the straw house, the wood house and the brick house"
	}
	return fmt.Sprintf("Write a new market story set in %s. Follow the JSON format exactly.", world)
}

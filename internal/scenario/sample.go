package scenario

// Sample returns the built-in "Three Little Pigs Corporation" scenario.
// It serves as the offline fallback when generation fails and as a
// deterministic fixture for tests: ten turns, three stocks, a typhoon story
// arc in the middle turns.
func Sample() *Scenario {
	straw := func(price float64) Stock {
		return Stock{
			Name:         "Straw House",
			Description:  "Built from straw: finished fast, holds up poorly",
			InitialValue: 100,
			CurrentValue: price,
			RiskLevel:    "high risk, high return",
		}
	}
	wood := func(price float64) Stock {
		return Stock{
			Name:         "Wood House",
			Description:  "Built from wood: decent speed, decent sturdiness",
			InitialValue: 100,
			CurrentValue: price,
			RiskLevel:    "balanced",
		}
	}
	brick := func(price float64) Stock {
		return Stock{
			Name:         "Brick House",
			Description:  "Built from brick: slow to finish, very durable",
			InitialValue: 100,
			CurrentValue: price,
			RiskLevel:    "long-term hold",
		}
	}

	return &Scenario{
		Theme: "three_little_pigs",
		Turns: []Turn{
			{
				TurnNumber:       1,
				News:             "Sunny skies all week! The first pig's straw house went up in record time and buyers are lining up.",
				EventDescription: "none",
				Stocks:           []Stock{straw(110), wood(100), brick(100)},
			},
			{
				TurnNumber:       2,
				News:             "Weather report: a powerful typhoon may arrive in two turns. Invest carefully!",
				EventDescription: "none",
				Stocks:           []Stock{straw(105), wood(98), brick(102)},
			},
			{
				TurnNumber:       3,
				News:             "Breaking: the typhoon is moving in faster than expected. Analysts say the wooden house looks especially fragile in high winds.",
				EventDescription: "none",
				Stocks:           []Stock{straw(95), wood(90), brick(105)},
			},
			{
				TurnNumber:       4,
				News:             "The typhoon has made landfall! Fierce wind and rain are battering the village.",
				EventDescription: "Massive typhoon! The wooden house took severe damage and its value collapsed. The straw house was partly damaged too.",
				Stocks:           []Stock{straw(65), wood(15), brick(110)},
			},
			{
				TurnNumber:       5,
				News:             "The typhoon has passed. The brick house proved its strength and its value climbed even higher, while the others face long repairs.",
				EventDescription: "Brick House safety re-rated upward.",
				Stocks:           []Stock{straw(68), wood(20), brick(135)},
			},
			{
				TurnNumber:       6,
				News:             "The first pig started rapid repairs. Quick action is winning back investor confidence.",
				EventDescription: "Straw House repairs underway",
				Stocks:           []Stock{straw(80), wood(25), brick(140)},
			},
			{
				TurnNumber:       7,
				News:             "The second pig unveiled an innovative wood-reinforcement technique. Can it restore the wooden house's value?",
				EventDescription: "Wood House technical breakthrough",
				Stocks:           []Stock{straw(90), wood(45), brick(138)},
			},
			{
				TurnNumber:       8,
				News:             "The third pig received the Housing Safety Association's top certification! The brick house is expected to climb further.",
				EventDescription: "Brick House earns safety certification",
				Stocks:           []Stock{straw(95), wood(60), brick(150)},
			},
			{
				TurnNumber:       9,
				News:             "Summer vacation season is boosting demand for the light straw house, popular for its quick build time.",
				EventDescription: "Seasonal demand lift for Straw House",
				Stocks:           []Stock{straw(110), wood(70), brick(145)},
			},
			{
				TurnNumber:       10,
				News:             "All three houses are looking stable, each finding its own place in the market.",
				EventDescription: "Market stabilizes",
				Stocks:           []Stock{straw(115), wood(85), brick(155)},
			},
		},
	}
}

package engine

import "MatchEngineApi/internal/data"

// defensiveActionChance is the per-minute chance of a reactive defensive action.
const defensiveActionChance = 0.3

// selectPossession gives the ball to home when the draw falls under the tactical balance.
func selectPossession(rng Rand, tacticalBalance float64) side {
	if rng.Float64() < tacticalBalance {
		return home
	}
	return away
}

// weightedIndex draws an index with probability proportional to its weight. It returns -1 for
// no weights and 0 when every weight is zero; neither case consumes a draw.
func weightedIndex(rng Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	draw := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// selectPlayer picks a roster member by weight. The second return is false only for an empty
// roster.
func selectPlayer(rng Rand, roster []data.Player, weight func(*data.Player) float64) (*data.Player, bool) {
	weights := make([]float64, len(roster))
	for i := range roster {
		weights[i] = weight(&roster[i])
	}

	i := weightedIndex(rng, weights)
	if i < 0 {
		return nil, false
	}
	return &roster[i], true
}

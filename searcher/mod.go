package searcher

import "math"

// Hyperparameters for MCTS

const C = math.Sqrt2 // Exploration constant

// Rollout scores from the root player's perspective
const WinScore = 9999999.0
const LossScore = -WinScore
const DrawScore = 0.0

func ucb1(score float64, visits int, lnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return score/float64(visits) + C*math.Sqrt(lnN/float64(visits))
}

package searcher

import (
	"mctschess/experiments/metrics"
	"mctschess/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// rollout plays random moves from state for at most cutoff plies and returns
// a score from player's perspective: the win/loss sentinels when the game
// ends, otherwise the evaluation of the last position reached.
func rollout(state game.State, player game.Player, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics metrics.Collector) float64 {
	truncated := false
	for range cutoff {
		if state.IsTerminal() {
			metrics.AddFullPlayout()
			return outcomeScore(state.Outcome(), player)
		}
		moves := state.LegalMoves()
		if len(moves) == 0 {
			truncated = true
			break
		}
		state = state.Play(moves[rng.Intn(len(moves))]) // Random rollout policy
	}

	if truncated {
		metrics.AddTruncatedPlayout()
		log.Debug().Msgf("rollout stopped on a non-terminal state without legal moves: %s", state)
	} else {
		metrics.AddCutoffPlayout()
	}

	// Evaluations favor the first player, flip them for the second
	score := evaluate(state)
	if player == game.Second {
		score = -score
	}
	return score
}

func outcomeScore(outcome game.Outcome, player game.Player) float64 {
	switch outcome {
	case game.FirstPlayerWon:
		if player == game.First {
			return WinScore
		}
		return LossScore
	case game.SecondPlayerWon:
		if player == game.Second {
			return WinScore
		}
		return LossScore
	default:
		return DrawScore
	}
}

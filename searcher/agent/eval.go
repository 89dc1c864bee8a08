package agent

import (
	"mctschess/experiments/metrics"
	"mctschess/game"
	"mctschess/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the move with the highest mean score.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.mcts.FindNextMove(state)
}

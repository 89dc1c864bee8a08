package agent

import (
	"mctschess/experiments/metrics"
	"mctschess/game"
)

type Agent interface {
	// FindMove returns a move and performance metrics (if collected) from the simulation process.
	// A nil move means the state has no legal moves.
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

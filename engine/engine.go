package engine

import "mctschess/experiments/metrics"

type Engine interface {
	// Run plays a game till it ends or a max number of plies is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

package engine

import (
	"time"

	"mctschess/experiments/metrics"
	"mctschess/game"
	"mctschess/meta"
	"mctschess/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

var _ Engine = (*Local)(nil)

// Local plays both sides of a game in process, one agent per player.
type Local struct {
	State    game.State
	Agents   [2]agent.Agent // Indexed by game.Player
	maxPlies int
	progress *Progress
}

func WithMaxPlies(plies int) Option {
	return func(e *Local) {
		if plies > 0 {
			e.maxPlies = plies
		}
	}
}

// WithProgress renders every ply on p.
func WithProgress(p *Progress) Option {
	return func(e *Local) {
		e.progress = p
	}
}

func LocalEngine(state game.State, first, second agent.Agent, options ...Option) *Local {
	if state == nil {
		panic("need an initial state")
	}
	if first == nil || second == nil {
		panic("need an agent for each player")
	}

	e := &Local{
		State:    state,
		Agents:   [2]agent.Agent{first, second},
		maxPlies: meta.MAX_PLIES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game ends, the player to move has no
// move, or the ply limit is reached. A game cut off at the limit has no result.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	log.Debug().Msgf("%s player is starting", e.State.Player())

	ply := 0
	var moveMetrics []metrics.MoveMetric
	for !e.State.IsTerminal() && ply < e.maxPlies {
		player := e.State.Player()

		move, metric := e.Agents[player].FindMove(e.State)
		if move == nil {
			log.Warn().Msgf("%s player has no legal moves in a running game", player)
			break
		}

		e.State = e.State.Play(move)
		ply++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         ply,
			Player:       player,
			Move:         move.String(),
			SearchMetric: metric,
		})
		e.progress.Ply(ply, player, move, e.State)
	}

	if !e.State.IsTerminal() && ply >= e.maxPlies {
		log.Warn().Msgf("stopped after %d plies without a result", ply)
	}

	endTime := time.Now()
	return metrics.GameMetric{
		Result:     e.State.Outcome(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: ply,
	}, moveMetrics
}

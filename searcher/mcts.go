package searcher

import (
	"time"

	"mctschess/experiments/metrics"
	"mctschess/game"
	"mctschess/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	episodes int
	cutoff   int
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

// WithEpisodes sets the number of simulations per decision. Zero episodes
// makes every decision a uniformly random legal move.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes >= 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff sets the maximum number of random plies per rollout.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth >= 0 {
			m.cutoff = depth
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS returns a searcher that falls back to evaluate when rollouts hit
// the cutoff. Without WithRand or WithSeed it draws from a time-seeded source.
func NewMCTS(evaluate game.Evaluate, options ...Option) *MCTS {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	m := &MCTS{ // Default values
		episodes: meta.EPISODES,
		cutoff:   meta.WITH_CUTOFF,
		evaluate: evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search picks a move for a chess position, running iterations simulations
// with rollouts of at most depth plies.
func Search(state game.State, iterations, depth int) game.Move {
	m := NewMCTS(game.EvaluateMaterial, WithEpisodes(iterations), WithCutoff(depth))
	move, _ := m.FindNextMove(state)
	return move
}

// FindNextMove grows a fresh tree from state and returns the root child with
// the highest mean score. When the root has no children the move is drawn
// uniformly from the legal moves of state, nil if there are none.
func (m *MCTS) FindNextMove(state game.State) (game.Move, metrics.SearchMetric) {
	move, _, metric := m.Decide(state)
	return move, metric
}

// Decide is FindNextMove that also hands out the tree it searched.
func (m *MCTS) Decide(state game.State) (game.Move, *Tree, metrics.SearchMetric) {
	tree, metric := m.Simulate(state)

	if len(tree.root.children) == 0 {
		metric.IsFallback = true
		moves := state.LegalMoves()
		if len(moves) == 0 {
			log.Warn().Msg("no legal moves to fall back to")
			return nil, tree, metric
		}
		return moves[m.rng.Intn(len(moves))], tree, metric
	}

	return tree.root.bestMove(), tree, metric
}

// Simulate runs the configured number of episodes from a new root built
// for state.
func (m *MCTS) Simulate(state game.State) (*Tree, metrics.SearchMetric) {
	root := newNode(nil, nil, state)
	player := state.Player()

	m.metrics.Start(m.cutoff)
	for range m.episodes {
		m.simulate(root, player)
		m.metrics.AddEpisode()
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("searched %d episodes: %d nodes, %d full playouts, %d cutoff playouts in %s",
		metric.Episodes, metric.Nodes, metric.FullPlayouts, metric.CutoffPlayouts, metric.Duration)

	return &Tree{root: root, player: player}, metric
}

func (m *MCTS) simulate(root *node, player game.Player) {
	leaf, added := selectThenExpand(root, m.rng)
	if added {
		m.metrics.AddNode()
	}
	score := rollout(leaf.state, player, m.cutoff, m.evaluate, m.rng, m.metrics)
	backup(leaf, score)
}

// backup adds one visit and the score to every node from leaf up to the
// root. Scores keep the root player's orientation at every depth.
func backup(leaf *node, score float64) {
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		n.score += score
	}
}

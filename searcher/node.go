package searcher

import (
	"math"

	"mctschess/game"
	"mctschess/utils"

	"golang.org/x/exp/rand"
)

type node struct {
	state    game.State
	parent   *node
	move     game.Move // Move that led from parent to state, nil at the root
	children []*node
	untried  []game.Move
	score    float64
	visits   int
}

func newNode(parent *node, move game.Move, state game.State) *node {
	untried := state.LegalMoves()
	return &node{
		state:    state,
		parent:   parent,
		move:     move,
		children: make([]*node, 0, len(untried)),
		untried:  untried,
	}
}

// uct scores the node for selection, lnN is the log of its parent's visits
func (n *node) uct(lnN float64) float64 {
	return ucb1(n.score, n.visits, lnN)
}

func (n *node) mean() float64 {
	return n.score / float64(n.visits)
}

// bestChild returns the child with the highest UCB1, the first one on ties.
func (n *node) bestChild() *node {
	lnN := math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := child.uct(lnN)
		if score == math.Inf(1) {
			return child
		}
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// addChild expands the ith untried move into a new child.
func (n *node) addChild(i int) *node {
	move := n.untried[i]
	n.untried = utils.RemoveAt(n.untried, i)
	child := newNode(n, move, n.state.Play(move))
	n.children = append(n.children, child)
	return child
}

func (n *node) expand(rng *rand.Rand) *node {
	return n.addChild(rng.Intn(len(n.untried)))
}

// bestMove returns the move of the child with the highest mean score, the first one on ties.
func (n *node) bestMove() game.Move {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	maxMean := best.mean()
	for _, child := range n.children[1:] {
		if m := child.mean(); m > maxMean {
			maxMean = m
			best = child
		}
	}
	return best.move
}

package searcher

import "golang.org/x/exp/rand"

// selectThenExpand descends from root by UCB1 until it reaches a node with
// untried moves, which gets exactly one new child. The new child is returned
// with added set. A terminal node, or a non-terminal one without moves, is
// returned as is.
func selectThenExpand(root *node, rng *rand.Rand) (leaf *node, added bool) {
	current := root
	for !current.state.IsTerminal() {
		if len(current.untried) > 0 {
			return current.expand(rng), true
		}
		if len(current.children) == 0 { // No legal moves
			break
		}
		current = current.bestChild()
	}
	return current, false
}

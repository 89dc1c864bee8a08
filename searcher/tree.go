package searcher

import "mctschess/game"

// Tree is the search tree grown for a single decision.
type Tree struct {
	root   *node
	player game.Player
}

type ChildStat struct {
	Move   game.Move
	Visits int
	Score  float64 // Accumulated from the root player's perspective
}

func (s ChildStat) Mean() float64 {
	return s.Score / float64(s.Visits)
}

// Player is the side to move at the root. Scores favor this player.
func (t *Tree) Player() game.Player {
	return t.player
}

func (t *Tree) Visits() int {
	return t.root.visits
}

// Children reports the root's children in expansion order.
func (t *Tree) Children() []ChildStat {
	stats := make([]ChildStat, len(t.root.children))
	for i, child := range t.root.children {
		stats[i] = ChildStat{Move: child.move, Visits: child.visits, Score: child.score}
	}
	return stats
}

// Size counts the nodes of the tree, root included.
func (t *Tree) Size() int {
	size := 0
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, n.children...)
	}
	return size
}

package searcher

import (
	"testing"

	"mctschess/game"
	"mctschess/game/gametest"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSelectThenExpand(t *testing.T) {
	t.Run("expanding a root with untried moves", func(t *testing.T) {
		root := newNode(nil, nil, gametest.NewNim(5))

		leaf, added := selectThenExpand(root, rand.New(rand.NewSource(1)))

		require.True(t, added, "Root should be expanded")
		require.Same(t, root, leaf.parent)
		require.Equal(t, []*node{leaf}, root.children)
		require.Len(t, root.untried, 1)
		require.NotEqual(t, root.untried[0], leaf.move, "Expanded move should leave the untried moves")
	})

	t.Run("descending through a fully expanded node", func(t *testing.T) {
		root := newNode(nil, nil, gametest.NewNim(3))
		low := root.addChild(0)  // pile 2
		high := root.addChild(0) // pile 1
		backup(low, 0)
		backup(high, 5)
		require.Empty(t, root.untried)

		leaf, added := selectThenExpand(root, rand.New(rand.NewSource(1)))

		require.True(t, added, "A grandchild should be expanded")
		require.Len(t, root.children, 2, "Fully expanded root should not grow")
		require.Same(t, high, leaf.parent, "Should descend to the max UCB1 child")
		require.Equal(t, gametest.Nim{Pile: 0, ToMove: game.First}, leaf.state)
	})

	t.Run("stagnating on a terminal root", func(t *testing.T) {
		root := newNode(nil, nil, gametest.NewNim(0))

		leaf, added := selectThenExpand(root, rand.New(rand.NewSource(1)))

		require.Same(t, root, leaf)
		require.False(t, added)
	})

	t.Run("reaching a terminal node in a fully expanded subtree", func(t *testing.T) {
		root := newNode(nil, nil, gametest.NewNim(1))
		end := root.addChild(0)
		backup(end, WinScore)

		leaf, added := selectThenExpand(root, rand.New(rand.NewSource(1)))

		require.Same(t, end, leaf, "Terminal node should be returned")
		require.False(t, added)
		require.Empty(t, end.children)
	})

	t.Run("stopping at a non-terminal node without moves", func(t *testing.T) {
		root := newNode(nil, nil, gametest.Stuck{})

		leaf, added := selectThenExpand(root, rand.New(rand.NewSource(1)))

		require.Same(t, root, leaf)
		require.False(t, added)
	})

	t.Run("expanding moves uniformly at random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		seen := map[string]int{}
		for range 200 {
			root := newNode(nil, nil, gametest.NewNim(5))
			leaf, _ := selectThenExpand(root, rng)
			seen[leaf.move.String()]++
		}

		require.Len(t, seen, 2, "Both moves should be picked")
		require.InDelta(t, 100, seen["take1"], 40)
	})
}

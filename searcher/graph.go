package searcher

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// ToDot renders the tree down to maxDepth plies below the root in Graphviz DOT.
// A negative maxDepth renders the whole tree.
func (t *Tree) ToDot(maxDepth int) string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	id := 0
	var walk func(n *node, name string, depth int)
	walk = func(n *node, name string, depth int) {
		move := "root"
		if n.move != nil {
			move = n.move.String()
		}
		label := fmt.Sprintf("%s\nn=%d q=%.2f", move, n.visits, n.score)
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(label),
		}
		if n.state.IsTerminal() {
			attrs["style"] = "filled"
		}
		g.AddNode("G", name, attrs)

		if maxDepth >= 0 && depth >= maxDepth {
			return
		}
		for _, child := range n.children {
			id++
			childName := "n" + strconv.Itoa(id)
			walk(child, childName, depth+1)
			g.AddEdge(name, childName, true, nil)
		}
	}
	walk(t.root, "n0", 0)

	return g.String()
}

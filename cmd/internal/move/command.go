package move

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"mctschess/game"
	"mctschess/meta"
	"mctschess/searcher"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type Command struct {
	fen        string
	iterations int
	depth      int
	seed       uint64
	verbose    bool

	dot      string
	dotDepth int

	out io.Writer
}

func (*Command) Name() string     { return "move" }
func (*Command) Synopsis() string { return "Pick a move for a position with MCTS" }
func (*Command) Usage() string {
	return `move [flags]

Prints the chosen move in UCI notation.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.fen, "fen", "", "position in FEN, default is the starting position")
	flags.IntVar(&c.iterations, "iterations", meta.EPISODES, "MCTS simulations")
	flags.IntVar(&c.depth, "depth", meta.WITH_CUTOFF, "maximum random plies per rollout")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flags.BoolVar(&c.verbose, "v", false, "print the position and root statistics")
	flags.StringVar(&c.dot, "dot", "", "write the search tree in Graphviz DOT to this file")
	flags.IntVar(&c.dotDepth, "dot-depth", 2, "plies of the tree to write, -1 for all")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.iterations < 0 || c.depth < 0 {
		log.Error().Msg("iterations and depth must not be negative")
		return subcommands.ExitUsageError
	}

	state, err := game.FromFEN(c.fen)
	if err != nil {
		log.Error().Err(err).Msg("bad position")
		return subcommands.ExitUsageError
	}

	options := []searcher.Option{
		searcher.WithEpisodes(c.iterations),
		searcher.WithCutoff(c.depth),
		searcher.WithMetrics(),
	}
	if c.seed != 0 {
		options = append(options, searcher.WithSeed(c.seed))
	}
	move, tree, metric := searcher.NewMCTS(game.EvaluateMaterial, options...).Decide(state)

	if c.dot != "" {
		if err := os.WriteFile(c.dot, []byte(tree.ToDot(c.dotDepth)), 0644); err != nil {
			log.Error().Err(err).Msg("failed to write search tree")
			return subcommands.ExitFailure
		}
	}
	if c.verbose {
		c.printTree(state, tree)
	}

	if move == nil {
		log.Error().Msgf("no legal moves in %s", state.FEN())
		return subcommands.ExitFailure
	}
	log.Info().Msgf("searched %d episodes and %d nodes in %s", metric.Episodes, metric.Nodes, metric.Duration)
	fmt.Fprintln(c.out, move)
	return subcommands.ExitSuccess
}

func (c *Command) printTree(state *game.ChessState, tree *searcher.Tree) {
	fmt.Fprintf(c.out, "%s\n%s to move\n", state, tree.Player())
	w := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "move\tvisits\tmean")
	for _, child := range tree.Children() {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", child.Move, child.Visits, child.Mean())
	}
	w.Flush()
}

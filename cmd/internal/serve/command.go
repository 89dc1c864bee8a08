package serve

import (
	"context"
	"flag"

	"mctschess/meta"
	"mctschess/searcher/agent"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type Command struct {
	addr       string
	iterations int
	depth      int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve MCTS moves over HTTP" }
func (*Command) Usage() string {
	return `serve [flags]

POST /findmove {"fen": ..., "iterations": ..., "depth": ...} returns {"move": ...}.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.addr, "addr", ":8080", "address to listen on")
	flags.IntVar(&c.iterations, "iterations", meta.EPISODES, "default MCTS simulations per request")
	flags.IntVar(&c.depth, "depth", meta.WITH_CUTOFF, "default maximum random plies per rollout")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.iterations < 0 || c.depth < 0 {
		log.Error().Msg("iterations and depth must not be negative")
		return subcommands.ExitUsageError
	}
	if err := agent.NewServer(c.iterations, c.depth).ListenAndServe(c.addr); err != nil {
		log.Error().Err(err).Msg("agent server stopped")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

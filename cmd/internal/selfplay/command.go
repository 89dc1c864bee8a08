package selfplay

import (
	"context"
	"flag"

	"mctschess/config"
	"mctschess/experiments"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type Command struct {
	config string

	games      int
	output     string
	iterations int
	depth      int
	maxPlies   int
	seed       uint64
	verbose    bool

	movesOutput string
	index       string
	fen         string
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play MCTS against itself and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Flags override the values of the -config file.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	def := config.Default()
	flags.StringVar(&c.config, "config", "", "YAML file with the batch settings")
	flags.IntVar(&c.games, "games", def.Games, "number of games to play")
	flags.StringVar(&c.output, "output", def.Output, "CSV file to write game results to")
	flags.IntVar(&c.iterations, "iterations", def.Iterations, "MCTS simulations per move")
	flags.IntVar(&c.depth, "depth", def.Depth, "maximum random plies per rollout")
	flags.IntVar(&c.maxPlies, "max-plies", def.MaxPlies, "cut games off after how many plies")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flags.BoolVar(&c.verbose, "v", false, "print the board after every ply")
	flags.StringVar(&c.movesOutput, "moves-output", "", "CSV file to write per-move search metrics to")
	flags.StringVar(&c.index, "index", "", "SQLite database to index finished games in")
	flags.StringVar(&c.fen, "fen", "", "initial position in FEN, default is the standard one")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flags.NArg() != 0 {
		log.Error().Msgf("unexpected arguments: %v", flags.Args())
		return subcommands.ExitUsageError
	}

	cfg, err := c.load(flags)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return subcommands.ExitFailure
	}

	if err := experiments.RunSelfPlay(cfg); err != nil {
		log.Error().Err(err).Msg("self-play failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// load reads the -config file, if any, and applies the flags set on the
// command line over it.
func (c *Command) load(flags *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.config != "" {
		var err error
		if cfg, err = config.Load(c.config); err != nil {
			return cfg, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = c.games
		case "output":
			cfg.Output = c.output
		case "iterations":
			cfg.Iterations = c.iterations
		case "depth":
			cfg.Depth = c.depth
		case "max-plies":
			cfg.MaxPlies = c.maxPlies
		case "seed":
			cfg.Seed = c.seed
		case "v":
			cfg.Verbose = c.verbose
		case "moves-output":
			cfg.MovesOutput = c.movesOutput
		case "index":
			cfg.Index = c.index
		case "fen":
			cfg.FEN = c.fen
		}
	})
	return cfg, nil
}

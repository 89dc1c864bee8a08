package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"mctschess/cmd/internal/move"
	"mctschess/cmd/internal/selfplay"
	"mctschess/cmd/internal/serve"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&move.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad log level %q: %v\n", *logLevel, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

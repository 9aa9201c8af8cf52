package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/tictactoe/cmd/internal/analyze"
	"github.com/nelhage/tictactoe/cmd/internal/canonicalize"
	"github.com/nelhage/tictactoe/cmd/internal/play"
	"github.com/nelhage/tictactoe/cmd/internal/selfplay"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&canonicalize.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

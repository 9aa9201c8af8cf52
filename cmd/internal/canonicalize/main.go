package canonicalize

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/symmetry"
	"github.com/nelhage/tictactoe/ttt"
)

type Command struct{}

func (*Command) Name() string     { return "canonicalize" }
func (*Command) Synopsis() string { return "Canonicalize the symmetry of a game" }
func (*Command) Usage() string {
	return `canonicalize MOVE...

Rewrite a game, given as cell numbers, into a canonical orientation.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	if err := canonicalize(os.Stdout, strings.Join(flag.Args(), " ")); err != nil {
		log.Printf("canonicalize: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func canonicalize(out io.Writer, game string) error {
	ms, err := notation.ParseMoves(game)
	if err != nil {
		return err
	}
	canon, err := symmetry.Canonical(ms)
	if err != nil {
		return err
	}
	b := ttt.New()
	for _, m := range canon {
		if b, err = b.Move(m); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, notation.FormatMoves(canon))
	fmt.Fprintln(out, notation.FormatBoard(b))
	return nil
}

package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/tictactoe/ai"
	"github.com/nelhage/tictactoe/cli"
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/symmetry"
	"github.com/nelhage/tictactoe/ttt"
)

type Command struct {
	quiet bool
	debug int
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Score every move on a board" }
func (*Command) Usage() string {
	return `analyze [options] BOARD

Run a full negamax search from BOARD and print the score of every
available cell. BOARD is written as three rows of x, o, or '.',
separated by slashes, e.g. "oxo/oxx/...".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	b, e := notation.ParseBoard(flag.Arg(0))
	if e != nil {
		log.Printf("parse: %v", e)
		return subcommands.ExitUsageError
	}
	c.analyze(os.Stdout, b)
	return subcommands.ExitSuccess
}

func (c *Command) analyze(out io.Writer, b ttt.Board) {
	if !c.quiet {
		cli.RenderBoard(out, b)
		fmt.Fprintln(out)
	}
	if b.GameOver() {
		if w, ok := b.Winner(); ok {
			fmt.Fprintf(out, "game over: %s wins\n", w)
		} else {
			fmt.Fprintf(out, "game over: draw\n")
		}
		return
	}
	scores, st := ai.Analyze(b)
	fmt.Fprintf(out, "AI analysis (%s to move):\n", b.CurrentToken())
	for i, cs := range scores {
		if cs.Valid {
			fmt.Fprintf(out, " cell=%d score=%d\n", i, cs.Score)
		}
	}
	m, _ := scores.Best()
	fmt.Fprintf(out, " best=%d value=%d\n", m, scores[m].Score)
	if c.debug > 0 {
		fmt.Fprintf(out, " visited=%d terminal=%d\n", st.Visited, st.Terminal)
		fmt.Fprintf(out, " canonical=%s orientations=%d\n",
			notation.FormatBoard(symmetry.CanonicalBoard(b)), len(symmetry.Symmetries(b)))
	}
}

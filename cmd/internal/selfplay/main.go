package selfplay

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/nelhage/tictactoe/ai"
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/ttt"
)

type Command struct {
	p1    string
	p2    string
	games int
	swap  bool
	board string
	debug int

	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two engines against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player1 strategy")
	flags.StringVar(&c.p2, "p2", "lowest", "player2 strategy")
	flags.IntVar(&c.games, "games", 2, "number of games to play")
	flags.BoolVar(&c.swap, "swap", true, "swap sides each game")
	flags.StringVar(&c.board, "board", "", "start every game from this board")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) config() (*Config, error) {
	s1, err := ai.ParseStrategy(c.p1)
	if err != nil {
		return nil, fmt.Errorf("-p1: %w", err)
	}
	s2, err := ai.ParseStrategy(c.p2)
	if err != nil {
		return nil, fmt.Errorf("-p2: %w", err)
	}
	initial := ttt.New()
	if c.board != "" {
		if initial, err = notation.ParseBoard(c.board); err != nil {
			return nil, fmt.Errorf("-board: %w", err)
		}
	}
	return &Config{
		Games:   c.games,
		Verbose: c.verbose,
		Initial: initial,
		P1:      ai.Config{Strategy: s1, Debug: c.debug},
		P2:      ai.Config{Strategy: s2, Debug: c.debug},
		Swap:    c.swap,
	}, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.config()
	if err != nil {
		log.Printf("selfplay: %v", err)
		return subcommands.ExitUsageError
	}
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("selfplay: %v", err)
		return subcommands.ExitFailure
	}

	log.Printf("done games=%d ties=%d x=%d o=%d p1=%s p2=%s",
		st.Count(), st.Ties, st.X, st.O, c.p1, c.p2)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tx\to\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].XWins, st.Players[0].OWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].XWins, st.Players[1].OWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].XWins+st.Players[1].XWins,
		st.Players[0].OWins+st.Players[1].OWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	return subcommands.ExitSuccess
}

package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/tictactoe/cli"
	"github.com/nelhage/tictactoe/cmd/internal/opt"
	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/ttt"
)

type Command struct {
	x     string
	o     string
	menu  bool
	clear bool
	board string

	aiopt opt.AI
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play tic-tac-toe from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play tic-tac-toe on the command-line, against a human or the computer.

With no -x or -o, show a menu of game types and keep playing until
Quit is chosen.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.x, "x", "", "x player (human, lowest, or minimax)")
	flags.StringVar(&c.o, "o", "", "o player (human, lowest, or minimax)")
	flags.BoolVar(&c.menu, "menu", false, "choose the game type from a menu")
	flags.BoolVar(&c.clear, "clear", false, "clear the terminal before each move")
	flags.StringVar(&c.board, "board", "", "start from this board instead of an empty one")

	c.aiopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(ctx, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) run(ctx context.Context, r *bufio.Reader, out io.Writer) error {
	initial := ttt.New()
	if c.board != "" {
		var err error
		if initial, err = notation.ParseBoard(c.board); err != nil {
			return err
		}
	}
	in := cli.NewConsoleInput(r)
	if c.menu || (c.x == "" && c.o == "") {
		return c.playMenu(ctx, in, out, initial)
	}
	x, err := c.parsePlayer(in, out, c.x)
	if err != nil {
		return err
	}
	o, err := c.parsePlayer(in, out, c.o)
	if err != nil {
		return err
	}
	return c.playGame(ctx, out, initial, x, o)
}

func (c *Command) playMenu(ctx context.Context, in cli.Input, out io.Writer, initial ttt.Board) error {
	menu := &cli.Menu{Out: out, In: in}
	computer, err := c.aiopt.Build("")
	if err != nil {
		return err
	}
	for {
		if c.clear {
			cli.ClearScreen(out)
		}
		menu.Render()
		mode, ok, err := menu.Choose()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if mode == cli.Quit {
			fmt.Fprintln(out, "Exit successful.")
			return nil
		}
		x, o := mode.Players(
			func() cli.Player { return cli.NewHuman(out, in) },
			func() cli.Player { return cli.NewComputer(computer) },
		)
		if err := c.playGame(ctx, out, initial, x, o); err != nil {
			return err
		}
	}
}

func (c *Command) playGame(ctx context.Context, out io.Writer, initial ttt.Board, x, o cli.Player) error {
	st := &cli.CLI{
		Initial: initial,
		Out:     out,
		X:       x,
		O:       o,
		Clear:   c.clear,
	}
	b, err := st.Play(ctx)
	if err != nil {
		return err
	}
	if c.aiopt.Debug > 0 {
		log.Printf("game over board=%s moves=%v", notation.FormatBoard(b), st.Moves())
	}
	return nil
}

func (c *Command) parsePlayer(in cli.Input, out io.Writer, s string) (cli.Player, error) {
	switch s {
	case "", "human":
		return cli.NewHuman(out, in), nil
	}
	a, err := c.aiopt.Build(s)
	if err != nil {
		return nil, fmt.Errorf("unparseable player: %q: %w", s, err)
	}
	return cli.NewComputer(a), nil
}

package opt

import (
	"flag"
	"time"

	"github.com/nelhage/tictactoe/ai"
)

type AI struct {
	Strategy string
	Delay    time.Duration
	Debug    int
}

func (o *AI) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Strategy, "strategy", "minimax", "computer strategy (minimax or lowest)")
	flags.DurationVar(&o.Delay, "delay", time.Second, "pause before each computer move")
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
}

// Build returns an AI using strategy, or the -strategy flag when
// strategy is "".
func (o *AI) Build(strategy string) (*ai.AI, error) {
	if strategy == "" {
		strategy = o.Strategy
	}
	s, err := ai.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return ai.New(ai.Config{
		Strategy: s,
		Delay:    o.Delay,
		Debug:    o.Debug,
	}), nil
}

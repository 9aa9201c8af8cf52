package cli

import (
	"fmt"
	"io"
)

// Mode is a game type chosen from the menu.
type Mode int

const (
	HumanVsHuman Mode = iota + 1
	HumanVsComputer
	ComputerVsHuman
	ComputerVsComputer
	Quit
)

const menuText = "Please select the game type:\n\n" +
	" 1) Human vs. Human\n" +
	" 2) Human vs. Computer\n" +
	" 3) Computer vs. Human\n" +
	" 4) Computer vs. Computer\n" +
	" 5) Quit\n"

type Menu struct {
	Out io.Writer
	In  Input
}

func (m *Menu) Render() {
	fmt.Fprint(m.Out, menuText+"\n")
}

// Choose reads one menu choice. ok is false for a choice outside 1-5.
func (m *Menu) Choose() (Mode, bool, error) {
	n, ok, err := m.In.ReadMove()
	if err != nil || !ok {
		return 0, false, err
	}
	if n < int(HumanVsHuman) || n > int(Quit) {
		return 0, false, nil
	}
	return Mode(n), true, nil
}

// Players returns the x and o players for m, built with the given
// constructors. Quit and unknown modes fall back to two humans.
func (m Mode) Players(human func() Player, computer func() Player) (x, o Player) {
	switch m {
	case HumanVsComputer:
		return human(), computer()
	case ComputerVsHuman:
		return computer(), human()
	case ComputerVsComputer:
		return computer(), computer()
	default:
		return human(), human()
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/tictactoe/ttt"
)

const clearScreen = "\x1b[2J\x1b[H"

// FormatBoard lays b out as a grid:
//
//	 x | o |
//	---+---+---
//	   |   |
//	---+---+---
//	   |   | x
//
// followed by a blank line and the board's message, if it has one.
func FormatBoard(b ttt.Board) string {
	var out strings.Builder
	for i := 0; i < ttt.Cells; i++ {
		fmt.Fprintf(&out, " %s ", b.At(i))
		switch {
		case i == ttt.Cells-1:
		case i%ttt.Size == ttt.Size-1:
			out.WriteString("\n---+---+---\n")
		default:
			out.WriteString("|")
		}
	}
	if msg := b.Message(); msg != "" {
		out.WriteString("\n\n")
		out.WriteString(msg)
	}
	return out.String()
}

func RenderBoard(out io.Writer, b ttt.Board) {
	fmt.Fprintln(out, FormatBoard(b))
}

// ClearScreen clears a VT100 terminal.
func ClearScreen(out io.Writer) {
	io.WriteString(out, clearScreen)
}

package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/tictactoe/ttt"
)

// ParseMoves reads a game as cell numbers separated by spaces or
// commas, e.g. "4 0 2" or "4,0,2".
func ParseMoves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad move: %q", f)
		}
		if m < 0 || m >= ttt.Cells {
			return nil, fmt.Errorf("bad move: %d: %w", m, ttt.ErrOutOfRange)
		}
		out = append(out, m)
	}
	return out, nil
}

func FormatMoves(ms []int) string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = strconv.Itoa(m)
	}
	return strings.Join(out, " ")
}

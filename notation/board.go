// Package notation implements a one-line text form for boards, e.g.
// "xo./.x./..o": three rows separated by slashes, with '.' (or '-' or
// ' ') for an empty cell.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/tictactoe/ttt"
)

var ErrBadBoard = errors.New("bad board")

func ParseBoard(s string) (ttt.Board, error) {
	var cells [ttt.Cells]ttt.Token
	flat := s
	if strings.Contains(s, "/") {
		rows := strings.Split(s, "/")
		if len(rows) != ttt.Size {
			return ttt.Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrBadBoard, ttt.Size, len(rows))
		}
		for i, r := range rows {
			if len(r) != ttt.Size {
				return ttt.Board{}, fmt.Errorf("%w: row %d bad length: %d", ErrBadBoard, i, len(r))
			}
		}
		flat = strings.Join(rows, "")
	}
	if len(flat) != ttt.Cells {
		return ttt.Board{}, fmt.Errorf("%w: want %d cells, got %d", ErrBadBoard, ttt.Cells, len(flat))
	}
	for i := 0; i < len(flat); i++ {
		t, err := parseCell(flat[i])
		if err != nil {
			return ttt.Board{}, err
		}
		cells[i] = t
	}
	return ttt.FromCells(cells), nil
}

func parseCell(c byte) (ttt.Token, error) {
	switch c {
	case 'x', 'X':
		return ttt.X, nil
	case 'o', 'O':
		return ttt.O, nil
	case '.', '-', ' ':
		return ttt.Empty, nil
	}
	return ttt.Empty, fmt.Errorf("%w: malformed cell: %q", ErrBadBoard, c)
}

func FormatBoard(b ttt.Board) string {
	var rows []string
	for r := 0; r < ttt.Size; r++ {
		var row strings.Builder
		for c := 0; c < ttt.Size; c++ {
			switch t := b.At(r*ttt.Size + c); t {
			case ttt.Empty:
				row.WriteByte('.')
			default:
				row.WriteString(t.String())
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "/")
}

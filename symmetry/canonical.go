package symmetry

import (
	"fmt"

	"github.com/nelhage/tictactoe/notation"
	"github.com/nelhage/tictactoe/ttt"
)

// Symmetry maps a cell's (x, y) coordinates onto its image under one
// of the eight rotations and reflections of the grid.
type Symmetry func(int, int) (int, int)

func compose(ss ...Symmetry) Symmetry {
	return func(x, y int) (int, int) {
		for i := range ss {
			s := ss[len(ss)-i-1]
			x, y = s(x, y)
		}
		return x, y
	}
}

func flip(i int) int {
	return ttt.Size - 1 - i
}

var symmetries = []Symmetry{
	// identity
	func(x, y int) (int, int) { return x, y },
	// flipX
	func(x, y int) (int, int) { return flip(x), y },
	// flipY
	func(x, y int) (int, int) { return x, flip(y) },
	// flipDiag1
	func(x, y int) (int, int) { return y, x },
	// flipDiag2
	func(x, y int) (int, int) { return flip(y), flip(x) },
	// rotate2
	func(x, y int) (int, int) { return flip(x), flip(y) },
	// rotCW
	func(x, y int) (int, int) { return y, flip(x) },
	// rotCCW
	func(x, y int) (int, int) { return flip(y), x },
}

func TransformMove(s Symmetry, i int) int {
	x, y := s(i%ttt.Size, i/ttt.Size)
	return y*ttt.Size + x
}

func TransformBoard(s Symmetry, b ttt.Board) ttt.Board {
	var cells [ttt.Cells]ttt.Token
	for i := 0; i < ttt.Cells; i++ {
		cells[TransformMove(s, i)] = b.At(i)
	}
	return ttt.FromCells(cells)
}

type BoardAndSymmetry struct {
	B ttt.Board
	S Symmetry
}

// Symmetries returns every distinct orientation of b, b itself first.
func Symmetries(b ttt.Board) []BoardAndSymmetry {
	seen := make(map[[ttt.Cells]ttt.Token]struct{})
	var out []BoardAndSymmetry
	for _, s := range symmetries {
		t := TransformBoard(s, b)
		if _, ok := seen[t.Cells()]; ok {
			continue
		}
		seen[t.Cells()] = struct{}{}
		out = append(out, BoardAndSymmetry{B: t, S: s})
	}
	return out
}

// CanonicalBoard returns the orientation of b whose notation sorts
// first.
func CanonicalBoard(b ttt.Board) ttt.Board {
	best := ttt.FromCells(b.Cells())
	bs := notation.FormatBoard(best)
	for _, o := range Symmetries(b)[1:] {
		if s := notation.FormatBoard(o.B); s < bs {
			best, bs = o.B, s
		}
	}
	return best
}

// Canonical rewrites a game so that, at every ply, the move played is
// the lowest-numbered cell among all moves equivalent to it under the
// symmetries of the position so far.
func Canonical(ms []int) ([]int, error) {
	b := ttt.New()
	tfn := symmetries[0]
	out := make([]int, 0, len(ms))
	for ply, m := range ms {
		if m < 0 || m >= ttt.Cells {
			return nil, fmt.Errorf("canonical: move %d: %d: %w", ply, m, ttt.ErrOutOfRange)
		}
		m = TransformMove(tfn, m)
		best := m
		var rot Symmetry
		for _, s := range symmetries[1:] {
			if TransformBoard(s, b).Cells() != b.Cells() {
				continue
			}
			if rm := TransformMove(s, m); rm < best {
				best, rot = rm, s
			}
		}
		if rot != nil {
			tfn = compose(rot, tfn)
		}
		var err error
		if b, err = b.Move(best); err != nil {
			return nil, fmt.Errorf("canonical: move %d: %d: %w", ply, ms[ply], err)
		}
		out = append(out, best)
	}
	return out, nil
}

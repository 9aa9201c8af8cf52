package ttt

import "errors"

const (
	Size  = 3
	Cells = Size * Size
)

var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrCellOccupied = errors.New("cell occupied")
)

// Messages attached to a Board by TryMove.
const (
	MsgOutOfRange = "Please choose a number from 0 to 8."
	MsgOccupied   = "That space is already taken."
)

// Board is an immutable 3x3 grid stored row-major. Every operation
// that changes the grid returns a new Board; the receiver is never
// modified.
//
// Whose turn it is is not stored: it is derived from the number of
// empty cells, so it can never disagree with the grid.
type Board struct {
	cells   [Cells]Token
	message string
}

func New() Board {
	return Board{}
}

// FromCells wraps an explicit grid. The cells are not checked for
// being reachable in play.
func FromCells(cells [Cells]Token) Board {
	return Board{cells: cells}
}

func (b Board) At(i int) Token {
	return b.cells[i]
}

func (b Board) Cells() [Cells]Token {
	return b.cells
}

// Message returns the diagnostic left by the last TryMove, or "".
func (b Board) Message() string {
	return b.message
}

func (b Board) empty() int {
	n := 0
	for _, c := range b.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// CurrentToken returns the token of the player to move: X when an odd
// number of cells are empty, O otherwise.
func (b Board) CurrentToken() Token {
	if b.empty()%2 == 1 {
		return X
	}
	return O
}

// Place puts the current token at i. Placing on an occupied cell or
// outside the grid returns an unchanged copy.
func (b Board) Place(i int) Board {
	next, err := b.Move(i)
	if err != nil {
		return b
	}
	return next
}

// Move is the validating form of Place.
func (b Board) Move(i int) (Board, error) {
	if i < 0 || i >= Cells {
		return b, ErrOutOfRange
	}
	if b.cells[i] != Empty {
		return b, ErrCellOccupied
	}
	next := Board{cells: b.cells}
	next.cells[i] = b.CurrentToken()
	return next, nil
}

// TryMove behaves like Move but never fails: an illegal move returns
// the unchanged grid carrying a human-readable message instead.
func (b Board) TryMove(i int) Board {
	next, err := b.Move(i)
	switch {
	case errors.Is(err, ErrOutOfRange):
		return Board{cells: b.cells, message: MsgOutOfRange}
	case errors.Is(err, ErrCellOccupied):
		return Board{cells: b.cells, message: MsgOccupied}
	}
	return next
}

// AvailableSpaces returns the empty cell indices in ascending order.
func (b Board) AvailableSpaces() []int {
	out := make([]int, 0, Cells)
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

func (b Board) GameOver() bool {
	if _, ok := b.Winner(); ok {
		return true
	}
	return b.empty() == 0
}

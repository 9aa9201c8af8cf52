package ttt

type line [Size]int

func (b Board) rows() []line {
	var out []line
	for r := 0; r < Size; r++ {
		var l line
		for c := 0; c < Size; c++ {
			l[c] = r*Size + c
		}
		out = append(out, l)
	}
	return out
}

func (b Board) columns() []line {
	var out []line
	for c := 0; c < Size; c++ {
		var l line
		for r := 0; r < Size; r++ {
			l[r] = r*Size + c
		}
		out = append(out, l)
	}
	return out
}

var (
	slash     = line{2, 4, 6}
	backslash = line{0, 4, 8}
)

// lines lists every line in the order Winner checks them.
func (b Board) lines() []line {
	ls := append(b.rows(), b.columns()...)
	return append(ls, slash, backslash)
}

func (b Board) won(l line) (Token, bool) {
	t := b.cells[l[0]]
	if t == Empty {
		return Empty, false
	}
	for _, i := range l[1:] {
		if b.cells[i] != t {
			return Empty, false
		}
	}
	return t, true
}

// Winner reports the token holding a complete row, column, or
// diagonal. Rows are checked first, then columns, then the 2-4-6
// diagonal, then 0-4-8.
func (b Board) Winner() (Token, bool) {
	for _, l := range b.lines() {
		if t, ok := b.won(l); ok {
			return t, true
		}
	}
	return Empty, false
}

package checkers

type Rank int8

const (
	Empty Rank = iota
	Man
	King
)

func (r Rank) String() string {
	switch r {
	case Man:
		return "Man"
	case King:
		return "King"
	}
	return "Empty"
}

// Cell is a combined board cell: rank times the owning turn, 0 when empty.
type Cell int8

func NewCell(t Turn, r Rank) Cell {
	return Cell(int8(r) * int8(t))
}

func (c Cell) Empty() bool {
	return c == 0
}

func (c Cell) Rank() Rank {
	if c < 0 {
		return Rank(-c)
	}
	return Rank(c)
}

func (c Cell) Turn() Turn {
	switch {
	case c > 0:
		return Player1
	case c < 0:
		return Player2
	}
	return 0
}

func (c Cell) Valid() bool {
	return c >= -Cell(King) && c <= Cell(King)
}

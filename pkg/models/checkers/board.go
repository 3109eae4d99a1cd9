package checkers

import (
	"fmt"
	"strings"
)

// Board is the combined grid, indexed [x][y]. It is a value: assigning it copies it.
type Board [BoardSize][BoardSize]Cell

func NewBoard(sides ...*Side) (newBoard Board) {
	for _, s := range sides {
		newBoard.merge(s)
	}
	return
}

// NewStartBoard returns the standard opening position.
func NewStartBoard() Board {
	return NewBoard(NewSide(Player1), NewSide(Player2))
}

// ParseBoard builds a board from rows of signed cells, cells[x][y].
func ParseBoard(cells [][]int) (b Board, err error) {
	if len(cells) != BoardSize {
		return b, ErrBoardShape
	}

	for i, column := range cells {
		if len(column) != BoardSize {
			return b, ErrBoardShape
		}
		for j, v := range column {
			if v < -int(King) || v > int(King) {
				return b, fmt.Errorf("%w: cell (%d, %d) = %d", ErrBoardShape, i, j, v)
			}
			b[i][j] = Cell(v)
		}
	}
	return
}

func (b Board) Cells() (cells [][]int) {
	cells = make([][]int, BoardSize)
	for i := range BoardSize {
		cells[i] = make([]int, BoardSize)
		for j := range BoardSize {
			cells[i][j] = int(b[i][j])
		}
	}
	return
}

// UpdateBoard recomputes the grid from both trackers.
func (b *Board) UpdateBoard(s1, s2 *Side) {
	*b = Board{}
	b.merge(s1)
	b.merge(s2)
}

func (b *Board) merge(s *Side) {
	for _, p := range Positions() {
		if r := s.Pieces[p.X][p.Y]; r != Empty {
			b[p.X][p.Y] = NewCell(s.Turn, r)
		}
	}
}

func (b Board) At(p Position) Cell {
	if !p.Valid() {
		return 0
	}
	return b[p.X][p.Y]
}

func (b *Board) Set(p Position, c Cell) {
	if p.Valid() {
		b[p.X][p.Y] = c
	}
}

// Count returns the pieces and the kings t has on the board.
func (b Board) Count(t Turn) (pieces, kings int) {
	for _, p := range Positions() {
		c := b[p.X][p.Y]
		if c.Empty() || c.Turn() != t {
			continue
		}
		pieces++
		if c.Rank() == King {
			kings++
		}
	}
	return
}

var cellSymbol = map[Cell]string{
	0:                      ".",
	NewCell(Player1, Man):  "x",
	NewCell(Player1, King): "X",
	NewCell(Player2, Man):  "o",
	NewCell(Player2, King): "O",
}

func (b Board) String() string {
	var builder strings.Builder
	builder.WriteString("  ")
	for i := range BoardSize {
		builder.WriteString(fmt.Sprintf(" %d", i))
	}
	builder.WriteString("\n")

	for j := range BoardSize {
		builder.WriteString(fmt.Sprintf("%d ", j))
		for i := range BoardSize {
			builder.WriteString(" " + cellSymbol[b[i][j]])
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

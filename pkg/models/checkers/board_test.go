package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartBoardFillsFourHomeRows(t *testing.T) {
	b := NewStartBoard()

	for _, turn := range Turns {
		pieces, kings := b.Count(turn)
		assert.Equal(t, 20, pieces, turn.String())
		assert.Zero(t, kings, turn.String())
	}

	assert.Equal(t, NewCell(Player1, Man), b.At(NewPosition(0, 0)))
	assert.Equal(t, NewCell(Player1, Man), b.At(NewPosition(3, 3)))
	assert.True(t, b.At(NewPosition(1, 0)).Empty())
	assert.True(t, b.At(NewPosition(4, 4)).Empty())
	assert.Equal(t, NewCell(Player2, Man), b.At(NewPosition(9, 9)))
	assert.Equal(t, NewCell(Player2, Man), b.At(NewPosition(0, 6)))
}

func TestUpdateBoardKeepsSidesDisjoint(t *testing.T) {
	s1, s2 := NewSide(Player1), NewSide(Player2)
	var b Board
	b.UpdateBoard(s1, s2)

	for _, p := range Positions() {
		r1, r2 := s1.Piece(p), s2.Piece(p)
		require.False(t, r1 != Empty && r2 != Empty, "both sides own %v", p)

		switch {
		case r1 != Empty:
			assert.Equal(t, NewCell(Player1, r1), b.At(p))
		case r2 != Empty:
			assert.Equal(t, NewCell(Player2, r2), b.At(p))
		default:
			assert.True(t, b.At(p).Empty())
		}
	}
}

func TestCellEncoding(t *testing.T) {
	c := NewCell(Player2, King)
	assert.Equal(t, Cell(-2), c)
	assert.Equal(t, King, c.Rank())
	assert.Equal(t, Player2, c.Turn())
	assert.Equal(t, Turn(0), Cell(0).Turn())
	assert.Equal(t, Cell(1), NewCell(Player1, Man))
}

func TestParseBoardRoundTripsCells(t *testing.T) {
	b := NewStartBoard()
	parsed, err := ParseBoard(b.Cells())
	require.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestParseBoardRejectsBadShape(t *testing.T) {
	_, err := ParseBoard(make([][]int, 9))
	assert.ErrorIs(t, err, ErrBoardShape)

	cells := NewStartBoard().Cells()
	cells[4][4] = 3
	_, err = ParseBoard(cells)
	assert.ErrorIs(t, err, ErrBoardShape)
}

func TestOutOfRangeReadsAreEmpty(t *testing.T) {
	b := NewStartBoard()
	assert.True(t, b.At(NewPosition(-1, 0)).Empty())
	assert.True(t, b.At(NewPosition(0, 10)).Empty())

	b.Set(NewPosition(10, 10), NewCell(Player1, King))
	assert.Equal(t, NewStartBoard(), b)
}

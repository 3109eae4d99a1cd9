package checkers

import "fmt"

const (
	BoardSize = 10
	HomeRows  = 4
)

// Position is a (column, row) coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var NoPosition = Position{X: -1, Y: -1}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Valid() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Dark reports whether p is a playable square.
func (p Position) Dark() bool {
	return (p.X+p.Y)%2 == 0
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func Middle(from, to Position) Position {
	return Position{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
}

var positions = func() (positions []Position) {
	for i := range BoardSize {
		for j := range BoardSize {
			positions = append(positions, NewPosition(i, j))
		}
	}
	return
}()

// Positions lists every cell, column-major, matching the scan order of the grids.
func Positions() []Position {
	return positions
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

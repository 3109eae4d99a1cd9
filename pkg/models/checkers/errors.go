package checkers

import "errors"

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game over")
	ErrBoardShape  = errors.New("board must be 10x10 cells in [-2, 2]")
)

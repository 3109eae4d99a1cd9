package logic

import "errors"

var (
	ErrDepthOutOfRange = errors.New("search depth out of range")
	ErrUnknownTurn     = errors.New("unknown turn")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrBadGameUid      = errors.New("malformed game uid")
	ErrBadPosition     = errors.New("position off the board")
)

package assess

import (
	"math"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
)

const (
	DefaultDepth = 4
	INF          = math.MaxInt32
)

// Assess is the static evaluation of b from turn's point of view:
// the piece count difference plus the king count difference.
func Assess(b checkers.Board, turn checkers.Turn) int {
	own, ownKings := b.Count(turn)
	enemy, enemyKings := b.Count(turn.Opponent())
	return own - enemy + ownKings - enemyKings
}

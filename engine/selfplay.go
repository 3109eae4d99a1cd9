package main

import (
	"math/rand/v2"

	"github.com/HuXin0817/checkers/pkg/assess"
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/zeromicro/go-zero/core/logx"
)

type Result struct {
	Winner   checkers.Turn
	Finished bool
	Plies    int
	Nodes    int64
}

// playGame plays one engine game. The first opening plies are drawn at random
// from the legal moves so repeated games differ.
func playGame(c Config, first checkers.Turn, r *rand.Rand) (result Result) {
	g := checkers.NewGame(first)

	for g.Plies < c.MaxPlies {
		if winner, over := g.Winner(); over {
			result.Winner, result.Finished = winner, true
			break
		}

		var m checkers.Move
		if g.Plies < c.Opening {
			moves := g.LegalMoves()
			m = moves[r.IntN(len(moves))]
		} else {
			mm := assess.NewMinimax(g.NowPlayer)
			var ok bool
			if g.Context.Chained {
				_, m, ok = mm.Choose(g.Board, g.LegalMoves(), c.Depth[g.NowPlayer])
			} else {
				_, m, ok = mm.Search(g.Board, c.Depth[g.NowPlayer])
			}
			result.Nodes += mm.Nodes()
			if !ok {
				break
			}
		}

		if !commit(g, m) {
			result.Plies = g.Plies
			return
		}
	}

	if !result.Finished {
		result.Winner, result.Finished = g.Winner()
	}
	result.Plies = g.Plies
	return
}

// commit plays m on g and reports whether the game can go on.
func commit(g *checkers.Game, m checkers.Move) bool {
	if _, err := g.Play(m); err != nil {
		logx.Errorf("self-play stopped after %d plies: %v", g.Plies, err)
		return false
	}
	return true
}

type Tally struct {
	Wins       map[checkers.Turn]int
	Unfinished int
	Plies      int
	Nodes      int64
}

func NewTally() *Tally {
	return &Tally{Wins: make(map[checkers.Turn]int, len(checkers.Turns))}
}

func (t *Tally) Add(r Result) {
	if r.Finished {
		t.Wins[r.Winner]++
	} else {
		t.Unfinished++
	}
	t.Plies += r.Plies
	t.Nodes += r.Nodes
}

func (t *Tally) Games() int {
	return t.Wins[checkers.Player1] + t.Wins[checkers.Player2] + t.Unfinished
}

package main

import (
	"math/rand/v2"
	"testing"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/stretchr/testify/assert"
)

func testConfig(maxPlies, opening int) Config {
	return Config{
		Games:    1,
		Depth:    map[checkers.Turn]int{checkers.Player1: 1, checkers.Player2: 1},
		MaxPlies: maxPlies,
		Opening:  opening,
	}
}

func TestPlayGameStopsAtMaxPlies(t *testing.T) {
	r := rand.New(rand.NewPCG(817, 0))
	result := playGame(testConfig(6, 2), checkers.Player1, r)

	assert.Equal(t, 6, result.Plies)
	assert.False(t, result.Finished)
	assert.Positive(t, result.Nodes)
}

func TestPlayGameIsReproducible(t *testing.T) {
	c := testConfig(40, 4)
	a := playGame(c, checkers.Player2, rand.New(rand.NewPCG(1, 2)))
	b := playGame(c, checkers.Player2, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Add(Result{Winner: checkers.Player1, Finished: true, Plies: 80, Nodes: 10})
	tally.Add(Result{Winner: checkers.Player2, Finished: true, Plies: 60, Nodes: 5})
	tally.Add(Result{Plies: 300})

	assert.Equal(t, 1, tally.Wins[checkers.Player1])
	assert.Equal(t, 1, tally.Wins[checkers.Player2])
	assert.Equal(t, 1, tally.Unfinished)
	assert.Equal(t, 3, tally.Games())
	assert.Equal(t, 440, tally.Plies)
	assert.Equal(t, int64(15), tally.Nodes)
}

func TestCommitRejectsIllegalMove(t *testing.T) {
	g := checkers.NewGame(checkers.Player1)
	before := g.Board

	assert.False(t, commit(g, checkers.NewMove(checkers.NewPosition(1, 3), checkers.NewPosition(1, 4))))
	assert.Equal(t, before, g.Board)
	assert.Zero(t, g.Plies)

	assert.True(t, commit(g, checkers.NewMove(checkers.NewPosition(1, 3), checkers.NewPosition(2, 4))))
	assert.Equal(t, 1, g.Plies)
}

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := parseMove("2,3 3,4")
	require.NoError(t, err)
	assert.Equal(t, checkers.NewMove(checkers.NewPosition(2, 3), checkers.NewPosition(3, 4)), m)

	m, err = parseMove(" (1, 3) -> (2, 4) ")
	require.NoError(t, err)
	assert.Equal(t, checkers.NewPosition(2, 4), m.To)

	_, err = parseMove("2,3")
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = parseMove("")
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 4,5")
	require.NoError(t, err)
	assert.Equal(t, checkers.NewPosition(4, 5), p)

	_, err = parsePosition("4,5 6")
	assert.ErrorIs(t, err, ErrBadInput)
}

func endgame() *checkers.Game {
	var b checkers.Board
	b.Set(checkers.NewPosition(2, 2), checkers.NewCell(checkers.Player1, checkers.Man))
	b.Set(checkers.NewPosition(3, 3), checkers.NewCell(checkers.Player2, checkers.Man))
	return checkers.NewGameFromBoard(b, checkers.Player1)
}

func TestRunHumanCapturesToWin(t *testing.T) {
	AI1, AI2 = model.Off, model.Off

	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader("nonsense\nh 2,2\n2,2 3,2\n2,2 4,4\n"))
	g := endgame()

	require.NoError(t, run(g, in, &out))

	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, checkers.Player1, winner)
	assert.Contains(t, out.String(), "captured (3, 3)")
	assert.Contains(t, out.String(), "Player1 wins")
	assert.Contains(t, out.String(), checkers.ErrInvalidMove.Error())
}

func TestRunAIFindsCapture(t *testing.T) {
	AI1, AI2, Depth = model.On, model.Off, 2

	var out bytes.Buffer
	g := endgame()

	require.NoError(t, run(g, bufio.NewScanner(strings.NewReader("")), &out))
	assert.Contains(t, out.String(), "Player1 (AI) plays")
	assert.Contains(t, out.String(), "Player1 wins")
}

func TestRunQuits(t *testing.T) {
	AI1, AI2 = model.Off, model.Off

	g := checkers.NewGame(checkers.Player1)
	require.NoError(t, run(g, bufio.NewScanner(strings.NewReader("q\n")), &bytes.Buffer{}))
	assert.Zero(t, g.Plies)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/logrusorgru/aurora"
)

func symbol(c checkers.Cell, highlight bool) aurora.Value {
	var v aurora.Value
	switch c {
	case checkers.NewCell(checkers.Player1, checkers.Man):
		v = aurora.Red("x")
	case checkers.NewCell(checkers.Player1, checkers.King):
		v = aurora.Bold(aurora.Red("X"))
	case checkers.NewCell(checkers.Player2, checkers.Man):
		v = aurora.Cyan("o")
	case checkers.NewCell(checkers.Player2, checkers.King):
		v = aurora.Bold(aurora.Cyan("O"))
	default:
		v = aurora.Gray(12, ".")
	}

	if highlight {
		v = aurora.BgYellow(v)
	}
	return v
}

func render(w io.Writer, g *checkers.Game, highlights ...checkers.Position) {
	marked := make(map[checkers.Position]bool, len(highlights))
	for _, p := range highlights {
		marked[p] = true
	}

	var sb strings.Builder
	for y := checkers.BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y)
		for x := range checkers.BoardSize {
			p := checkers.NewPosition(x, y)
			fmt.Fprintf(&sb, " %v", symbol(g.At(p), marked[p]))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for x := range checkers.BoardSize {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteByte('\n')

	scoreboard := g.Scoreboard()
	for _, t := range checkers.Turns {
		s := scoreboard[t]
		line := fmt.Sprintf("%v: left %d  eaten %d  kings %d", t, s.Left, s.Eaten, s.Kings)
		if t == g.NowPlayer {
			fmt.Fprintf(&sb, "%v\n", aurora.Bold(line))
		} else {
			fmt.Fprintln(&sb, line)
		}
	}

	if g.Context.Chained {
		fmt.Fprintf(&sb, "%v must keep capturing from %v\n", g.NowPlayer, g.Context.LastTo)
	}

	_, _ = io.WriteString(w, sb.String())
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HuXin0817/checkers/pkg/assess"
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/logrusorgru/aurora"
)

const help = "moves: x,y x,y    destinations: h x,y    quit: q"

func main() {
	initConfig()
	g := checkers.NewGame(First)

	fmt.Println(help)
	if err := run(g, bufio.NewScanner(os.Stdin), os.Stdout); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(g *checkers.Game, in *bufio.Scanner, out io.Writer) error {
	render(out, g)

	for !g.Over() {
		var (
			m   checkers.Move
			err error
		)

		if isAI(g.NowPlayer) {
			var ok bool
			if _, m, ok = assess.BestMove(g, Depth); !ok {
				break
			}
			fmt.Fprintf(out, "%v (AI) plays %v\n", g.NowPlayer, m)
		} else {
			fmt.Fprintf(out, "%v> ", g.NowPlayer)
			if !in.Scan() {
				if err = in.Err(); err != nil {
					return err
				}
				return io.EOF
			}

			line := strings.TrimSpace(in.Text())
			switch {
			case line == "q":
				return nil
			case strings.HasPrefix(line, "h"):
				p, err := parsePosition(line[1:])
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				render(out, g, g.Destinations(p)...)
				continue
			}

			if m, err = parseMove(line); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		}

		o, err := g.Play(m)
		if err != nil {
			fmt.Fprintln(out, aurora.Red(err.Error()))
			continue
		}
		if o.Kind == checkers.Capture {
			fmt.Fprintf(out, "captured %v\n", o.Removed)
		}
		render(out, g)
	}

	if winner, ok := g.Winner(); ok {
		fmt.Fprintf(out, "%v\n", aurora.Green(fmt.Sprintf("%v wins", winner)))
	}
	return nil
}

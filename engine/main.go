package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/model"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	c := initConfig()
	logx.Infof("self-play: %d games, depth %d vs %d, seed %d", c.Games, c.Depth[checkers.Player1], c.Depth[checkers.Player2], c.Seed)

	r := rand.New(rand.NewPCG(c.Seed, c.Seed>>1))
	tally := NewTally()
	bar := model.NewBar(c.Games, "self-play")

	start := time.Now()
	for i := range c.Games {
		first := checkers.Turns[i%len(checkers.Turns)]
		tally.Add(playGame(c, first, r))
		bar.Describe(fmt.Sprintf("P1 %d  P2 %d  unfinished %d", tally.Wins[checkers.Player1], tally.Wins[checkers.Player2], tally.Unfinished))
		bar.Add(1)
	}
	bar.Close()

	printTally(tally, time.Since(start))
}

func printTally(t *Tally, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("%v %v\n", aurora.Red("Player1 wins:"), aurora.Bold(t.Wins[checkers.Player1]))
	fmt.Printf("%v %v\n", aurora.Cyan("Player2 wins:"), aurora.Bold(t.Wins[checkers.Player2]))
	fmt.Printf("%v %v\n", aurora.Yellow("unfinished:  "), aurora.Bold(t.Unfinished))

	if games := t.Games(); games > 0 {
		fmt.Printf("%d plies per game, %d nodes in %v\n", t.Plies/games, t.Nodes, elapsed.Round(time.Millisecond))
	}
}

package main

import (
	"flag"
	"math/rand/v2"

	"github.com/HuXin0817/checkers/pkg/assess"
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/model"
)

var (
	AI1Conf   = flag.String("AI1", "OFF", "AI plays Player1")
	AI2Conf   = flag.String("AI2", "ON", "AI plays Player2")
	DepthConf = flag.Int("Depth", assess.DefaultDepth, "AI search depth")
	FirstConf = flag.String("First", "random", "Player1, Player2 or random")

	AI1   model.Config
	AI2   model.Config
	Depth int
	First checkers.Turn
)

func initConfig() {
	flag.Parse()
	AI1 = model.NewConfig(*AI1Conf)
	AI2 = model.NewConfig(*AI2Conf)

	Depth = *DepthConf
	if Depth < 1 {
		Depth = 1
	}

	var ok bool
	if First, ok = checkers.ParseTurn(*FirstConf); !ok {
		First = checkers.Turns[rand.IntN(len(checkers.Turns))]
	}
}

func isAI(t checkers.Turn) model.Config {
	if t == checkers.Player1 {
		return AI1
	}
	return AI2
}

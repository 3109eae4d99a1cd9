package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/checkers/pkg/assess"
	"github.com/HuXin0817/checkers/pkg/models/checkers"
)

var (
	GamesConf    = flag.Int("Games", 20, "number of games to play")
	Depth1Conf   = flag.Int("Depth1", assess.DefaultDepth, "Player1 search depth")
	Depth2Conf   = flag.Int("Depth2", assess.DefaultDepth, "Player2 search depth")
	MaxPliesConf = flag.Int("MaxPlies", 300, "plies before a game is called unfinished")
	OpeningConf  = flag.Int("Opening", 4, "random plies played before the engines take over")
	SeedConf     = flag.Uint64("Seed", uint64(time.Now().UnixNano()), "random seed for openings")
)

type Config struct {
	Games    int
	Depth    map[checkers.Turn]int
	MaxPlies int
	Opening  int
	Seed     uint64
}

func initConfig() Config {
	flag.Parse()
	return Config{
		Games: max(*GamesConf, 0),
		Depth: map[checkers.Turn]int{
			checkers.Player1: max(*Depth1Conf, 1),
			checkers.Player2: max(*Depth2Conf, 1),
		},
		MaxPlies: max(*MaxPliesConf, 1),
		Opening:  max(*OpeningConf, 0),
		Seed:     *SeedConf,
	}
}

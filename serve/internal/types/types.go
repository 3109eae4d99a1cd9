package types

import (
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
)

type CreateGameRequest struct {
	AI    string `json:"ai"`
	First string `json:"first"`
	Depth int    `json:"depth"`
}

type GameResponse struct {
	GameUid    message.GameUid           `json:"game_uid"`
	Board      [][]int                   `json:"board"`
	Turn       string                    `json:"turn"`
	AI         string                    `json:"ai"`
	Depth      int                       `json:"depth"`
	Context    checkers.TurnContext      `json:"context"`
	Plies      int                       `json:"plies"`
	Scoreboard map[string]checkers.Score `json:"scoreboard"`
	LegalMoves []checkers.Move           `json:"legal_moves"`
	Over       bool                      `json:"over"`
	Winner     string                    `json:"winner,omitempty"`
	AIMoves    []checkers.Move           `json:"ai_moves,omitempty"`
}

type DestinationsRequest struct {
	X *int `form:"x" binding:"required"`
	Y *int `form:"y" binding:"required"`
}

type DestinationsResponse struct {
	From         checkers.Position   `json:"from"`
	Destinations []checkers.Position `json:"destinations"`
}

type PlayRequest struct {
	From checkers.Position `json:"from"`
	To   checkers.Position `json:"to"`
}

type PlayResponse struct {
	Outcome string             `json:"outcome"`
	Removed *checkers.Position `json:"removed,omitempty"`
	Game    GameResponse       `json:"game"`
}

type AssessRequest struct {
	Board [][]int `json:"board"`
	Turn  string  `json:"turn"`
	Depth int     `json:"depth"`
}

type AssessResponse struct {
	Move   checkers.Move `json:"move"`
	Score  int           `json:"score"`
	Ok     bool          `json:"ok"`
	Nodes  int64         `json:"nodes"`
	Cached bool          `json:"cached"`
}

type RecentResponse struct {
	Records []message.AssessRecord `json:"records"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

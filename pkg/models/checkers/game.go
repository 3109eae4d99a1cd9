package checkers

import "fmt"

// Game sequences turns between the two trackers and the combined board.
type Game struct {
	Board
	Player1   *Side
	Player2   *Side
	NowPlayer Turn
	Context   TurnContext
	Plies     int
}

func NewGame(first Turn) *Game {
	if !first.Valid() {
		first = Player1
	}

	g := &Game{
		Player1:   NewSide(Player1),
		Player2:   NewSide(Player2),
		NowPlayer: first,
		Context:   NewTurnContext(),
	}
	g.Board.UpdateBoard(g.Player1, g.Player2)
	return g
}

// NewGameFromBoard seeds both trackers from b, with t to move.
func NewGameFromBoard(b Board, t Turn) *Game {
	g := &Game{
		Player1:   NewEmptySide(Player1),
		Player2:   NewEmptySide(Player2),
		NowPlayer: t,
		Context:   NewTurnContext(),
	}

	for _, p := range Positions() {
		if c := b.At(p); !c.Empty() {
			g.Side(c.Turn()).Place(p, c.Rank())
		}
	}
	g.Board.UpdateBoard(g.Player1, g.Player2)
	return g
}

func (g *Game) Side(t Turn) *Side {
	if t == Player2 {
		return g.Player2
	}
	return g.Player1
}

func (g *Game) Reset(first Turn) {
	*g = *NewGame(first)
}

// Play commits m for the side to move. The turn passes unless m captured and the
// same piece can capture again from its destination.
func (g *Game) Play(m Move) (o MoveOutcome, err error) {
	if g.Over() {
		return InvalidOutcome, ErrGameOver
	}

	player := g.Side(g.NowPlayer)
	o = player.Move(m.From, m.To, &g.Board, g.Context, true)
	if !o.Valid() {
		return o, fmt.Errorf("%w: %v by %v", ErrInvalidMove, m, g.NowPlayer)
	}

	g.Side(g.NowPlayer.Opponent()).UpdateDead(o)
	g.Board.UpdateBoard(g.Player1, g.Player2)
	g.Plies++

	if o.Kind == Capture && len(g.Board.ForcedMovesFrom(m.To)) > 0 {
		g.Context = ChainContext(m)
		return o, nil
	}

	g.Context = NewTurnContext()
	g.NowPlayer = g.NowPlayer.Opponent()
	return o, nil
}

// Check validates m for the side to move without committing it.
func (g *Game) Check(m Move) MoveOutcome {
	return g.Side(g.NowPlayer).Move(m.From, m.To, &g.Board, g.Context, false)
}

// Destinations lists the cells the piece on from may legally move to.
func (g *Game) Destinations(from Position) (destinations []Position) {
	for _, to := range Positions() {
		if g.Check(NewMove(from, to)).Valid() {
			destinations = append(destinations, to)
		}
	}
	return
}

func (g *Game) LegalMoves() []Move {
	return g.Board.LegalMoves(g.NowPlayer, g.Context)
}

// Winner reports the side whose opponent has no piece or no legal move on its turn.
func (g *Game) Winner() (winner Turn, ok bool) {
	for _, t := range Turns {
		if left, _ := g.Side(t).Count(); left == 0 {
			return t.Opponent(), true
		}
	}

	if !g.Board.HasLegalMoves(g.NowPlayer, g.Context) {
		return g.NowPlayer.Opponent(), true
	}
	return 0, false
}

func (g *Game) Over() bool {
	_, over := g.Winner()
	return over
}

type Score struct {
	Left  int `json:"left"`
	Eaten int `json:"eaten"`
	Kings int `json:"kings"`
}

type Scoreboard map[Turn]Score

func (g *Game) Scoreboard() Scoreboard {
	board := make(Scoreboard, len(Turns))
	for _, t := range Turns {
		s := g.Side(t)
		left, kings := s.Count()
		board[t] = Score{Left: left, Eaten: s.Dead, Kings: kings}
	}
	return board
}

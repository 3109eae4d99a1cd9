package checkers

// Side tracks where one player's pieces are, indexed [x][y] like Board.
type Side struct {
	Turn   Turn
	Pieces [BoardSize][BoardSize]Rank
	Dead   int
}

// NewSide returns t's tracker in the opening position.
func NewSide(t Turn) *Side {
	s := &Side{Turn: t}
	s.Reset()
	return s
}

func NewEmptySide(t Turn) *Side {
	return &Side{Turn: t}
}

// Reset fills the dark squares of t's four home rows.
func (s *Side) Reset() {
	s.Pieces = [BoardSize][BoardSize]Rank{}
	s.Dead = 0

	for _, p := range Positions() {
		home := p.Y < HomeRows
		if s.Turn == Player2 {
			home = p.Y >= BoardSize-HomeRows
		}

		if home && p.Dark() {
			s.Pieces[p.X][p.Y] = Man
		}
	}
}

func (s *Side) Piece(p Position) Rank {
	if !p.Valid() {
		return Empty
	}
	return s.Pieces[p.X][p.Y]
}

func (s *Side) Place(p Position, r Rank) {
	if p.Valid() {
		s.Pieces[p.X][p.Y] = r
	}
}

// Count returns the pieces left and how many of them are kings.
func (s *Side) Count() (left, kings int) {
	for _, p := range Positions() {
		switch s.Pieces[p.X][p.Y] {
		case Man:
			left++
		case King:
			left++
			kings++
		}
	}
	return
}

// Move validates from -> to for this side against board. With commit set the
// tracker and board are updated, promotion included; otherwise nothing changes.
func (s *Side) Move(from, to Position, board *Board, ctx TurnContext, commit bool) MoveOutcome {
	if s.Piece(from) == Empty {
		return InvalidOutcome
	}

	m := NewMove(from, to)
	o := board.Check(s.Turn, m, ctx)
	if !o.Valid() || !commit {
		return o
	}

	rank := s.Piece(from)
	if board.Apply(m, o) {
		rank = King
	}

	s.Place(from, Empty)
	s.Place(to, rank)
	return o
}

// UpdateDead removes the piece captured by o, if it is ours, and returns how many were lost.
func (s *Side) UpdateDead(o MoveOutcome) int {
	if o.Kind != Capture || s.Piece(o.Removed) == Empty {
		return 0
	}

	s.Place(o.Removed, Empty)
	s.Dead++
	return 1
}

func (s *Side) CheckForcedMove(board Board) []Move {
	return board.ForcedMoves(s.Turn)
}

func (s *Side) HasForcedMoves(board Board) bool {
	return board.HasForcedMoves(s.Turn)
}

func (s *Side) Clone() *Side {
	c := *s
	return &c
}

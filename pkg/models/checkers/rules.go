package checkers

// rowDirections are the row steps a piece may travel along.
func rowDirections(t Turn, r Rank) []int {
	if r == King {
		return []int{1, -1}
	}
	return []int{t.Forward()}
}

func canTravel(t Turn, r Rank, dy int) bool {
	for _, d := range rowDirections(t, r) {
		if d == dy {
			return true
		}
	}
	return false
}

// Check decides whether t may play m on b. It never mutates b.
func (b Board) Check(t Turn, m Move, ctx TurnContext) MoveOutcome {
	if !m.From.Valid() || !m.To.Valid() {
		return InvalidOutcome
	}

	piece := b.At(m.From)
	if piece.Empty() || piece.Turn() != t {
		return InvalidOutcome
	}

	if !b.At(m.To).Empty() {
		return InvalidOutcome
	}

	if ctx.Chained && m.From != ctx.LastTo {
		return InvalidOutcome
	}

	dx := m.To.X - m.From.X
	dy := m.To.Y - m.From.Y
	if abs(dx) != abs(dy) || !canTravel(t, piece.Rank(), sign(dy)) {
		return InvalidOutcome
	}

	switch abs(dx) {
	case 1:
		if ctx.Chained || b.HasForcedMoves(t) {
			return InvalidOutcome
		}
		return SimpleOutcome()
	case 2:
		mid := Middle(m.From, m.To)
		if c := b.At(mid); c.Empty() || c.Turn() != t.Opponent() {
			return InvalidOutcome
		}
		return CaptureOutcome(mid)
	}

	return InvalidOutcome
}

// Apply commits a move already accepted by Check and reports whether the piece promoted.
func (b *Board) Apply(m Move, o MoveOutcome) (promoted bool) {
	if !o.Valid() {
		return false
	}

	piece := b.At(m.From)
	b.Set(m.From, 0)
	if o.Kind == Capture {
		b.Set(o.Removed, 0)
	}

	t := piece.Turn()
	if piece.Rank() == Man && m.To.Y == t.FarRow() {
		piece = NewCell(t, King)
		promoted = true
	}

	b.Set(m.To, piece)
	return
}

// Play checks and applies m on a copy of b.
func (b Board) Play(t Turn, m Move, ctx TurnContext) (next Board, o MoveOutcome) {
	next = b
	if o = b.Check(t, m, ctx); o.Valid() {
		next.Apply(m, o)
	}
	return
}

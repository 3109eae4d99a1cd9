package checkers

// jumps lists the captures available to the piece standing on from.
func (b Board) jumps(from Position) (moves []Move) {
	piece := b.At(from)
	if piece.Empty() {
		return
	}

	t := piece.Turn()
	for _, dy := range rowDirections(t, piece.Rank()) {
		for _, dx := range [...]int{-1, 1} {
			to := from.Add(2*dx, 2*dy)
			if !to.Valid() || !b.At(to).Empty() {
				continue
			}

			if c := b.At(from.Add(dx, dy)); !c.Empty() && c.Turn() == t.Opponent() {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return
}

// ForcedMoves lists every capture t may currently make.
func (b Board) ForcedMoves(t Turn) (moves []Move) {
	for _, p := range Positions() {
		if c := b[p.X][p.Y]; !c.Empty() && c.Turn() == t {
			moves = append(moves, b.jumps(p)...)
		}
	}
	return
}

func (b Board) HasForcedMoves(t Turn) bool {
	for _, p := range Positions() {
		if c := b[p.X][p.Y]; !c.Empty() && c.Turn() == t && len(b.jumps(p)) > 0 {
			return true
		}
	}
	return false
}

// ForcedMovesFrom lists the captures of the piece on p, used to continue a chain.
func (b Board) ForcedMovesFrom(p Position) []Move {
	return b.jumps(p)
}

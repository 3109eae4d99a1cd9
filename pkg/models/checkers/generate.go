package checkers

func (b Board) steps(from Position) (moves []Move) {
	piece := b.At(from)
	if piece.Empty() {
		return
	}

	for _, dy := range rowDirections(piece.Turn(), piece.Rank()) {
		for _, dx := range [...]int{-1, 1} {
			if to := from.Add(dx, dy); to.Valid() && b.At(to).Empty() {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return
}

// LegalMoves lists the moves t may make under ctx. Captures are mandatory.
func (b Board) LegalMoves(t Turn, ctx TurnContext) (moves []Move) {
	if ctx.Chained {
		if c := b.At(ctx.LastTo); c.Empty() || c.Turn() != t {
			return nil
		}
		return b.ForcedMovesFrom(ctx.LastTo)
	}

	if moves = b.ForcedMoves(t); len(moves) > 0 {
		return
	}

	for _, p := range Positions() {
		if c := b[p.X][p.Y]; !c.Empty() && c.Turn() == t {
			moves = append(moves, b.steps(p)...)
		}
	}
	return
}

func (b Board) HasLegalMoves(t Turn, ctx TurnContext) bool {
	return len(b.LegalMoves(t, ctx)) > 0
}

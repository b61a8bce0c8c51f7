package shogi

// ApplyMove relocates the side-to-move's piece from from to to, optionally
// promoting it on arrival. The board is left untouched on any failure:
// self-check is detected by simulating the placement and reverting it
// before anything is committed.
func (b *Board) ApplyMove(from, to Square, promote bool) error {
	var piece = b.PieceAt(from)
	if piece.Empty() || piece.Owner != b.turn {
		return ErrNotYourPiece
	}
	if !containsSquare(b.PseudoMoves(piece, from), to) {
		return ErrIllegalDestination
	}
	if promote && !canPromoteMove(piece, from.Row, to.Row) {
		return ErrPromotionNotAllowed
	}
	if !promote && mustPromoteAt(piece, to.Row) {
		return ErrMustPromote
	}

	// simulate, test for self-check, revert on failure
	var captured = b.PieceAt(to)
	b.SetPiece(to, piece)
	b.ClearSquare(from)
	if b.IsInCheck(b.turn) {
		b.SetPiece(from, piece)
		b.SetPiece(to, captured)
		return ErrSelfCheck
	}

	if !captured.Empty() {
		b.hands[b.turn] = append(b.hands[b.turn], Piece{Kind: captured.Kind.Demoted(), Owner: b.turn})
	}
	if promote {
		piece.Kind = piece.Kind.Promoted()
		b.SetPiece(to, piece)
	}

	b.history = append(b.history, MoveRecord{
		Move:     NewBoardMove(from, to, promote),
		Player:   b.turn,
		Piece:    piece.Kind,
		Captured: captured.Kind,
	})
	b.turn = b.turn.Opponent()
	return nil
}

// ApplyDrop takes one hand piece of the base kind and places it on the
// empty square to, subject to the placement restrictions and the same
// simulate-then-revert self-check discipline as board moves.
func (b *Board) ApplyDrop(kind PieceKind, to Square) error {
	if kind.IsPromoted() || kind == King {
		return ErrInvalidPieceKind
	}
	if !to.Valid() {
		return ErrOutOfBounds
	}
	if !b.PieceAt(to).Empty() {
		return ErrOccupiedSquare
	}
	if b.HandCount(b.turn, kind) == 0 {
		return ErrPieceUnavailableForDrop
	}
	if err := b.checkDropRestrictions(kind, to, b.turn); err != nil {
		return err
	}

	var piece = Piece{Kind: kind, Owner: b.turn}
	b.SetPiece(to, piece)
	if b.IsInCheck(b.turn) {
		b.ClearSquare(to)
		return ErrSelfCheck
	}

	b.removeFromHand(b.turn, kind)
	b.history = append(b.history, MoveRecord{
		Move:   NewDrop(kind, to),
		Player: b.turn,
		Piece:  kind,
	})
	b.turn = b.turn.Opponent()
	return nil
}

// checkDropRestrictions enforces pawn-file uniqueness (nifu) and the
// immobility ranks: pawns and lances may not land on the farthest rank,
// knights on the two farthest.
func (b *Board) checkDropRestrictions(kind PieceKind, to Square, p Player) error {
	if kind == Pawn {
		for row := 0; row < Size; row++ {
			var existing = b.grid[index(row, to.Col)]
			if existing.Kind == Pawn && existing.Owner == p {
				return ErrDropRestricted
			}
		}
	}
	if mustPromoteAt(Piece{Kind: kind, Owner: p}, to.Row) {
		return ErrDropRestricted
	}
	return nil
}

// removeFromHand removes the first hand piece of the kind, preserving the
// order of the rest.
func (b *Board) removeFromHand(p Player, kind PieceKind) {
	for i, piece := range b.hands[p] {
		if piece.Kind == kind {
			b.hands[p] = append(b.hands[p][:i], b.hands[p][i+1:]...)
			return
		}
	}
}

// Apply dispatches a tagged move to ApplyMove or ApplyDrop.
func (b *Board) Apply(m Move) error {
	switch m.Type {
	case MoveBoard:
		return b.ApplyMove(m.From, m.To, m.Promote)
	case MoveDrop:
		return b.ApplyDrop(m.Piece, m.To)
	}
	return ErrInvalidPieceKind
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

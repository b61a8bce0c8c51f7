package shogi

// AllLegalMoves enumerates every move the player could actually apply:
// board moves whose simulated application leaves the own king out of check,
// plus every legal drop of every held base kind. Candidate simulation uses
// set/revert only, so the board is bit-identical afterwards.
//
// Promotion variants follow the apply semantics: when promotion is optional
// both variants appear, when it is mandatory only the promoting one does.
func (b *Board) AllLegalMoves(p Player) []Move {
	var moves []Move

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var from = Square{Row: row, Col: col}
			var piece = b.PieceAt(from)
			if piece.Empty() || piece.Owner != p {
				continue
			}
			for _, to := range b.PseudoMoves(piece, from) {
				var captured = b.PieceAt(to)
				b.SetPiece(to, piece)
				b.ClearSquare(from)
				var selfCheck = b.IsInCheck(p)
				b.SetPiece(from, piece)
				b.SetPiece(to, captured)
				if selfCheck {
					continue
				}
				if !mustPromoteAt(piece, to.Row) {
					moves = append(moves, NewBoardMove(from, to, false))
				}
				if canPromoteMove(piece, from.Row, to.Row) {
					moves = append(moves, NewBoardMove(from, to, true))
				}
			}
		}
	}

	for _, kind := range b.handKinds(p) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				var to = Square{Row: row, Col: col}
				if !b.PieceAt(to).Empty() {
					continue
				}
				if b.checkDropRestrictions(kind, to, p) != nil {
					continue
				}
				b.SetPiece(to, Piece{Kind: kind, Owner: p})
				var selfCheck = b.IsInCheck(p)
				b.ClearSquare(to)
				if selfCheck {
					continue
				}
				moves = append(moves, NewDrop(kind, to))
			}
		}
	}

	return moves
}

// handKinds returns the distinct base kinds in the player's hand, in first
// capture order.
func (b *Board) handKinds(p Player) []PieceKind {
	var seen [PromotedPawn + 1]bool
	var kinds []PieceKind
	for _, piece := range b.hands[p] {
		if !seen[piece.Kind] {
			seen[piece.Kind] = true
			kinds = append(kinds, piece.Kind)
		}
	}
	return kinds
}

// LegalDestinations returns the self-check-filtered board-move destinations
// of the piece on from. Used for UI affordances and the mobility term.
func (b *Board) LegalDestinations(from Square) []Square {
	var piece = b.PieceAt(from)
	if piece.Empty() {
		return nil
	}
	var dests []Square
	for _, to := range b.PseudoMoves(piece, from) {
		var captured = b.PieceAt(to)
		b.SetPiece(to, piece)
		b.ClearSquare(from)
		if !b.IsInCheck(piece.Owner) {
			dests = append(dests, to)
		}
		b.SetPiece(from, piece)
		b.SetPiece(to, captured)
	}
	return dests
}

// DropSquares returns every square where the player could legally drop the
// base kind right now.
func (b *Board) DropSquares(kind PieceKind, p Player) []Square {
	if b.HandCount(p, kind) == 0 {
		return nil
	}
	var squares []Square
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var to = Square{Row: row, Col: col}
			if !b.PieceAt(to).Empty() {
				continue
			}
			if b.checkDropRestrictions(kind, to, p) != nil {
				continue
			}
			b.SetPiece(to, Piece{Kind: kind, Owner: p})
			var selfCheck = b.IsInCheck(p)
			b.ClearSquare(to)
			if !selfCheck {
				squares = append(squares, to)
			}
		}
	}
	return squares
}

// IsCheckmate reports whether the player is in check with no legal move or
// drop that escapes it.
func (b *Board) IsCheckmate(p Player) bool {
	return b.IsInCheck(p) && len(b.AllLegalMoves(p)) == 0
}

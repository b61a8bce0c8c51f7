package shogi

// Pseudo-move generation: every square a piece could move to respecting
// board edges, blocking and capturing, ignoring check. Pure functions of
// (piece, square, board); the legality filter lives in legality.go.

type offset struct {
	dr, dc int
}

var (
	kingSteps   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	goldSteps   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}}
	silverSteps = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1}}
	knightSteps = []offset{{-2, -1}, {-2, 1}}
	rookRays    = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopRays  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// mirror flips a sente-viewpoint offset for gote so "forward" inverts.
func mirror(o offset, p Player) offset {
	if p == Sente {
		return o
	}
	return offset{dr: -o.dr, dc: o.dc}
}

// PseudoMoves returns the pseudo-move set of the piece standing on sq.
func (b *Board) PseudoMoves(piece Piece, sq Square) []Square {
	switch piece.Kind {
	case King:
		return b.stepMoves(piece, sq, kingSteps)
	case Rook:
		return b.slideMoves(piece, sq, rookRays)
	case Bishop:
		return b.slideMoves(piece, sq, bishopRays)
	case Gold, PromotedSilver, PromotedKnight, PromotedLance, PromotedPawn:
		return b.stepMoves(piece, sq, goldSteps)
	case Silver:
		return b.stepMoves(piece, sq, silverSteps)
	case Knight:
		return b.stepMoves(piece, sq, knightSteps)
	case Lance:
		return b.slideMoves(piece, sq, []offset{{-1, 0}})
	case Pawn:
		return b.stepMoves(piece, sq, []offset{{-1, 0}})
	case PromotedRook:
		return append(b.slideMoves(piece, sq, rookRays), b.stepMoves(piece, sq, bishopRays)...)
	case PromotedBishop:
		return append(b.slideMoves(piece, sq, bishopRays), b.stepMoves(piece, sq, rookRays)...)
	}
	return nil
}

func (b *Board) stepMoves(piece Piece, sq Square, steps []offset) []Square {
	var moves []Square
	for _, s := range steps {
		var o = mirror(s, piece.Owner)
		var to = Square{Row: sq.Row + o.dr, Col: sq.Col + o.dc}
		if !to.Valid() {
			continue
		}
		var target = b.PieceAt(to)
		if target.Empty() || target.Owner != piece.Owner {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves walks each ray square by square: empty squares are included,
// the first enemy square is included and ends the ray, a friendly square
// ends the ray excluded.
func (b *Board) slideMoves(piece Piece, sq Square, rays []offset) []Square {
	var moves []Square
	for _, r := range rays {
		var o = mirror(r, piece.Owner)
		for i := 1; i < Size; i++ {
			var to = Square{Row: sq.Row + o.dr*i, Col: sq.Col + o.dc*i}
			if !to.Valid() {
				break
			}
			var target = b.PieceAt(to)
			if target.Empty() {
				moves = append(moves, to)
				continue
			}
			if target.Owner != piece.Owner {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// canPromoteMove reports whether a move between the rows may carry promote.
func canPromoteMove(piece Piece, fromRow, toRow int) bool {
	if !piece.Kind.CanEverPromote() {
		return false
	}
	return promotionZone(piece.Owner, fromRow) || promotionZone(piece.Owner, toRow)
}

// mustPromoteAt reports whether the unpromoted piece would be stranded on
// toRow: pawns and lances on the farthest rank, knights on the two farthest.
func mustPromoteAt(piece Piece, toRow int) bool {
	switch piece.Kind {
	case Pawn, Lance:
		return toRow == lastRank(piece.Owner)
	case Knight:
		if piece.Owner == Sente {
			return toRow <= 1
		}
		return toRow >= Size-2
	}
	return false
}

// Package book holds a small static table of known opening move sequences,
// indexed by ply. Every suggestion is validated against the current board
// before it is handed out.
package book

import "github.com/reyamade/komago/pkg/shogi"

// maxBookPly caps how deep into the game the book is consulted.
const maxBookPly = 10

type line struct {
	from, to shogi.Square
}

func at(fr, fc, tr, tc int) line {
	return line{
		from: shogi.Square{Row: fr, Col: fc},
		to:   shogi.Square{Row: tr, Col: tc},
	}
}

// Static-rook development for sente and the mirrored replies for gote.
var senteLine = []line{
	at(6, 6, 5, 6), // advance the central pawn
	at(8, 6, 7, 7), // silver up
	at(8, 2, 7, 3), // silver up, other wing
	at(7, 7, 6, 6), // silver forward
	at(8, 5, 7, 6), // gold up
}

var goteLine = []line{
	at(2, 2, 3, 2), // mirror the central pawn
	at(2, 6, 3, 6),
	at(2, 4, 3, 4),
	at(0, 2, 1, 3), // silver up
	at(0, 6, 1, 5),
}

type Book struct {
	sente []line
	gote  []line
}

func New() *Book {
	return &Book{sente: senteLine, gote: goteLine}
}

// Lookup suggests the next book move for the player, or reports not found
// once the line is exhausted, the game has left book range, or the stored
// move is illegal in the actual position.
func (bk *Book) Lookup(b *shogi.Board, p shogi.Player) (shogi.Move, bool) {
	var ply = len(b.History())
	if ply >= maxBookPly || b.Turn() != p {
		return shogi.Move{}, false
	}

	var lines []line
	var index int
	if p == shogi.Sente {
		if ply%2 != 0 {
			return shogi.Move{}, false
		}
		lines = bk.sente
		index = ply / 2
	} else {
		if ply%2 == 0 {
			return shogi.Move{}, false
		}
		lines = bk.gote
		index = (ply - 1) / 2
	}
	if index < 0 || index >= len(lines) {
		return shogi.Move{}, false
	}

	var l = lines[index]
	if !bk.isLegal(b, p, l) {
		return shogi.Move{}, false
	}
	return shogi.NewBoardMove(l.from, l.to, false), true
}

// isLegal runs the stored move through the board's legality filter: right
// owner, reachable destination, and no self-check after application.
func (bk *Book) isLegal(b *shogi.Board, p shogi.Player, l line) bool {
	var piece = b.PieceAt(l.from)
	if piece.Empty() || piece.Owner != p {
		return false
	}
	var reachable = false
	for _, to := range b.PseudoMoves(piece, l.from) {
		if to == l.to {
			reachable = true
			break
		}
	}
	if !reachable {
		return false
	}
	for _, to := range b.LegalDestinations(l.from) {
		if to == l.to {
			return true
		}
	}
	return false
}

package shogi

import (
	"testing"
)

func TestInitialPosition(t *testing.T) {
	var b = NewBoard()
	if b.Turn() != Sente {
		t.Error("turn", b.Turn())
	}
	if len(b.Hand(Sente)) != 0 || len(b.Hand(Gote)) != 0 {
		t.Error("hands not empty")
	}

	var tests = []struct {
		sq    Square
		piece Piece
	}{
		{Square{0, 0}, Piece{Kind: Lance, Owner: Gote}},
		{Square{0, 4}, Piece{Kind: King, Owner: Gote}},
		{Square{1, 1}, Piece{Kind: Bishop, Owner: Gote}},
		{Square{1, 7}, Piece{Kind: Rook, Owner: Gote}},
		{Square{2, 5}, Piece{Kind: Pawn, Owner: Gote}},
		{Square{6, 3}, Piece{Kind: Pawn, Owner: Sente}},
		{Square{7, 1}, Piece{Kind: Rook, Owner: Sente}},
		{Square{7, 7}, Piece{Kind: Bishop, Owner: Sente}},
		{Square{8, 4}, Piece{Kind: King, Owner: Sente}},
		{Square{8, 8}, Piece{Kind: Lance, Owner: Sente}},
		{Square{4, 4}, Piece{}},
	}
	for i, test := range tests {
		if got := b.PieceAt(test.sq); got != test.piece {
			t.Error(i, test.sq, got)
		}
	}

	var count = 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !b.PieceAt(Square{Row: row, Col: col}).Empty() {
				count++
			}
		}
	}
	if count != 40 {
		t.Error("piece count", count)
	}
}

func TestPieceAtOutOfRange(t *testing.T) {
	var b = NewBoard()
	if !b.PieceAt(Square{Row: -1, Col: 0}).Empty() {
		t.Error("negative row")
	}
	if !b.PieceAt(Square{Row: 0, Col: 9}).Empty() {
		t.Error("column overflow")
	}
	b.SetPiece(Square{Row: 9, Col: 9}, Piece{Kind: Pawn, Owner: Sente}) // must not panic
}

func TestCloneIndependence(t *testing.T) {
	var b = NewBoard()
	b.hands[Sente] = append(b.hands[Sente], Piece{Kind: Pawn, Owner: Sente})

	var c = b.Clone()
	c.SetPiece(Square{Row: 4, Col: 4}, Piece{Kind: Gold, Owner: Gote})
	c.hands[Sente] = append(c.hands[Sente], Piece{Kind: Rook, Owner: Sente})
	c.turn = Gote

	if !b.PieceAt(Square{Row: 4, Col: 4}).Empty() {
		t.Error("grid shared with clone")
	}
	if len(b.Hand(Sente)) != 1 {
		t.Error("hand shared with clone", b.Hand(Sente))
	}
	if b.Turn() != Sente {
		t.Error("turn shared with clone")
	}
}

func TestFindKing(t *testing.T) {
	var b = NewBoard()
	var sq, ok = b.FindKing(Sente)
	if !ok || sq != (Square{Row: 8, Col: 4}) {
		t.Error("sente king", sq, ok)
	}
	sq, ok = b.FindKing(Gote)
	if !ok || sq != (Square{Row: 0, Col: 4}) {
		t.Error("gote king", sq, ok)
	}

	var empty = NewEmptyBoard()
	if _, ok := empty.FindKing(Sente); ok {
		t.Error("king found on empty board")
	}
	if empty.IsInCheck(Sente) {
		t.Error("check without a king")
	}
}

func TestIsInCheck(t *testing.T) {
	var b = NewEmptyBoard()
	b.SetPiece(Square{Row: 8, Col: 4}, Piece{Kind: King, Owner: Sente})
	b.SetPiece(Square{Row: 0, Col: 4}, Piece{Kind: Rook, Owner: Gote})
	if !b.IsInCheck(Sente) {
		t.Error("open file check missed")
	}

	// interpose a pawn: no check either way
	b.SetPiece(Square{Row: 4, Col: 4}, Piece{Kind: Pawn, Owner: Sente})
	if b.IsInCheck(Sente) {
		t.Error("check through blocker")
	}
	if b.IsInCheck(Gote) {
		t.Error("gote has no king to check")
	}
}

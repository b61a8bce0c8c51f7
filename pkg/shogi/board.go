package shogi

import "strings"

// Board owns the full game state: the 9x9 grid, both hands, the side to
// move and the append-only history. It is a value-ish type: Clone produces
// an independent deep copy cheap enough to discard per search branch.
type Board struct {
	grid    [Size * Size]Piece
	hands   [2][]Piece
	turn    Player
	history []MoveRecord
}

// NewBoard returns the canonical starting position with sente to move.
func NewBoard() *Board {
	var b = &Board{turn: Sente}
	b.setupInitialPosition()
	return b
}

// NewEmptyBoard returns a board with no pieces, for constructed positions.
func NewEmptyBoard() *Board {
	return &Board{turn: Sente}
}

func (b *Board) setupInitialPosition() {
	var backRank = []PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}

	// gote on top, rows 0-2
	for col, kind := range backRank {
		b.grid[index(0, col)] = Piece{Kind: kind, Owner: Gote}
	}
	b.grid[index(1, 1)] = Piece{Kind: Bishop, Owner: Gote}
	b.grid[index(1, 7)] = Piece{Kind: Rook, Owner: Gote}
	for col := 0; col < Size; col++ {
		b.grid[index(2, col)] = Piece{Kind: Pawn, Owner: Gote}
	}

	// sente on bottom, rows 6-8
	for col := 0; col < Size; col++ {
		b.grid[index(6, col)] = Piece{Kind: Pawn, Owner: Sente}
	}
	b.grid[index(7, 1)] = Piece{Kind: Rook, Owner: Sente}
	b.grid[index(7, 7)] = Piece{Kind: Bishop, Owner: Sente}
	for col, kind := range backRank {
		b.grid[index(8, col)] = Piece{Kind: kind, Owner: Sente}
	}
}

func index(row, col int) int {
	return row*Size + col
}

// PieceAt returns the piece on sq, or the empty piece for empty or
// out-of-range squares.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.grid[index(sq.Row, sq.Col)]
}

// SetPiece places p on sq. Out-of-range squares are ignored.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.grid[index(sq.Row, sq.Col)] = p
}

// ClearSquare empties sq.
func (b *Board) ClearSquare(sq Square) {
	b.SetPiece(sq, Piece{})
}

func (b *Board) Turn() Player {
	return b.turn
}

// History returns the applied-move log. The returned slice must be treated
// as read-only.
func (b *Board) History() []MoveRecord {
	return b.history
}

// Hand returns the player's captured pieces in capture order. Read-only.
func (b *Board) Hand(p Player) []Piece {
	return b.hands[p]
}

// HandCount returns how many pieces of the base kind the player holds.
func (b *Board) HandCount(p Player, kind PieceKind) int {
	var n = 0
	for _, piece := range b.hands[p] {
		if piece.Kind == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy sharing no state with the receiver.
func (b *Board) Clone() *Board {
	var c = &Board{
		grid: b.grid,
		turn: b.turn,
	}
	for p := range b.hands {
		if b.hands[p] != nil {
			c.hands[p] = append([]Piece(nil), b.hands[p]...)
		}
	}
	if b.history != nil {
		c.history = append([]MoveRecord(nil), b.history...)
	}
	return c
}

// FindKing scans the grid for the player's king. The second result is false
// if the king is absent; callers must tolerate that rather than crash.
func (b *Board) FindKing(p Player) (Square, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var piece = b.grid[index(row, col)]
			if piece.Kind == King && piece.Owner == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// IsInCheck reports whether any enemy pseudo-move reaches the player's king.
func (b *Board) IsInCheck(p Player) bool {
	var kingSq, ok = b.FindKing(p)
	if !ok {
		return false
	}
	var opponent = p.Opponent()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var piece = b.grid[index(row, col)]
			if piece.Empty() || piece.Owner != opponent {
				continue
			}
			for _, to := range b.PseudoMoves(piece, Square{Row: row, Col: col}) {
				if to == kingSq {
					return true
				}
			}
		}
	}
	return false
}

// String renders the grid for debugging, gote side on top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var piece = b.grid[index(row, col)]
			if piece.Empty() {
				sb.WriteString(" . ")
				continue
			}
			var mark = "v"
			if piece.Owner == Sente {
				mark = "^"
			}
			sb.WriteString(mark + kindLetter(piece.Kind) + " ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func kindLetter(k PieceKind) string {
	switch k.Demoted() {
	case King:
		return "K"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Gold:
		return "G"
	case Silver:
		return "S"
	case Knight:
		return "N"
	case Lance:
		return "L"
	case Pawn:
		return "P"
	}
	return "?"
}

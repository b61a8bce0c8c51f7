package shogi

import (
	"encoding/json"
	"fmt"
)

type MoveType int

const (
	MoveBoard MoveType = iota
	MoveDrop
)

// Move is a tagged union: a board move relocates the piece on From, a drop
// places a hand piece of the given base kind on To. Consumers switch on Type
// exhaustively.
type Move struct {
	Type    MoveType
	From    Square    // board move only
	To      Square
	Promote bool      // board move only
	Piece   PieceKind // drop only, base kind
}

func NewBoardMove(from, to Square, promote bool) Move {
	return Move{Type: MoveBoard, From: from, To: to, Promote: promote}
}

func NewDrop(kind PieceKind, to Square) Move {
	return Move{Type: MoveDrop, Piece: kind, To: to}
}

func (m Move) String() string {
	switch m.Type {
	case MoveBoard:
		var suffix = ""
		if m.Promote {
			suffix = "+"
		}
		return fmt.Sprintf("%d%d%d%d%s", m.From.Row, m.From.Col, m.To.Row, m.To.Col, suffix)
	case MoveDrop:
		return fmt.Sprintf("%s*%d%d", m.Piece, m.To.Row, m.To.Col)
	}
	return "none"
}

// wireMove is the boundary JSON shape. Coordinates are zero-based [row, col],
// row 0 at gote's home edge.
type wireMove struct {
	Kind    string  `json:"kind"`
	From    *[2]int `json:"from,omitempty"`
	To      [2]int  `json:"to"`
	Promote *bool   `json:"promote,omitempty"`
	Piece   string  `json:"piece,omitempty"`
}

func (m Move) MarshalJSON() ([]byte, error) {
	switch m.Type {
	case MoveBoard:
		var from = [2]int{m.From.Row, m.From.Col}
		var promote = m.Promote
		return json.Marshal(wireMove{
			Kind:    "move",
			From:    &from,
			To:      [2]int{m.To.Row, m.To.Col},
			Promote: &promote,
		})
	case MoveDrop:
		return json.Marshal(wireMove{
			Kind:  "drop",
			Piece: m.Piece.String(),
			To:    [2]int{m.To.Row, m.To.Col},
		})
	}
	return nil, fmt.Errorf("unknown move type %d", m.Type)
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var w wireMove
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "move":
		if w.From == nil {
			return fmt.Errorf("board move without from square")
		}
		m.Type = MoveBoard
		m.From = Square{Row: w.From[0], Col: w.From[1]}
		m.To = Square{Row: w.To[0], Col: w.To[1]}
		m.Promote = w.Promote != nil && *w.Promote
		m.Piece = NoPiece
		if !m.From.Valid() || !m.To.Valid() {
			return ErrOutOfBounds
		}
	case "drop":
		var kind, err = ParsePieceKind(w.Piece)
		if err != nil {
			return err
		}
		if kind.IsPromoted() || kind == King {
			return fmt.Errorf("%w: cannot drop %s", ErrInvalidPieceKind, kind)
		}
		m.Type = MoveDrop
		m.Piece = kind
		m.To = Square{Row: w.To[0], Col: w.To[1]}
		m.From = Square{}
		m.Promote = false
		if !m.To.Valid() {
			return ErrOutOfBounds
		}
	default:
		return fmt.Errorf("unknown move kind %q", w.Kind)
	}
	return nil
}

// MoveRecord is one entry of the append-only board history.
type MoveRecord struct {
	Move     Move
	Player   Player
	Piece    PieceKind // kind after the move was applied
	Captured PieceKind // NoPiece if nothing was taken
}

package shogi

import "fmt"

type Player int

const (
	Sente Player = iota // first mover, home rows 6-8
	Gote                // second mover, home rows 0-2
)

func (p Player) Opponent() Player {
	if p == Sente {
		return Gote
	}
	return Sente
}

func (p Player) String() string {
	if p == Sente {
		return "sente"
	}
	return "gote"
}

type PieceKind int

const (
	NoPiece PieceKind = iota
	King
	Rook
	Bishop
	Gold
	Silver
	Knight
	Lance
	Pawn
	PromotedRook
	PromotedBishop
	PromotedSilver
	PromotedKnight
	PromotedLance
	PromotedPawn
)

var kindNames = map[PieceKind]string{
	King:           "king",
	Rook:           "rook",
	Bishop:         "bishop",
	Gold:           "gold",
	Silver:         "silver",
	Knight:         "knight",
	Lance:          "lance",
	Pawn:           "pawn",
	PromotedRook:   "promoted_rook",
	PromotedBishop: "promoted_bishop",
	PromotedSilver: "promoted_silver",
	PromotedKnight: "promoted_knight",
	PromotedLance:  "promoted_lance",
	PromotedPawn:   "promoted_pawn",
}

var promotions = map[PieceKind]PieceKind{
	Rook:   PromotedRook,
	Bishop: PromotedBishop,
	Silver: PromotedSilver,
	Knight: PromotedKnight,
	Lance:  PromotedLance,
	Pawn:   PromotedPawn,
}

var demotions = map[PieceKind]PieceKind{
	PromotedRook:   Rook,
	PromotedBishop: Bishop,
	PromotedSilver: Silver,
	PromotedKnight: Knight,
	PromotedLance:  Lance,
	PromotedPawn:   Pawn,
}

func (k PieceKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("piece(%d)", int(k))
}

// ParsePieceKind maps a wire name to a kind. Unknown names are a boundary
// error, never a panic.
func ParsePieceKind(s string) (PieceKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPieceKind, s)
}

func (k PieceKind) IsPromoted() bool {
	_, ok := demotions[k]
	return ok
}

// Promoted returns the promoted counterpart. King and Gold are fixed points.
func (k PieceKind) Promoted() PieceKind {
	if pk, ok := promotions[k]; ok {
		return pk
	}
	return k
}

// Demoted returns the base counterpart of a promoted kind.
func (k PieceKind) Demoted() PieceKind {
	if bk, ok := demotions[k]; ok {
		return bk
	}
	return k
}

// CanEverPromote reports whether the kind has a promoted counterpart.
func (k PieceKind) CanEverPromote() bool {
	_, ok := promotions[k]
	return ok
}

// Piece is a value. The promoted state is carried by the kind itself, so the
// "promoted iff promoted kind" invariant holds by construction.
type Piece struct {
	Kind  PieceKind
	Owner Player
}

func (p Piece) Empty() bool {
	return p.Kind == NoPiece
}

func (p Piece) Promoted() bool {
	return p.Kind.IsPromoted()
}

type Square struct {
	Row, Col int
}

func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
}

// Size is the board edge length.
const Size = 9

// promotionZone reports whether the row lies inside the player's promotion
// zone: the three ranks nearest the opponent's edge.
func promotionZone(p Player, row int) bool {
	if p == Sente {
		return row <= 2
	}
	return row >= 6
}

// lastRank is the farthest rank from the player's home edge.
func lastRank(p Player) int {
	if p == Sente {
		return 0
	}
	return Size - 1
}

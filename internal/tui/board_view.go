package tui

import (
	"strings"

	"github.com/reyamade/komago/pkg/shogi"
)

// RenderBoard renders the position in a fixed-width grid, gote side on top
// (row 0), matching the zero-based wire coordinates.
func RenderBoard(b *shogi.Board) string {
	var sb strings.Builder
	sb.WriteString("     0  1  2  3  4  5  6  7  8\n")
	sb.WriteString("   +---------------------------+\n")

	for row := 0; row < shogi.Size; row++ {
		sb.WriteString(" ")
		sb.WriteByte(byte('0' + row))
		sb.WriteString(" |")
		for col := 0; col < shogi.Size; col++ {
			sb.WriteString(cell(b.PieceAt(shogi.Square{Row: row, Col: col})))
		}
		sb.WriteString("|\n")
	}

	sb.WriteString("   +---------------------------+\n")
	return sb.String()
}

// cell is a fixed-width 3-char cell: "▲" for sente, "▽" for gote, lowercase
// letter for promoted pieces.
func cell(p shogi.Piece) string {
	if p.Empty() {
		return " . "
	}
	var tri = "▲"
	if p.Owner == shogi.Gote {
		tri = "▽"
	}
	var letter = kindLetter(p.Kind.Demoted())
	if p.Promoted() {
		letter = strings.ToLower(letter)
	}
	return tri + letter + " "
}

func kindLetter(k shogi.PieceKind) string {
	switch k {
	case shogi.King:
		return "K"
	case shogi.Rook:
		return "R"
	case shogi.Bishop:
		return "B"
	case shogi.Gold:
		return "G"
	case shogi.Silver:
		return "S"
	case shogi.Knight:
		return "N"
	case shogi.Lance:
		return "L"
	case shogi.Pawn:
		return "P"
	}
	return "?"
}

// RenderHands shows both hands on one line each.
func RenderHands(b *shogi.Board) string {
	var sb strings.Builder
	sb.WriteString("gote hand:  " + handLine(b, shogi.Gote) + "\n")
	sb.WriteString("sente hand: " + handLine(b, shogi.Sente) + "\n")
	return sb.String()
}

func handLine(b *shogi.Board, p shogi.Player) string {
	var hand = b.Hand(p)
	if len(hand) == 0 {
		return "-"
	}
	var names []string
	for _, piece := range hand {
		names = append(names, piece.Kind.String())
	}
	return strings.Join(names, " ")
}

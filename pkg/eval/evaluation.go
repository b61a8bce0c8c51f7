// Package eval scores positions from one player's perspective. Scores are
// plain integers; the checkmate sentinel dominates every other component.
package eval

import (
	"github.com/reyamade/komago/pkg/shogi"
)

const (
	// MateValue dominates any sum of the heuristic components.
	MateValue = 100_000

	defenderBonus    = 15
	exposedKingMalus = 30
	mobilityWeight   = 2
	givingCheckBonus = 50
	inCheckPenalty   = 100
	handBonusNum     = 6 // pieces in hand count at value*6/5
	handBonusDen     = 5
)

var pieceValues = map[shogi.PieceKind]int{
	shogi.King:           0,
	shogi.Rook:           500,
	shogi.Bishop:         450,
	shogi.Gold:           400,
	shogi.Silver:         350,
	shogi.Knight:         300,
	shogi.Lance:          250,
	shogi.Pawn:           100,
	shogi.PromotedRook:   600,
	shogi.PromotedBishop: 550,
	shogi.PromotedSilver: 450,
	shogi.PromotedKnight: 400,
	shogi.PromotedLance:  350,
	shogi.PromotedPawn:   200,
}

// PieceValue returns the material value of the kind; unknown kinds are 0.
func PieceValue(k shogi.PieceKind) int {
	return pieceValues[k]
}

// Piece-square tables from sente's viewpoint (row 0 = gote's home edge, so
// low rows reward advanced sente pieces). Kinds without a table contribute
// nothing.
var pawnTable = [9][9]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{40, 40, 40, 40, 40, 40, 40, 40, 40},
	{30, 30, 30, 35, 35, 35, 30, 30, 30},
	{20, 20, 25, 25, 25, 25, 25, 20, 20},
	{10, 12, 15, 18, 20, 18, 15, 12, 10},
	{5, 6, 8, 10, 12, 10, 8, 6, 5},
	{0, 0, 0, 2, 4, 2, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var silverTable = [9][9]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 5, 10, 10, 10, 10, 10, 5, 0},
	{0, 10, 15, 15, 15, 15, 15, 10, 0},
	{0, 10, 15, 20, 20, 20, 15, 10, 0},
	{0, 8, 12, 15, 15, 15, 12, 8, 0},
	{0, 5, 8, 10, 10, 10, 8, 5, 0},
	{0, 2, 5, 8, 8, 8, 5, 2, 0},
	{0, 0, 2, 5, 5, 5, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var goldTable = [9][9]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 5, 8, 10, 10, 10, 8, 5, 0},
	{0, 8, 12, 15, 15, 15, 12, 8, 0},
	{0, 8, 12, 15, 18, 15, 12, 8, 0},
	{0, 5, 10, 12, 15, 12, 10, 5, 0},
	{0, 5, 8, 10, 10, 10, 8, 5, 0},
	{0, 2, 5, 8, 8, 8, 5, 2, 0},
	{0, 2, 4, 6, 6, 6, 4, 2, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var squareTables = map[shogi.PieceKind]*[9][9]int{
	shogi.Pawn:   &pawnTable,
	shogi.Silver: &silverTable,
	shogi.Gold:   &goldTable,
}

// Analysis is the component breakdown exposed to callers.
type Analysis struct {
	Material   int  `json:"material"`
	Position   int  `json:"position"`
	KingSafety int  `json:"king_safety"`
	Mobility   int  `json:"mobility"`
	Threats    int  `json:"threats"`
	Total      int  `json:"total"`
	InCheck    bool `json:"in_check"`
	Checkmate  bool `json:"checkmate"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Evaluate scores the board from the player's perspective; positive favors
// the player.
func (s *Service) Evaluate(b *shogi.Board, p shogi.Player) int {
	return s.EvaluateDepth(b, p, 0)
}

// EvaluateDepth additionally receives the remaining search depth so that
// forced mates found earlier in the tree outrank later ones.
func (s *Service) EvaluateDepth(b *shogi.Board, p shogi.Player, depth int) int {
	if b.IsCheckmate(p) {
		return -(MateValue + depth)
	}
	if b.IsCheckmate(p.Opponent()) {
		return MateValue + depth
	}
	return s.material(b, p) + s.position(b, p) + s.kingSafety(b, p) +
		s.mobility(b, p) + s.threats(b, p)
}

// Analyze returns the full component breakdown for the position.
func (s *Service) Analyze(b *shogi.Board, p shogi.Player) Analysis {
	var a = Analysis{
		Material:   s.material(b, p),
		Position:   s.position(b, p),
		KingSafety: s.kingSafety(b, p),
		Mobility:   s.mobility(b, p),
		Threats:    s.threats(b, p),
		InCheck:    b.IsInCheck(p),
		Checkmate:  b.IsCheckmate(p),
	}
	a.Total = a.Material + a.Position + a.KingSafety + a.Mobility + a.Threats
	return a
}

// material sums board piece values signed by ownership, plus hand pieces at
// a redeployability bonus.
func (s *Service) material(b *shogi.Board, p shogi.Player) int {
	var score = 0
	for row := 0; row < shogi.Size; row++ {
		for col := 0; col < shogi.Size; col++ {
			var piece = b.PieceAt(shogi.Square{Row: row, Col: col})
			if piece.Empty() {
				continue
			}
			if piece.Owner == p {
				score += pieceValues[piece.Kind]
			} else {
				score -= pieceValues[piece.Kind]
			}
		}
	}
	for _, piece := range b.Hand(p) {
		score += pieceValues[piece.Kind] * handBonusNum / handBonusDen
	}
	for _, piece := range b.Hand(p.Opponent()) {
		score -= pieceValues[piece.Kind] * handBonusNum / handBonusDen
	}
	return score
}

func (s *Service) position(b *shogi.Board, p shogi.Player) int {
	var score = 0
	for row := 0; row < shogi.Size; row++ {
		for col := 0; col < shogi.Size; col++ {
			var piece = b.PieceAt(shogi.Square{Row: row, Col: col})
			if piece.Empty() {
				continue
			}
			var table, ok = squareTables[piece.Kind]
			if !ok {
				continue
			}
			// tables are sente-viewpoint; mirror rows for gote
			var r = row
			if piece.Owner == shogi.Gote {
				r = shogi.Size - 1 - row
			}
			if piece.Owner == p {
				score += table[r][col]
			} else {
				score -= table[r][col]
			}
		}
	}
	return score
}

// kingSafety rewards defenders touching the own king and punishes a king
// wandering into the central 5x5 region.
func (s *Service) kingSafety(b *shogi.Board, p shogi.Player) int {
	var kingSq, ok = b.FindKing(p)
	if !ok {
		return 0
	}
	var score = 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			var adj = shogi.Square{Row: kingSq.Row + dr, Col: kingSq.Col + dc}
			var piece = b.PieceAt(adj)
			if !piece.Empty() && piece.Owner == p {
				score += defenderBonus
			}
		}
	}
	if kingSq.Row >= 2 && kingSq.Row <= 6 && kingSq.Col >= 2 && kingSq.Col <= 6 {
		score -= exposedKingMalus
	}
	return score
}

// mobility counts self-check-filtered board-move destinations for both
// sides. Drops are not counted.
func (s *Service) mobility(b *shogi.Board, p shogi.Player) int {
	var own, theirs = 0, 0
	for row := 0; row < shogi.Size; row++ {
		for col := 0; col < shogi.Size; col++ {
			var from = shogi.Square{Row: row, Col: col}
			var piece = b.PieceAt(from)
			if piece.Empty() {
				continue
			}
			var n = len(b.LegalDestinations(from))
			if piece.Owner == p {
				own += n
			} else {
				theirs += n
			}
		}
	}
	return (own - theirs) * mobilityWeight
}

func (s *Service) threats(b *shogi.Board, p shogi.Player) int {
	var score = 0
	if b.IsInCheck(p.Opponent()) {
		score += givingCheckBonus
	}
	if b.IsInCheck(p) {
		score -= inCheckPenalty
	}
	return score
}

package engine

import (
	"sort"

	"github.com/reyamade/komago/pkg/eval"
	"github.com/reyamade/komago/pkg/shogi"
)

// orderMoves sorts candidates so that likely-good moves come first and the
// alpha-beta window narrows early. Ordering is a pruning aid only; with
// ordering disabled the search must pick the same move and score, just
// visiting more nodes.
func (e *Engine) orderMoves(b *shogi.Board, moves []shogi.Move) []shogi.Move {
	var ordered = append([]shogi.Move(nil), moves...)
	if e.options.DisableMoveOrdering {
		return ordered
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return movePriority(b, ordered[i]) > movePriority(b, ordered[j])
	})
	return ordered
}

// movePriority: captures weighted by victim value, a bonus for landing near
// the board center, a small malus for moving already-valuable pieces, and
// for drops the dropped piece's value.
func movePriority(b *shogi.Board, m shogi.Move) int {
	var priority = 0
	switch m.Type {
	case shogi.MoveBoard:
		var target = b.PieceAt(m.To)
		if !target.Empty() {
			priority += eval.PieceValue(target.Kind)
		}
		var centerDistance = abs(m.To.Row-4) + abs(m.To.Col-4)
		priority += (8 - centerDistance) * 5
		priority -= eval.PieceValue(b.PieceAt(m.From).Kind) / 10
	case shogi.MoveDrop:
		priority += eval.PieceValue(m.Piece) / 2
	}
	return priority
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package engine

import (
	"time"

	"github.com/reyamade/komago/pkg/eval"
	"github.com/reyamade/komago/pkg/shogi"
)

// valueInfinity bounds every reachable score, mate sentinels included.
const valueInfinity = 2 * eval.MateValue

// searchBestMove runs iterative deepening from depth 1 up to the configured
// maximum inside the wall-clock budget. Each depth is a full alpha-beta
// pass over the root moves; a pass interrupted by the deadline is discarded
// and the best move of the last completed depth is returned.
func (e *Engine) searchBestMove(b *shogi.Board, p shogi.Player, legal []shogi.Move) (shogi.Move, error) {
	var deadline = time.Now().Add(e.options.MoveTime)
	e.nodes = 0

	var best shogi.Move
	var haveBest = false

	for depth := 1; depth <= e.options.MaxDepth; depth++ {
		var move, _, completed = e.searchRoot(b, p, legal, depth, deadline)
		if !completed {
			break
		}
		best = move
		haveBest = true
		if time.Now().After(deadline) {
			break
		}
	}

	if !haveBest {
		return shogi.Move{}, ErrNoMove
	}
	return best, nil
}

// searchRoot performs one full-depth pass. completed is false when the
// deadline interrupted the pass, in which case the partial result must not
// be adopted.
func (e *Engine) searchRoot(b *shogi.Board, p shogi.Player, legal []shogi.Move, depth int, deadline time.Time) (shogi.Move, int, bool) {
	var ordered = e.orderMoves(b, legal)

	var best = ordered[0]
	var bestScore = -valueInfinity
	var alpha = -valueInfinity
	var beta = valueInfinity

	for _, move := range ordered {
		if time.Now().After(deadline) {
			return best, bestScore, false
		}
		var child = b.Clone()
		if child.Apply(move) != nil {
			continue
		}
		var score = e.minimax(child, depth-1, alpha, beta, false, p, deadline)
		if score > bestScore {
			bestScore = score
			best = move
		}
		if score > alpha {
			alpha = score
		}
	}
	if time.Now().After(deadline) {
		return best, bestScore, false
	}
	return best, bestScore, true
}

// minimax recurses over cloned boards, maximizing for the perspective
// player and minimizing for the opponent, pruning when beta <= alpha. The
// deadline is polled at entry and before every candidate; on expiry the
// static evaluation is returned as a cutoff and the iterative-deepening
// driver discards the depth.
func (e *Engine) minimax(b *shogi.Board, depth, alpha, beta int, maximizing bool, perspective shogi.Player, deadline time.Time) int {
	e.nodes++

	if time.Now().After(deadline) {
		return e.evaluator.EvaluateDepth(b, perspective, depth)
	}
	if depth == 0 || b.IsCheckmate(b.Turn()) || b.IsCheckmate(b.Turn().Opponent()) {
		return e.evaluator.EvaluateDepth(b, perspective, depth)
	}

	var legal = b.AllLegalMoves(b.Turn())
	if len(legal) == 0 {
		return e.evaluator.EvaluateDepth(b, perspective, depth)
	}
	var ordered = e.orderMoves(b, legal)

	if maximizing {
		var best = -valueInfinity
		for _, move := range ordered {
			if time.Now().After(deadline) {
				break
			}
			var child = b.Clone()
			if child.Apply(move) != nil {
				continue
			}
			var score = e.minimax(child, depth-1, alpha, beta, false, perspective, deadline)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	var best = valueInfinity
	for _, move := range ordered {
		if time.Now().After(deadline) {
			break
		}
		var child = b.Clone()
		if child.Apply(move) != nil {
			continue
		}
		var score = e.minimax(child, depth-1, alpha, beta, true, perspective, deadline)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

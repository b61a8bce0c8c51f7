// Package engine selects moves by time-boxed iterative-deepening minimax
// with alpha-beta pruning over disposable board snapshots.
package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/reyamade/komago/pkg/book"
	"github.com/reyamade/komago/pkg/eval"
	"github.com/reyamade/komago/pkg/shogi"
)

var (
	// ErrNoLegalMoves means the position is terminal for the side to move;
	// the caller treats it as checkmate or stalemate, not as a fault.
	ErrNoLegalMoves = errors.New("no legal moves in the position")
	// ErrNoMove means the time budget expired before even the depth-1 pass
	// finished. Distinct from ErrNoLegalMoves by contract.
	ErrNoMove = errors.New("time budget expired before any depth completed")
)

type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseLevel maps a wire name to a difficulty level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, errors.New("unknown difficulty: " + s)
}

// Options fix one difficulty configuration. Changing difficulty replaces
// the whole struct at once.
type Options struct {
	MaxDepth            int
	MoveTime            time.Duration
	RandomMoveProb      float64
	DisableMoveOrdering bool
	DisableBook         bool
}

func levelOptions(l Level) Options {
	switch l {
	case Easy:
		return Options{MaxDepth: 1, MoveTime: 1 * time.Second, RandomMoveProb: 0.3}
	case Hard:
		return Options{MaxDepth: 5, MoveTime: 8 * time.Second, RandomMoveProb: 0}
	default:
		return Options{MaxDepth: 3, MoveTime: 3 * time.Second, RandomMoveProb: 0.1}
	}
}

// Engine holds per-game search state. It never mutates boards passed to it;
// every search branch runs on its own clone.
type Engine struct {
	options   Options
	level     Level
	evaluator *eval.Service
	book      *book.Book
	rnd       *rand.Rand
	nodes     int64
}

func NewEngine(level Level) *Engine {
	return &Engine{
		options:   levelOptions(level),
		level:     level,
		evaluator: eval.NewService(),
		book:      book.New(),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewEngineOptions builds an engine from explicit options, mainly for tests
// and the self-play arena.
func NewEngineOptions(options Options) *Engine {
	var e = NewEngine(Medium)
	e.options = options
	return e
}

// SetDifficulty atomically replaces depth, time budget and random-move
// probability. Safe to call between moves of an ongoing game.
func (e *Engine) SetDifficulty(level Level) {
	e.level = level
	e.options = levelOptions(level)
}

func (e *Engine) Difficulty() Level {
	return e.level
}

func (e *Engine) Options() Options {
	return e.options
}

// Nodes returns the node count of the last search.
func (e *Engine) Nodes() int64 {
	return e.nodes
}

// GetMove picks a move for the player: a validated opening-book line first,
// then possibly a uniformly random legal move (per the difficulty's
// random-move probability), otherwise the search.
func (e *Engine) GetMove(b *shogi.Board, p shogi.Player) (shogi.Move, error) {
	if !e.options.DisableBook {
		if move, ok := e.book.Lookup(b, p); ok {
			return move, nil
		}
	}

	var legal = b.AllLegalMoves(p)
	if len(legal) == 0 {
		return shogi.Move{}, ErrNoLegalMoves
	}

	if e.options.RandomMoveProb > 0 && e.rnd.Float64() < e.options.RandomMoveProb {
		return legal[e.rnd.Intn(len(legal))], nil
	}

	return e.searchBestMove(b, p, legal)
}

// Analyze exposes the evaluator's component breakdown.
func (e *Engine) Analyze(b *shogi.Board, p shogi.Player) eval.Analysis {
	return e.evaluator.Analyze(b, p)
}

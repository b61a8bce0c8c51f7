// Package game wraps a board and an engine into one playable game with a
// stable identifier and terminal-state tracking. State lives in memory
// only; the move log is the board's own history.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/reyamade/komago/pkg/engine"
	"github.com/reyamade/komago/pkg/shogi"
)

var ErrGameOver = errors.New("game is already over")

// Result reports the outcome of one applied move or drop.
type Result struct {
	Success  bool   `json:"success"`
	Err      string `json:"error,omitempty"`
	GameOver bool   `json:"game_over"`
	Winner   string `json:"winner,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

type Game struct {
	ID     string
	Board  *shogi.Board
	Engine *engine.Engine

	over   bool
	winner shogi.Player
}

// New starts a fresh game from the canonical position.
func New(level engine.Level) *Game {
	return &Game{
		ID:     uuid.New().String(),
		Board:  shogi.NewBoard(),
		Engine: engine.NewEngine(level),
	}
}

func (g *Game) Over() bool {
	return g.over
}

// Winner is meaningful only when Over reports true.
func (g *Game) Winner() shogi.Player {
	return g.winner
}

// PlayMove applies a board move for the side to move.
func (g *Game) PlayMove(from, to shogi.Square, promote bool) Result {
	if g.over {
		return failure(ErrGameOver)
	}
	if err := g.Board.ApplyMove(from, to, promote); err != nil {
		return failure(err)
	}
	return g.afterMove()
}

// PlayDrop drops a hand piece for the side to move.
func (g *Game) PlayDrop(kind shogi.PieceKind, to shogi.Square) Result {
	if g.over {
		return failure(ErrGameOver)
	}
	if err := g.Board.ApplyDrop(kind, to); err != nil {
		return failure(err)
	}
	return g.afterMove()
}

// Play dispatches a tagged move.
func (g *Game) Play(m shogi.Move) Result {
	switch m.Type {
	case shogi.MoveBoard:
		return g.PlayMove(m.From, m.To, m.Promote)
	case shogi.MoveDrop:
		return g.PlayDrop(m.Piece, m.To)
	}
	return failure(shogi.ErrInvalidPieceKind)
}

// EngineMove asks the engine for the side to move and applies its answer.
func (g *Game) EngineMove() (shogi.Move, Result) {
	if g.over {
		return shogi.Move{}, failure(ErrGameOver)
	}
	var move, err = g.Engine.GetMove(g.Board, g.Board.Turn())
	if err != nil {
		if errors.Is(err, engine.ErrNoLegalMoves) {
			// the side to move is mated (or stalled); close the game
			g.over = true
			g.winner = g.Board.Turn().Opponent()
			return shogi.Move{}, Result{Success: false, Err: err.Error(), GameOver: true, Winner: g.winner.String(), Cause: "checkmate"}
		}
		return shogi.Move{}, failure(err)
	}
	return move, g.Play(move)
}

// afterMove checks whether the move just applied mated the new side to
// move.
func (g *Game) afterMove() Result {
	var next = g.Board.Turn()
	if g.Board.IsCheckmate(next) {
		g.over = true
		g.winner = next.Opponent()
		return Result{Success: true, GameOver: true, Winner: g.winner.String(), Cause: "checkmate"}
	}
	return Result{Success: true}
}

func failure(err error) Result {
	return Result{Success: false, Err: err.Error()}
}

// HandSnapshot lists a player's hand kinds by wire name.
func HandSnapshot(b *shogi.Board, p shogi.Player) []string {
	var names []string
	for _, piece := range b.Hand(p) {
		names = append(names, piece.Kind.String())
	}
	return names
}

// SquareSnapshot is one grid cell of the wire state.
type SquareSnapshot struct {
	Type     string `json:"type"`
	Player   string `json:"player"`
	Promoted bool   `json:"promoted"`
}

// State is the JSON snapshot of a whole game.
type State struct {
	ID        string                                  `json:"game_id"`
	Grid      [shogi.Size][shogi.Size]*SquareSnapshot `json:"board"`
	Hands     map[string][]string                     `json:"captured"`
	Turn      string                                  `json:"current_player"`
	InCheck   map[string]bool                         `json:"in_check"`
	Checkmate map[string]bool                         `json:"checkmate"`
	GameOver  bool                                    `json:"game_over"`
	Winner    string                                  `json:"winner,omitempty"`
	Plies     int                                     `json:"move_count"`
}

// Snapshot renders the current game state in the boundary shape.
func (g *Game) Snapshot() State {
	var st = State{
		ID:       g.ID,
		Turn:     g.Board.Turn().String(),
		GameOver: g.over,
		Plies:    len(g.Board.History()),
		Hands: map[string][]string{
			shogi.Sente.String(): HandSnapshot(g.Board, shogi.Sente),
			shogi.Gote.String():  HandSnapshot(g.Board, shogi.Gote),
		},
		InCheck: map[string]bool{
			shogi.Sente.String(): g.Board.IsInCheck(shogi.Sente),
			shogi.Gote.String():  g.Board.IsInCheck(shogi.Gote),
		},
		Checkmate: map[string]bool{
			shogi.Sente.String(): g.Board.IsCheckmate(shogi.Sente),
			shogi.Gote.String():  g.Board.IsCheckmate(shogi.Gote),
		},
	}
	if g.over {
		st.Winner = g.winner.String()
	}
	for row := 0; row < shogi.Size; row++ {
		for col := 0; col < shogi.Size; col++ {
			var piece = g.Board.PieceAt(shogi.Square{Row: row, Col: col})
			if piece.Empty() {
				continue
			}
			st.Grid[row][col] = &SquareSnapshot{
				Type:     piece.Kind.String(),
				Player:   piece.Owner.String(),
				Promoted: piece.Promoted(),
			}
		}
	}
	return st
}

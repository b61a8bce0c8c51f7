package game

import (
	"encoding/json"
	"testing"

	"github.com/reyamade/komago/pkg/engine"
	"github.com/reyamade/komago/pkg/shogi"
)

func TestNewGame(t *testing.T) {
	var g = New(engine.Medium)
	if g.ID == "" {
		t.Error("empty game id")
	}
	if New(engine.Medium).ID == g.ID {
		t.Error("ids not unique")
	}
	if g.Over() {
		t.Error("fresh game over")
	}
	if g.Board.Turn() != shogi.Sente {
		t.Error("turn", g.Board.Turn())
	}
	if g.Engine.Difficulty() != engine.Medium {
		t.Error("difficulty", g.Engine.Difficulty())
	}
}

func TestPlayMove(t *testing.T) {
	var g = New(engine.Easy)
	var res = g.PlayMove(shogi.Square{Row: 6, Col: 4}, shogi.Square{Row: 5, Col: 4}, false)
	if !res.Success || res.GameOver || res.Err != "" {
		t.Fatal(res)
	}
	if g.Board.Turn() != shogi.Gote {
		t.Error("turn", g.Board.Turn())
	}

	res = g.PlayMove(sq(2, 4), sq(7, 4), false)
	if res.Success || res.Err == "" {
		t.Error("illegal move accepted", res)
	}
	if g.Over() {
		t.Error("illegal move ended the game")
	}
}

func sq(row, col int) shogi.Square {
	return shogi.Square{Row: row, Col: col}
}

func TestPlayMateEndsGame(t *testing.T) {
	var g = New(engine.Easy)
	g.Board = shogi.NewEmptyBoard()
	g.Board.SetPiece(sq(0, 0), shogi.Piece{Kind: shogi.King, Owner: shogi.Gote})
	g.Board.SetPiece(sq(2, 0), shogi.Piece{Kind: shogi.Gold, Owner: shogi.Sente})
	g.Board.SetPiece(sq(3, 0), shogi.Piece{Kind: shogi.Lance, Owner: shogi.Sente})
	g.Board.SetPiece(sq(8, 8), shogi.Piece{Kind: shogi.King, Owner: shogi.Sente})

	var res = g.PlayMove(sq(2, 0), sq(1, 0), false)
	if !res.Success || !res.GameOver || res.Winner != "sente" || res.Cause != "checkmate" {
		t.Fatal(res)
	}
	if !g.Over() || g.Winner() != shogi.Sente {
		t.Error(g.Over(), g.Winner())
	}

	res = g.PlayMove(sq(8, 8), sq(7, 8), false)
	if res.Success || res.Err == "" {
		t.Error("move accepted after game end", res)
	}
	if _, res := g.EngineMove(); res.Success {
		t.Error("engine move after game end", res)
	}
}

func TestEngineMoveOnMatedPosition(t *testing.T) {
	var g = New(engine.Easy)
	g.Board = shogi.NewEmptyBoard()
	g.Board.SetPiece(sq(8, 8), shogi.Piece{Kind: shogi.King, Owner: shogi.Sente})
	g.Board.SetPiece(sq(7, 8), shogi.Piece{Kind: shogi.Gold, Owner: shogi.Gote})
	g.Board.SetPiece(sq(6, 8), shogi.Piece{Kind: shogi.Lance, Owner: shogi.Gote})
	g.Board.SetPiece(sq(0, 0), shogi.Piece{Kind: shogi.King, Owner: shogi.Gote})

	var _, res = g.EngineMove()
	if res.Success || !res.GameOver || res.Winner != "gote" || res.Cause != "checkmate" {
		t.Fatal(res)
	}
	if !g.Over() || g.Winner() != shogi.Gote {
		t.Error(g.Over(), g.Winner())
	}
}

func TestEngineMovePlaysAndApplies(t *testing.T) {
	var g = New(engine.Hard) // deterministic: no random moves
	var move, res = g.EngineMove()
	if !res.Success {
		t.Fatal(res)
	}
	if len(g.Board.History()) != 1 || g.Board.History()[0].Move != move {
		t.Error("move not applied", move, g.Board.History())
	}
	if g.Board.Turn() != shogi.Gote {
		t.Error("turn", g.Board.Turn())
	}
}

func TestSnapshot(t *testing.T) {
	var g = New(engine.Medium)
	g.PlayMove(sq(6, 4), sq(5, 4), false)

	var st = g.Snapshot()
	if st.ID != g.ID || st.Turn != "gote" || st.Plies != 1 || st.GameOver {
		t.Error(st.ID, st.Turn, st.Plies, st.GameOver)
	}
	if st.Grid[6][4] != nil {
		t.Error("vacated square still occupied")
	}
	var moved = st.Grid[5][4]
	if moved == nil || moved.Type != "pawn" || moved.Player != "sente" || moved.Promoted {
		t.Error("moved pawn", moved)
	}
	if st.InCheck["sente"] || st.Checkmate["gote"] || st.Winner != "" {
		t.Error("terminal flags set", st)
	}
	if len(st.Hands["sente"]) != 0 || len(st.Hands["gote"]) != 0 {
		t.Error("hands", st.Hands)
	}

	var data, err = json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"game_id", "board", "captured", "current_player", "in_check", "checkmate", "game_over", "move_count"} {
		if _, ok := decoded[key]; !ok {
			t.Error("missing key", key)
		}
	}
	if _, ok := decoded["winner"]; ok {
		t.Error("winner present before game end")
	}
}

func TestHandSnapshotAfterCapture(t *testing.T) {
	var g = New(engine.Easy)
	g.Board = shogi.NewEmptyBoard()
	g.Board.SetPiece(sq(8, 4), shogi.Piece{Kind: shogi.King, Owner: shogi.Sente})
	g.Board.SetPiece(sq(0, 4), shogi.Piece{Kind: shogi.King, Owner: shogi.Gote})
	g.Board.SetPiece(sq(4, 0), shogi.Piece{Kind: shogi.Rook, Owner: shogi.Sente})
	g.Board.SetPiece(sq(4, 8), shogi.Piece{Kind: shogi.PromotedBishop, Owner: shogi.Gote})

	var res = g.PlayMove(sq(4, 0), sq(4, 8), false)
	if !res.Success {
		t.Fatal(res)
	}
	var hands = g.Snapshot().Hands
	if len(hands["sente"]) != 1 || hands["sente"][0] != "bishop" {
		t.Error("captured hand", hands)
	}
}

package shogi

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMoveJSONShape(t *testing.T) {
	var tests = []struct {
		move Move
		want string
	}{
		{
			move: NewBoardMove(Square{6, 4}, Square{5, 4}, false),
			want: `{"kind":"move","from":[6,4],"to":[5,4],"promote":false}`,
		},
		{
			move: NewBoardMove(Square{1, 3}, Square{0, 3}, true),
			want: `{"kind":"move","from":[1,3],"to":[0,3],"promote":true}`,
		},
		{
			move: NewDrop(Pawn, Square{4, 4}),
			want: `{"kind":"drop","to":[4,4],"piece":"pawn"}`,
		},
	}
	for i, test := range tests {
		var data, err = json.Marshal(test.move)
		if err != nil {
			t.Fatal(i, err)
		}
		if string(data) != test.want {
			t.Error(i, string(data))
		}

		var back Move
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatal(i, err)
		}
		if back != test.move {
			t.Error(i, back, test.move)
		}
	}
}

func TestMoveJSONRejects(t *testing.T) {
	var tests = []string{
		// unknown kind tag, board move without from, out-of-bounds from
		`{"kind":"castle","to":[0,0]}`,
		`{"kind":"move","to":[5,4]}`,
		`{"kind":"move","from":[9,0],"to":[5,4]}`,
		// kinds that are never in hand, an unknown kind, out-of-bounds to
		`{"kind":"drop","piece":"king","to":[4,4]}`,
		`{"kind":"drop","piece":"promoted_pawn","to":[4,4]}`,
		`{"kind":"drop","piece":"queen","to":[4,4]}`,
		`{"kind":"drop","piece":"pawn","to":[4,9]}`,
	}
	for i, test := range tests {
		var m Move
		if err := json.Unmarshal([]byte(test), &m); err == nil {
			t.Error(i, test, "accepted")
		}
	}
}

func TestMoveJSONErrorKinds(t *testing.T) {
	var m Move
	var err = json.Unmarshal([]byte(`{"kind":"drop","piece":"queen","to":[4,4]}`), &m)
	if !errors.Is(err, ErrInvalidPieceKind) {
		t.Error(err)
	}
	err = json.Unmarshal([]byte(`{"kind":"move","from":[0,0],"to":[0,9]}`), &m)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Error(err)
	}
}

func TestMoveString(t *testing.T) {
	var tests = []struct {
		move Move
		want string
	}{
		{NewBoardMove(Square{6, 4}, Square{5, 4}, false), "6454"},
		{NewBoardMove(Square{1, 3}, Square{0, 3}, true), "1303+"},
		{NewDrop(Gold, Square{4, 4}), "gold*44"},
	}
	for i, test := range tests {
		if got := test.move.String(); got != test.want {
			t.Error(i, got)
		}
	}
}

func TestParsePieceKind(t *testing.T) {
	for kind, name := range kindNames {
		var got, err = ParsePieceKind(name)
		if err != nil || got != kind {
			t.Error(name, got, err)
		}
	}
	if _, err := ParsePieceKind("queen"); !errors.Is(err, ErrInvalidPieceKind) {
		t.Error(err)
	}
}

func TestPromoteDemoteRoundTrip(t *testing.T) {
	for base, promoted := range promotions {
		if base.Promoted() != promoted || promoted.Demoted() != base {
			t.Error(base, promoted)
		}
		if !promoted.IsPromoted() || base.IsPromoted() {
			t.Error("promotion flags", base, promoted)
		}
	}
	if King.Promoted() != King || Gold.Promoted() != Gold {
		t.Error("king and gold are fixed points")
	}
}

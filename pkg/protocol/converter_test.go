package protocol

import (
	"errors"
	"testing"

	"bombman/pkg/core"
)

func TestActionMoveMapping(t *testing.T) {
	tests := []struct {
		action core.Action
		move   Move
	}{
		{core.ActionStay, MoveStayStill},
		{core.ActionMoveUp, MoveUp},
		{core.ActionMoveDown, MoveDown},
		{core.ActionMoveLeft, MoveLeft},
		{core.ActionMoveRight, MoveRight},
		{core.ActionPlaceBomb, MovePlaceBomb},
		{core.ActionBombMoveUp, MovePlaceBombMoveUp},
		{core.ActionBombMoveDown, MovePlaceBombMoveDown},
		{core.ActionBombMoveLeft, MovePlaceBombMoveLeft},
		{core.ActionBombMoveRight, MovePlaceBombMoveRight},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			if got := CoreActionToProto(tt.action); got != tt.move {
				t.Fatalf("CoreActionToProto(%v) = %v, want %v", tt.action, got, tt.move)
			}
			if got := ProtoMoveToCore(tt.move); got != tt.action {
				t.Fatalf("ProtoMoveToCore(%v) = %v, want %v", tt.move, got, tt.action)
			}
		})
	}

	if got := CoreActionToProto(core.Action(77)); got != MoveStayStill {
		t.Fatalf("unknown action mapped to %v", got)
	}
	if got := ProtoMoveToCore(Move(77)); got != core.ActionStay {
		t.Fatalf("unknown move mapped to %v", got)
	}
}

func TestToGameOverlaysBombs(t *testing.T) {
	msg := &Message{
		Type:    MessageTypeMoveRequest,
		MapSize: &Position{X: 3, Y: 2},
		Items: []MapEntry{
			{Pos: Position{X: 0, Y: 0}, Item: MapItemWall},
			{Pos: Position{X: 9, Y: 9}, Item: MapItemWall}, // outside the map, ignored
		},
		Bombs: []BombInfo{{Pos: Position{X: 2, Y: 1}, Owner: 0, Range: 1, TimeLeft: 3}},
	}
	game, err := ToGame(msg)
	if err != nil {
		t.Fatalf("ToGame: %v", err)
	}
	want := "W..\n..X"
	if game.Map.String() != want {
		t.Fatalf("map =\n%s\nwant\n%s", game.Map, want)
	}
}

func TestToGameStart(t *testing.T) {
	start := &core.GameStart{
		Map:    core.ParseGameMap(".B.", "..."),
		Blocks: []core.GridPos{{GridX: 1, GridY: 0}},
		Players: []core.Player{
			{ID: 0, Pos: core.GridPos{GridX: 0, GridY: 0}},
			{ID: 1, Pos: core.GridPos{GridX: 2, GridY: 1}},
		},
		PlayerIndex: 1,
	}
	got, err := ToGameStart(NewStartGameMessage(start))
	if err != nil {
		t.Fatalf("ToGameStart: %v", err)
	}
	if got.PlayerIndex != 1 || len(got.Blocks) != 1 || got.Blocks[0] != start.Blocks[0] {
		t.Fatalf("got %+v", got)
	}
	self, err := got.Self()
	if err != nil || self.Pos != start.Players[1].Pos {
		t.Fatalf("Self = %+v, %v", self, err)
	}

	if _, err := ToGameStart(&Message{Type: MessageTypeStartGame}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing map size: err = %v", err)
	}
}

func TestMapSizeIsBounded(t *testing.T) {
	tests := []struct {
		name string
		size Position
		ok   bool
	}{
		{"empty", Position{X: 0, Y: 0}, true},
		{"at the limit", Position{X: 256, Y: 256}, true},
		{"one row too many", Position{X: 256, Y: 257}, false},
		{"huge", Position{X: 100000, Y: 100000}, false},
		{"overflows int32 product", Position{X: 1 << 30, Y: 1 << 30}, false},
		{"negative width", Position{X: -1, Y: 5}, false},
		{"negative height", Position{X: 5, Y: -3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.size
			msg := &Message{Type: MessageTypeMoveRequest, MapSize: &size}
			_, err := ToGame(msg)
			if tt.ok && err != nil {
				t.Fatalf("ToGame: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMapSize) {
				t.Fatalf("ToGame err = %v, want ErrMapSize", err)
			}
			_, err = ToGameStart(msg)
			if !tt.ok && !errors.Is(err, ErrMapSize) {
				t.Fatalf("ToGameStart err = %v, want ErrMapSize", err)
			}
		})
	}
}

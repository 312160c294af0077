package viewmodel

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/zerovolts/minesweeper/game"
)

func newSession(t *testing.T, width, height int, mines []game.Coord) *game.GameState {
	t.Helper()
	b, err := game.NewBoard(width, height)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	for _, m := range mines {
		if !b.PlaceMine(m.X, m.Y) {
			t.Fatalf("PlaceMine(%d, %d) failed", m.X, m.Y)
		}
	}
	return game.NewGameState(b)
}

func TestGameViewStates(t *testing.T) {
	g := newSession(t, 2, 2, []game.Coord{{X: 0, Y: 0}})
	g.OnLeftClick(1, 1)
	g.OnRightClick(0, 1)

	view := NewGameView(g)
	if got := view.Cells[1][1]; got.State != "opened" || got.Count != 1 {
		t.Errorf("opened cell view = %+v", got)
	}
	if got := view.Cells[1][0].State; got != "flagged" {
		t.Errorf("flagged cell view state = %q", got)
	}
	if got := view.Cells[0][0].State; got != "hidden" {
		t.Errorf("hidden cell view state = %q", got)
	}
	if view.MinesRemaining != 0 {
		t.Errorf("MinesRemaining = %d, want 0 (1 mine - 1 flag)", view.MinesRemaining)
	}
	if view.Turns != 1 {
		t.Errorf("Turns = %d, want 1", view.Turns)
	}
	if view.IsGameOver || view.IsGameClear {
		t.Error("game should still be in progress")
	}
}

// 敗北時は全ての地雷が opened + is_mine で見えること
func TestGameViewOnLoss(t *testing.T) {
	g := newSession(t, 2, 2, []game.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}})
	g.OnLeftClick(0, 0)

	view := NewGameView(g)
	if !view.IsGameOver {
		t.Fatal("IsGameOver should be true")
	}
	for _, c := range []CellView{view.Cells[0][0], view.Cells[0][1]} {
		if c.State != "opened" || !c.IsMine {
			t.Errorf("mine view on loss = %+v", c)
		}
	}
}

// クリア時は未フラグの地雷もフラグ表示になること
func TestGameViewOnClearFlagsMines(t *testing.T) {
	g := newSession(t, 2, 1, []game.Coord{{X: 0, Y: 0}})
	if got := g.OnLeftClick(1, 0); got != game.Cleared {
		t.Fatalf("click = %v, want Cleared", got)
	}

	view := NewGameView(g)
	if !view.IsGameClear {
		t.Fatal("IsGameClear should be true")
	}
	if got := view.Cells[0][0].State; got != "flagged" {
		t.Errorf("mine view on clear = %q, want flagged", got)
	}
}

func TestJSONNilSession(t *testing.T) {
	if got := JSON(nil); got != "{}" {
		t.Errorf("JSON(nil) = %q, want {}", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := newSession(t, 2, 2, []game.Coord{{X: 0, Y: 0}})
	var view GameView
	if err := json.Unmarshal([]byte(JSON(g)), &view); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(view.Cells) != 2 || len(view.Cells[0]) != 2 {
		t.Errorf("cells shape = %dx%d", len(view.Cells), len(view.Cells[0]))
	}
}

func TestSpriteIndex(t *testing.T) {
	cases := []struct {
		name string
		cell game.Cell
		want int
	}{
		{"covered", game.Cell{State: game.Covered}, SpriteCovered},
		{"covered mine", game.Cell{State: game.Covered, HasMine: true}, SpriteCovered},
		{"flagged", game.Cell{State: game.Flagged}, SpriteFlag},
		{"exposed mine", game.Cell{State: game.Exposed, HasMine: true}, SpriteMine},
		{"exposed blank", game.Cell{State: game.Exposed}, SpriteBlank},
		{"exposed 3", game.Cell{State: game.Exposed, NeighborCount: 3}, 3},
		{"exposed 8", game.Cell{State: game.Exposed, NeighborCount: 8}, 8},
	}
	for _, tc := range cases {
		if got := SpriteIndex(tc.cell); got != tc.want {
			t.Errorf("%s: SpriteIndex = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDigitSprites(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{0, []int{0}},
		{-3, []int{0}},
		{7, []int{7}},
		{10, []int{1, 0}},
		{907, []int{9, 0, 7}},
	}
	for _, tc := range cases {
		if got := DigitSprites(tc.n); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("DigitSprites(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

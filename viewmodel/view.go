package viewmodel

import (
	"encoding/json"

	"github.com/zerovolts/minesweeper/game"
)

// CellView はシェル（JS / HTTPクライアント）向けの1マス分のスナップショットです
type CellView struct {
	State  string `json:"state"` // "hidden" / "flagged" / "opened"
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

// GameView はセッション全体のスナップショットです
type GameView struct {
	Cells          [][]CellView `json:"cells"`
	MinesRemaining int          `json:"mines_remaining"`
	Turns          int          `json:"turns"`
	ElapsedSeconds int          `json:"elapsed_seconds"`
	IsGameOver     bool         `json:"is_game_over"`
	IsGameClear    bool         `json:"is_game_clear"`
}

// NewGameView はセッションの現在状態からビューを組み立てます
func NewGameView(g *game.GameState) GameView {
	b := g.Board()
	isClear := g.State() == game.Won
	isOver := g.State() == game.Lost

	grid := make([][]CellView, b.Height)
	for y := 0; y < b.Height; y++ {
		grid[y] = make([]CellView, b.Width)
		for x := 0; x < b.Width; x++ {
			c, _ := b.Get(x, y)
			v := CellView{}

			switch c.State {
			case game.Exposed:
				v.State = "opened"
				v.IsMine = c.HasMine
				if !c.HasMine {
					v.Count = c.NeighborCount
				}
			case game.Flagged:
				v.State = "flagged"
			default:
				v.State = "hidden"
			}

			// クリア時はフラグを付け損ねた地雷もフラグ表示にする
			if isClear && c.HasMine {
				v.State = "flagged"
			}
			grid[y][x] = v
		}
	}

	return GameView{
		Cells:          grid,
		MinesRemaining: g.TotalMines() - g.TotalFlags(),
		Turns:          g.Turns(),
		ElapsedSeconds: int(g.Elapsed().Seconds()),
		IsGameOver:     isOver,
		IsGameClear:    isClear,
	}
}

// JSON はビューをJSON文字列にして返します（wasm向け）
// nil の場合は空のJSONオブジェクトを返します
func JSON(g *game.GameState) string {
	if g == nil {
		return "{}"
	}
	bytes, _ := json.Marshal(NewGameView(g))
	return string(bytes)
}

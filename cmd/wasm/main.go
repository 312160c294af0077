//go:build js && wasm

package main

import (
	"math/rand"
	"syscall/js"
	"time"

	"github.com/zerovolts/minesweeper/game"
	"github.com/zerovolts/minesweeper/generator"
	"github.com/zerovolts/minesweeper/solver"
	"github.com/zerovolts/minesweeper/viewmodel"
)

// GameSession はブラウザ側から操作される1ゲーム分の状態です
type GameSession struct {
	state *game.GameState
	rng   *rand.Rand
}

var session = &GameSession{
	rng: rand.New(rand.NewSource(time.Now().UnixNano())),
}

// NewGame は新しいゲームを開始してビューを返します
func (s *GameSession) NewGame(width, height, mineCount int) string {
	board, err := game.NewBoard(width, height)
	if err != nil {
		return "{}"
	}
	if mineCount >= width*height {
		mineCount = width*height - 1
	}
	generator.Scatter(board, mineCount, s.rng)
	s.state = game.NewGameState(board)
	return viewmodel.JSON(s.state)
}

// Open は指定されたセルを開きます
func (s *GameSession) Open(x, y int) string {
	if s.state == nil {
		return ""
	}
	s.state.OnLeftClick(x, y)
	return viewmodel.JSON(s.state)
}

// ToggleFlag はフラグを切り替えます
func (s *GameSession) ToggleFlag(x, y int) string {
	if s.state == nil {
		return ""
	}
	s.state.OnRightClick(x, y)
	return viewmodel.JSON(s.state)
}

// BotStep はソルバーに1手進めさせます
func (s *GameSession) BotStep() string {
	if s.state == nil || s.state.Finished() {
		return ""
	}

	bot := solver.New(s.state.Board(), s.rng)
	move := bot.NextMove()
	if move == nil {
		return viewmodel.JSON(s.state) // 打つ手なし
	}

	switch move.Type {
	case solver.MoveOpen:
		s.state.OnLeftClick(move.X, move.Y)
	case solver.MoveFlag:
		s.state.OnRightClick(move.X, move.Y)
	}
	return viewmodel.JSON(s.state)
}

func newGameWrapper(this js.Value, args []js.Value) interface{} {
	// デフォルト値（JS側から goNewGame(w, h, m) と呼ばれる想定）
	w, h, m := 10, 10, 10
	if len(args) >= 3 {
		w = args[0].Int()
		h = args[1].Int()
		m = args[2].Int()
	}
	return session.NewGame(w, h, m)
}

func openCellWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return session.Open(args[0].Int(), args[1].Int())
}

func toggleFlagWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return session.ToggleFlag(args[0].Int(), args[1].Int())
}

func botStepWrapper(this js.Value, args []js.Value) interface{} {
	return session.BotStep()
}

func main() {
	c := make(chan struct{})

	js.Global().Set("goNewGame", js.FuncOf(newGameWrapper))
	js.Global().Set("goOpenCell", js.FuncOf(openCellWrapper))
	js.Global().Set("goToggleFlag", js.FuncOf(toggleFlagWrapper))
	js.Global().Set("goBotStep", js.FuncOf(botStepWrapper))

	println("Go WebAssembly Initialized")
	<-c
}

package main

import (
	"flag"
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/zerovolts/minesweeper/game"
	"github.com/zerovolts/minesweeper/generator"
	"github.com/zerovolts/minesweeper/viewmodel"
)

const (
	cellSize = 8 // スプライト1枚の論理サイズ(px)
	uiScale  = 4
	hudRows  = 3 // 盤面の上に確保するHUDの行数
	tile     = cellSize * uiScale
)

var log = logrus.New()

var (
	backgroundColor = color.RGBA{60, 50, 83, 255} // 元のウィンドウクリア色
	coveredColor    = color.RGBA{110, 110, 130, 255}
	exposedColor    = color.RGBA{200, 200, 210, 255}
	flagColor       = color.RGBA{200, 170, 60, 255}
	mineColor       = color.RGBA{190, 60, 60, 255}
	hudTextColor    = color.RGBA{235, 235, 240, 255}
)

// digitColors は数字 1-8 の定番配色です（0は使わない）
var digitColors = [9]color.RGBA{
	{},
	{40, 70, 200, 255},
	{30, 130, 60, 255},
	{200, 50, 50, 255},
	{60, 40, 140, 255},
	{140, 60, 40, 255},
	{40, 140, 140, 255},
	{40, 40, 40, 255},
	{120, 120, 120, 255},
}

// App はデスクトップシェル本体です
// コアの GameState を保持し、マウス入力と描画だけを担当します
type App struct {
	width   int
	height  int
	density float64
	rng     *rand.Rand
	state   *game.GameState
}

func newApp(width, height int, density float64, rng *rand.Rand) *App {
	a := &App{width: width, height: height, density: density, rng: rng}
	a.startNewGame()
	return a
}

// startNewGame は新しい盤面とセッションを作り直します
// 盤面の作り直しであってリセットではないので、古い状態は捨てます
func (a *App) startNewGame() {
	board, err := game.NewBoard(a.width, a.height)
	if err != nil {
		log.Fatal(err)
	}
	mines := generator.ScatterDensity(board, a.density, a.rng)
	a.state = game.NewGameState(board)
	log.WithFields(logrus.Fields{
		"width":  a.width,
		"height": a.height,
		"mines":  mines,
	}).Info("new game")
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.startNewGame()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		// HUD領域のクリックは盤面に渡さない
		if my >= hudRows*tile {
			a.state.OnLeftClick(mx/tile, my/tile-hudRows)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		// 範囲外座標はコア側で no-op になるので座標変換だけ行う
		a.state.OnRightClick(mx/tile, my/tile-hudRows)
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	a.drawHUD(screen)

	board := a.state.Board()
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			cell, _ := board.Get(x, y)
			a.drawCell(screen, cell, x*tile, (y+hudRows)*tile)
		}
	}
}

// drawHUD は上段にタイマー・フラグ数・地雷数を並べます（元のHUDと同じ順）
func (a *App) drawHUD(screen *ebiten.Image) {
	cursorX := 1
	cursorX = a.drawCounter(screen, cursorX, "T", int(a.state.Elapsed().Seconds()))
	cursorX++
	cursorX = a.drawCounter(screen, cursorX, "F", a.state.TotalFlags())
	cursorX++
	a.drawCounter(screen, cursorX, "*", a.state.TotalMines())
}

// drawCounter はアイコン1枚 + 数字スプライト列を描き、進んだ桁数を返します
func (a *App) drawCounter(screen *ebiten.Image, cursorX int, icon string, value int) int {
	a.drawGlyph(screen, icon, cursorX*tile, tile, hudTextColor)
	cursorX++
	for _, digit := range viewmodel.DigitSprites(value) {
		a.drawGlyph(screen, strconv.Itoa(digit), cursorX*tile, tile, hudTextColor)
		cursorX++
	}
	return cursorX
}

func (a *App) drawCell(screen *ebiten.Image, cell game.Cell, px, py int) {
	switch sprite := viewmodel.SpriteIndex(cell); sprite {
	case viewmodel.SpriteCovered:
		a.drawTile(screen, px, py, coveredColor, "", nil)
	case viewmodel.SpriteFlag:
		a.drawTile(screen, px, py, coveredColor, "F", flagColor)
	case viewmodel.SpriteMine:
		a.drawTile(screen, px, py, mineColor, "*", color.Black)
	case viewmodel.SpriteBlank:
		a.drawTile(screen, px, py, exposedColor, "", nil)
	default:
		// 1-8 の数字マス
		a.drawTile(screen, px, py, exposedColor, strconv.Itoa(sprite), digitColors[sprite])
	}
}

func (a *App) drawTile(screen *ebiten.Image, px, py int, bg color.Color, glyph string, fg color.Color) {
	vector.DrawFilledRect(screen, float32(px)+1, float32(py)+1, tile-2, tile-2, bg, false)
	if glyph != "" {
		a.drawGlyph(screen, glyph, px, py, fg)
	}
}

func (a *App) drawGlyph(screen *ebiten.Image, glyph string, px, py int, fg color.Color) {
	// Face7x13 をタイルの中央あたりに寄せる
	text.Draw(screen, glyph, basicfont.Face7x13, px+(tile-7)/2, py+(tile+13)/2-2, fg)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width * tile, (a.height + hudRows) * tile
}

func main() {
	width := flag.Int("w", 32, "盤面の横マス数")
	height := flag.Int("h", 32, "盤面の縦マス数")
	density := flag.Float64("density", 0.15, "地雷の密度 (0.0-1.0)")
	seed := flag.Int64("seed", 0, "乱数シード（0なら現在時刻）")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	app := newApp(*width, *height, *density, rand.New(rand.NewSource(*seed)))

	ebiten.SetWindowTitle("minesweeper")
	ebiten.SetWindowSize(*width*tile, (*height+hudRows)*tile)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

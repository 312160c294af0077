package game

import (
	"fmt"
	"strconv"
	"strings"
)

// neighborOffsets は周囲8マスへのオフセットです（左上から時計回りの固定順）
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// NewBoard は指定されたサイズの盤面を初期化して返します
// 全マスは未開封・地雷なしの状態で、地雷の配置は PlaceMine で行います
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("game: invalid board size %dx%d", width, height)
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// inBounds は座標が盤面内かどうかを返します
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b *Board) index(x, y int) int {
	return x + y*b.Width
}

// Get は指定座標のマスのコピーを返します（範囲外なら false）
func (b *Board) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// Neighbors は範囲内にある隣接マスの座標を返します
// 順序は neighborOffsets の固定順なので、同じ盤面なら常に同じ並びになります
func (b *Board) Neighbors(x, y int) []Coord {
	neighbors := make([]Coord, 0, 8)
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if b.inBounds(nx, ny) {
			neighbors = append(neighbors, Coord{nx, ny})
		}
	}
	return neighbors
}

// PlaceMine は指定座標に地雷を配置します
// 範囲外、またはすでに地雷があるマスには何もせず false を返します
// （同じマスへの二重配置は周囲の地雷数を壊すため、冪等にしてあります）
func (b *Board) PlaceMine(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	cell := &b.cells[b.index(x, y)]
	if cell.HasMine {
		return false
	}
	cell.HasMine = true
	b.mines++

	// 自分の NeighborCount は現時点の隣接地雷を数え直し、
	// 隣接マスには新しく置いた地雷の分を1ずつ加算する
	count := 0
	for _, n := range b.Neighbors(x, y) {
		neighbor := &b.cells[b.index(n.X, n.Y)]
		if neighbor.HasMine {
			count++
		}
		neighbor.NeighborCount++
	}
	cell.NeighborCount = count
	return true
}

// Uncover は指定座標のマスを開けて結果を返します
// 範囲外・開封済み・フラグ付きのマスは何もせず InProgress を返します
// （フラグ付きマスは直接クリックでは開かない）
func (b *Board) Uncover(x, y int) BoardState {
	if !b.inBounds(x, y) {
		return InProgress
	}
	cell := &b.cells[b.index(x, y)]
	if cell.State != Covered {
		return InProgress
	}

	cell.State = Exposed

	if cell.HasMine {
		b.RevealAllMines()
		return Detonated
	}

	// 0連鎖（Flood Fill）
	// 再帰ではなくワークリストで展開する（大きい盤面でのスタック対策）
	// Covered → Exposed の遷移が訪問済みガードを兼ねるため、各マスは
	// 高々1回しか積まれず必ず停止する
	if cell.NeighborCount == 0 {
		queue := []Coord{{x, y}}
		for len(queue) > 0 {
			c := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			for _, n := range b.Neighbors(c.X, c.Y) {
				neighbor := &b.cells[b.index(n.X, n.Y)]
				if neighbor.State != Covered || neighbor.HasMine {
					continue
				}
				neighbor.State = Exposed
				// 数字マスは開くだけで、そこから先へは広げない
				if neighbor.NeighborCount == 0 {
					queue = append(queue, n)
				}
			}
		}
	}

	if b.CheckClear() {
		return Cleared
	}
	return InProgress
}

// ToggleFlag は指定座標のフラグを切り替え、フラグ数の増減を返します
// Covered→Flagged は +1、Flagged→Covered は -1、それ以外は 0 です
func (b *Board) ToggleFlag(x, y int) int {
	if !b.inBounds(x, y) {
		return 0
	}
	cell := &b.cells[b.index(x, y)]
	switch cell.State {
	case Covered:
		cell.State = Flagged
		b.flags++
		return 1
	case Flagged:
		cell.State = Covered
		b.flags--
		return -1
	default:
		// 開いているマスにはフラグを置けない
		return 0
	}
}

// RevealAllMines は全ての地雷マスを開封します（ゲームオーバー時に使用）
func (b *Board) RevealAllMines() {
	for i := range b.cells {
		if b.cells[i].HasMine {
			b.cells[i].State = Exposed
		}
	}
}

// CheckClear は地雷以外の全マスが開封済みかどうかを返します
func (b *Board) CheckClear() bool {
	for i := range b.cells {
		if !b.cells[i].HasMine && b.cells[i].State != Exposed {
			return false
		}
	}
	return true
}

// MineCount は配置済みの地雷数を返します
func (b *Board) MineCount() int { return b.mines }

// FlagCount は現在のフラグ数を返します
func (b *Board) FlagCount() int { return b.flags }

// String は盤面をデバッグ用のテキストにして返します
// 未開封は「-」、フラグは「F」、開封済みの地雷は「%」、
// それ以外の開封済みマスは隣接地雷数の数字です（0 も数字のまま）
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := b.cells[b.index(x, y)]
			switch {
			case cell.State == Covered:
				sb.WriteByte('-')
			case cell.State == Flagged:
				sb.WriteByte('F')
			case cell.HasMine:
				sb.WriteByte('%')
			default:
				sb.WriteString(strconv.Itoa(cell.NeighborCount))
			}
		}
	}
	return sb.String()
}

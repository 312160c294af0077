package viewmodel

import "github.com/zerovolts/minesweeper/game"

// スプライトシート上の割り当て
// 0-9 は数字、1-8 は開封済みマスの隣接地雷数と同じ番号を使います
const (
	SpriteMine    = 10 // 開封された地雷
	SpriteFlag    = 11 // フラグ
	SpriteCovered = 13 // 未開封
	SpriteBlank   = 14 // 開封済みで隣接地雷0
	SpriteClock   = 15 // HUDのターンカウンター用アイコン
)

// SpriteIndex はマスの描画に使うスプライト番号を返します
// マスの状態だけから決まる純粋な対応で、盤面側には何の状態も持ちません
func SpriteIndex(c game.Cell) int {
	switch c.State {
	case game.Covered:
		return SpriteCovered
	case game.Flagged:
		return SpriteFlag
	default:
		if c.HasMine {
			return SpriteMine
		}
		if c.NeighborCount == 0 {
			return SpriteBlank
		}
		return c.NeighborCount
	}
}

// DigitSprites は数値をHUD用の数字スプライト列（各桁 0-9）に分解します
func DigitSprites(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	digits := []int{}
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	// 下位桁から積んだので反転する
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

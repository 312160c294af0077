// Package generator は盤面への地雷のばらまきを担当します
// 乱数をコアの外に置くことで、同じシードから同じ盤面を再現できます
package generator

import (
	"math/rand"

	"github.com/zerovolts/minesweeper/game"
)

// Scatter は重複しない座標を count 個選んで地雷を配置し、配置数を返します
// 非復元抽出なので同じマスが二度選ばれることはなく、隣接カウントが
// 二重加算で壊れることもありません
func Scatter(b *game.Board, count int, rng *rand.Rand) int {
	total := b.Width * b.Height
	if count > total {
		count = total
	}
	if count <= 0 {
		return 0
	}

	placed := 0
	for _, i := range rng.Perm(total)[:count] {
		if b.PlaceMine(i%b.Width, i/b.Width) {
			placed++
		}
	}
	return placed
}

// ScatterDensity は各マスを1回ずつ density の確率で地雷にし、配置数を返します
func ScatterDensity(b *game.Board, density float64, rng *rand.Rand) int {
	placed := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if rng.Float64() < density {
				if b.PlaceMine(x, y) {
					placed++
				}
			}
		}
	}
	return placed
}

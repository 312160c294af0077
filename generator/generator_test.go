package generator

import (
	"math/rand"
	"testing"

	"github.com/zerovolts/minesweeper/game"
)

func newBoard(t *testing.T, width, height int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(width, height)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func TestScatterPlacesExactCount(t *testing.T) {
	b := newBoard(t, 9, 9)
	rng := rand.New(rand.NewSource(1))
	if got := Scatter(b, 10, rng); got != 10 {
		t.Fatalf("Scatter placed %d mines, want 10", got)
	}
	if b.MineCount() != 10 {
		t.Errorf("MineCount = %d, want 10", b.MineCount())
	}
}

// 要求数が盤面サイズを超えても全マス分で頭打ちになること
func TestScatterCapsAtBoardSize(t *testing.T) {
	b := newBoard(t, 3, 3)
	rng := rand.New(rand.NewSource(1))
	if got := Scatter(b, 100, rng); got != 9 {
		t.Fatalf("Scatter placed %d mines, want 9", got)
	}
}

func TestScatterZeroOrNegative(t *testing.T) {
	b := newBoard(t, 3, 3)
	rng := rand.New(rand.NewSource(1))
	if got := Scatter(b, 0, rng); got != 0 {
		t.Errorf("Scatter(0) placed %d", got)
	}
	if got := Scatter(b, -5, rng); got != 0 {
		t.Errorf("Scatter(-5) placed %d", got)
	}
}

// 同じシードなら同じ盤面になること（シェル側で再現可能にするため）
func TestScatterDeterministicBySeed(t *testing.T) {
	b1 := newBoard(t, 8, 8)
	b2 := newBoard(t, 8, 8)
	Scatter(b1, 12, rand.New(rand.NewSource(42)))
	Scatter(b2, 12, rand.New(rand.NewSource(42)))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c1, _ := b1.Get(x, y)
			c2, _ := b2.Get(x, y)
			if c1.HasMine != c2.HasMine {
				t.Fatalf("boards diverge at (%d, %d) with the same seed", x, y)
			}
		}
	}
}

func TestScatterDensity(t *testing.T) {
	b := newBoard(t, 10, 10)
	rng := rand.New(rand.NewSource(7))
	placed := ScatterDensity(b, 0.15, rng)
	if placed != b.MineCount() {
		t.Errorf("returned %d but board has %d mines", placed, b.MineCount())
	}
	if placed == 0 || placed == 100 {
		t.Errorf("implausible mine count %d for density 0.15", placed)
	}

	// density 1.0 なら全マスが地雷になる（各マスちょうど1回の判定）
	full := newBoard(t, 4, 4)
	if got := ScatterDensity(full, 1.0, rng); got != 16 {
		t.Errorf("density 1.0 placed %d, want 16", got)
	}
}

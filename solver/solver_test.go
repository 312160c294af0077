package solver

import (
	"math/rand"
	"testing"

	"github.com/zerovolts/minesweeper/game"
)

func buildBoard(t *testing.T, width, height int, mines []game.Coord) *game.Board {
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
	return b
}

func newSolver(b *game.Board) *Solver {
	return New(b, rand.New(rand.NewSource(1)))
}

// フラグで数字が満たされた数字マスの残り隣接は安全と判定されること
func TestFindSafeMove(t *testing.T) {
	b := buildBoard(t, 2, 2, []game.Coord{{X: 0, Y: 0}})
	b.Uncover(1, 1)    // 数字1のマス
	b.ToggleFlag(0, 0) // 地雷に正しくフラグ

	move := newSolver(b).NextMove()
	if move == nil {
		t.Fatal("expected a move")
	}
	if move.Type != MoveOpen || move.Strategy != "Logic" || move.IsGuess {
		t.Fatalf("move = %+v, want logic open", move)
	}
	if c, _ := b.Get(move.X, move.Y); c.HasMine {
		t.Fatalf("solver opened a mine at (%d, %d)", move.X, move.Y)
	}
}

// 「未開封数 == 数字」のマスの隣接は地雷確定としてフラグされること
func TestFindFlagMove(t *testing.T) {
	b := buildBoard(t, 2, 1, []game.Coord{{X: 0, Y: 0}})
	b.Uncover(1, 0) // 数字1、未開封の隣接は地雷のみ

	move := newSolver(b).NextMove()
	if move == nil {
		t.Fatal("expected a move")
	}
	if move.Type != MoveFlag || move.X != 0 || move.Y != 0 {
		t.Fatalf("move = %+v, want flag at (0, 0)", move)
	}
	if move.IsGuess {
		t.Error("logic flag should not be a guess")
	}
}

// タンク解法: 両側の数字1に挟まれた中央マスが地雷確定になること
func TestTankSolveCertainMine(t *testing.T) {
	b := buildBoard(t, 3, 1, []game.Coord{{X: 1, Y: 0}})
	b.Uncover(0, 0)
	b.Uncover(2, 0)

	move := NewTankSolver(b).Solve()
	if move == nil {
		t.Fatal("expected a tank move")
	}
	if move.Type != MoveFlag || move.X != 1 || move.Y != 0 {
		t.Fatalf("move = %+v, want flag at (1, 0)", move)
	}
	if move.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", move.Confidence)
	}
}

// 境界が存在しない盤面ではタンク解法は手を返さないこと
func TestTankSolveNoFrontier(t *testing.T) {
	b := buildBoard(t, 3, 3, []game.Coord{{X: 0, Y: 0}})
	if move := NewTankSolver(b).Solve(); move != nil {
		t.Fatalf("move = %+v, want nil on untouched board", move)
	}
}

// 何も開いていない盤面ではランダムな推測手になること
func TestRandomFallback(t *testing.T) {
	b := buildBoard(t, 4, 4, []game.Coord{{X: 0, Y: 0}})
	move := newSolver(b).NextMove()
	if move == nil {
		t.Fatal("expected a move")
	}
	if !move.IsGuess || move.Strategy != "Random" || move.Type != MoveOpen {
		t.Fatalf("move = %+v, want random guess open", move)
	}
}

// 全マス確定済みなら手なし
func TestNoMoveWhenNothingCovered(t *testing.T) {
	b := buildBoard(t, 2, 1, []game.Coord{{X: 0, Y: 0}})
	b.ToggleFlag(0, 0)
	b.Uncover(1, 0)
	if move := newSolver(b).NextMove(); move != nil {
		// フラグ済み地雷 + 開封済み数字のみ。安全手探索が
		// フラグ充足でヒットしないことも含めて確認する
		t.Fatalf("move = %+v, want nil", move)
	}
}

// ソルバーで実際に1ゲーム進められること（自己対局の煙テスト）
func TestSolverPlaysOutGame(t *testing.T) {
	b := buildBoard(t, 5, 5, []game.Coord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}})
	g := game.NewGameState(b)
	s := newSolver(b)

	for turns := 0; turns < 100 && !g.Finished(); turns++ {
		move := s.NextMove()
		if move == nil {
			break
		}
		if move.Type == MoveOpen {
			g.OnLeftClick(move.X, move.Y)
		} else {
			g.OnRightClick(move.X, move.Y)
		}
	}
	// 勝ち負けどちらでもよいが、無限ループや行き詰まりにならないこと
	if !g.Finished() && newSolver(b).NextMove() != nil {
		t.Error("solver stalled with moves remaining")
	}
}

package solver

import (
	"math/rand"

	"github.com/zerovolts/minesweeper/game"
)

type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

// Move はソルバーが選んだ1手です
type Move struct {
	X, Y       int
	Type       MoveType
	IsGuess    bool    // 運任せかどうか
	Strategy   string  // "Logic" / "Tank" / "Tank(Prob)" / "Random"
	Confidence float64 // 0.0 ~ 1.0（安全確率）
}

// Solver は盤面を読み取り専用で解析して次の一手を決めます
// 盤面を変更することはなく、手の適用は呼び出し側が行います
type Solver struct {
	Board *game.Board
	Rng   *rand.Rand
}

func New(b *game.Board, rng *rand.Rand) *Solver {
	return &Solver{Board: b, Rng: rng}
}

// NextMove は次の一手を返します（打つ手がなければ nil）
func (s *Solver) NextMove() *Move {
	// 1. 論理的に「絶対に安全」なマス
	if move := s.findSafeMove(); move != nil {
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	// 2. 論理的に「絶対に地雷」のマス
	if move := s.findFlagMove(); move != nil {
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	// 3. タンク解法（境界マスの全列挙）
	if move := NewTankSolver(s.Board).Solve(); move != nil {
		move.IsGuess = move.Confidence < 1.0
		return move
	}

	// 4. ランダム
	move := s.findPureRandomMove()
	if move != nil {
		move.IsGuess = true
	}
	return move
}

// findSafeMove は「周囲のフラグ数 == 数字」になっている数字マスを探し、
// その周囲の未開封マスを安全として返します
func (s *Solver) findSafeMove() *Move {
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			cell, _ := s.Board.Get(x, y)
			if cell.State != game.Exposed || cell.NeighborCount == 0 {
				continue
			}
			_, flags, hidden := s.neighborsInfo(x, y)
			if flags == cell.NeighborCount && len(hidden) > 0 {
				target := hidden[0]
				return &Move{X: target.X, Y: target.Y, Type: MoveOpen}
			}
		}
	}
	return nil
}

// findFlagMove は「周囲の未開封数 == 数字」になっている数字マスを探し、
// まだフラグのない未開封マスを地雷確定として返します
func (s *Solver) findFlagMove() *Move {
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			cell, _ := s.Board.Get(x, y)
			if cell.State != game.Exposed || cell.NeighborCount == 0 {
				continue
			}
			totalHidden, flags, hidden := s.neighborsInfo(x, y)
			if totalHidden == cell.NeighborCount && totalHidden-flags > 0 && len(hidden) > 0 {
				target := hidden[0]
				return &Move{X: target.X, Y: target.Y, Type: MoveFlag}
			}
		}
	}
	return nil
}

// findPureRandomMove は未開封・未フラグのマスから一様に1つ選びます
func (s *Solver) findPureRandomMove() *Move {
	candidates := []game.Coord{}
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			c, _ := s.Board.Get(x, y)
			if c.State == game.Covered {
				candidates = append(candidates, game.Coord{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	choice := candidates[s.Rng.Intn(len(candidates))]
	return &Move{
		X: choice.X, Y: choice.Y,
		Type:       MoveOpen,
		Strategy:   "Random",
		Confidence: 0.0,
	}
}

// neighborsInfo は周囲8マスの「未開封総数（フラグ込み）」「フラグ数」
// 「フラグなし未開封マスの座標」を返します
func (s *Solver) neighborsInfo(cx, cy int) (totalHidden int, flags int, hidden []game.Coord) {
	for _, n := range s.Board.Neighbors(cx, cy) {
		neighbor, _ := s.Board.Get(n.X, n.Y)
		switch neighbor.State {
		case game.Flagged:
			totalHidden++
			flags++
		case game.Covered:
			totalHidden++
			hidden = append(hidden, n)
		}
	}
	return
}

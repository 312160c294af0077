package solver

import (
	"github.com/zerovolts/minesweeper/game"
)

// maxSegmentSize はタンク解法が全列挙するセグメントの上限です
// これを超える境界は 2^n 爆発するため諦めます
const maxSegmentSize = 18

// TankSolver は境界マスをセグメントに分割し、地雷配置を
// バックトラック探索で全列挙して確定手と確率を求めます
type TankSolver struct {
	Board *game.Board
}

func NewTankSolver(b *game.Board) *TankSolver {
	return &TankSolver{Board: b}
}

// Solve はタンク解法を実行します
// 確定安全・確定地雷があればそれを、なければ最も安全な確率手を返します
// 境界がなければ nil を返します
func (ts *TankSolver) Solve() *Move {
	segments := ts.createSegments()

	var bestMove *Move
	bestProb := 1.0 // 1.0 = 地雷確率100%（最悪）

	// セグメントは互いに独立なので個別に解く
	for _, seg := range segments {
		if len(seg.unknowns) > maxSegmentSize {
			continue
		}

		solutions := ts.solveSegment(seg)
		if len(solutions) == 0 {
			continue // 解なし（矛盾）
		}

		// 各マスが地雷である解の数を数えて確率にする
		counts := make([]int, len(seg.unknowns))
		for _, sol := range solutions {
			for i, isMine := range sol {
				if isMine {
					counts[i]++
				}
			}
		}

		total := float64(len(solutions))
		for i, count := range counts {
			prob := float64(count) / total
			pos := seg.unknowns[i]

			// 確定安全 (0%)
			if prob == 0.0 {
				return &Move{X: pos.X, Y: pos.Y, Type: MoveOpen, Strategy: "Tank", Confidence: 1.0}
			}
			// 確定地雷 (100%)
			if prob == 1.0 {
				return &Move{X: pos.X, Y: pos.Y, Type: MoveFlag, Strategy: "Tank", Confidence: 1.0}
			}

			// 確率が低いほうが安全
			if prob < bestProb {
				bestProb = prob
				bestMove = &Move{
					X: pos.X, Y: pos.Y,
					Type:       MoveOpen,
					Strategy:   "Tank(Prob)",
					Confidence: 1.0 - prob,
				}
			}
		}
	}

	return bestMove
}

// --- セグメント（連結成分）管理 ---

type segment struct {
	unknowns []game.Coord // このセグメントに含まれる未開封マス
	rules    []rule       // セグメント内の数字マス制約
}

type rule struct {
	cells []int // unknowns のインデックス
	mines int   // そこに置くべき地雷数
}

// createSegments は数字マスと未開封マスの隣接関係から連結成分を作ります
func (ts *TankSolver) createSegments() []*segment {
	unknownMap := make(map[int]game.Coord) // key: x + y*Width
	numberedCells := []game.Coord{}

	for y := 0; y < ts.Board.Height; y++ {
		for x := 0; x < ts.Board.Width; x++ {
			c, _ := ts.Board.Get(x, y)
			if c.State != game.Exposed || c.NeighborCount == 0 {
				continue
			}

			// フラグで既に満たされている数字マスは制約にならない
			_, flags, hidden := ts.neighborsInfo(x, y)
			if flags == c.NeighborCount || len(hidden) == 0 {
				continue
			}

			for _, n := range hidden {
				unknownMap[n.X+n.Y*ts.Board.Width] = n
			}
			numberedCells = append(numberedCells, game.Coord{X: x, Y: y})
		}
	}

	// 同じ数字マスを共有する未開封マス同士を繋いだグラフを作り、
	// BFSで連結成分に分解する
	adj := make(map[int][]int)
	for _, numPos := range numberedCells {
		_, _, hidden := ts.neighborsInfo(numPos.X, numPos.Y)
		for i := 0; i < len(hidden)-1; i++ {
			u1 := hidden[i].X + hidden[i].Y*ts.Board.Width
			for j := i + 1; j < len(hidden); j++ {
				u2 := hidden[j].X + hidden[j].Y*ts.Board.Width
				adj[u1] = append(adj[u1], u2)
				adj[u2] = append(adj[u2], u1)
			}
		}
	}

	visited := make(map[int]bool)
	var segments []*segment

	for key := range unknownMap {
		if visited[key] {
			continue
		}

		groupKeys := []int{}
		queue := []int{key}
		visited[key] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			groupKeys = append(groupKeys, curr)
			for _, next := range adj[curr] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		seg := &segment{unknowns: make([]game.Coord, len(groupKeys))}
		localIndex := make(map[int]int)
		for i, k := range groupKeys {
			seg.unknowns[i] = unknownMap[k]
			localIndex[k] = i
		}

		// このセグメントに属する数字マスからルールを起こす
		// 未開封マスの1つが属していれば、連結しているので全て属している
		for _, numPos := range numberedCells {
			_, flags, hidden := ts.neighborsInfo(numPos.X, numPos.Y)
			if len(hidden) == 0 {
				continue
			}
			firstKey := hidden[0].X + hidden[0].Y*ts.Board.Width
			if _, ok := localIndex[firstKey]; !ok {
				continue
			}

			numCell, _ := ts.Board.Get(numPos.X, numPos.Y)
			r := rule{
				cells: make([]int, len(hidden)),
				mines: numCell.NeighborCount - flags,
			}
			for i, n := range hidden {
				r.cells[i] = localIndex[n.X+n.Y*ts.Board.Width]
			}
			seg.rules = append(seg.rules, r)
		}
		segments = append(segments, seg)
	}

	return segments
}

// --- 探索ロジック ---

func (ts *TankSolver) solveSegment(seg *segment) [][]bool {
	solutions := [][]bool{}
	config := make([]bool, len(seg.unknowns))
	ts.backtrack(seg, 0, config, &solutions)
	return solutions
}

func (ts *TankSolver) backtrack(seg *segment, index int, config []bool, solutions *[][]bool) {
	if index == len(seg.unknowns) {
		if ts.isValid(seg, config, true) {
			sol := make([]bool, len(config))
			copy(sol, config)
			*solutions = append(*solutions, sol)
		}
		return
	}

	// 枝刈り: ここまでの仮置きで既に矛盾していたら打ち切る
	if !ts.isValid(seg, config, false) {
		return
	}

	config[index] = true
	ts.backtrack(seg, index+1, config, solutions)

	config[index] = false
	ts.backtrack(seg, index+1, config, solutions)
}

func (ts *TankSolver) isValid(seg *segment, config []bool, isFinal bool) bool {
	for _, r := range seg.rules {
		mines := 0
		for _, idx := range r.cells {
			if config[idx] {
				mines++
			}
		}
		if isFinal {
			// 最終チェック: 地雷数がぴったり一致すること
			if mines != r.mines {
				return false
			}
		} else if mines > r.mines {
			// 途中チェック: 既に超過していたらアウト
			return false
		}
	}
	return true
}

func (ts *TankSolver) neighborsInfo(cx, cy int) (totalHidden int, flags int, hidden []game.Coord) {
	for _, n := range ts.Board.Neighbors(cx, cy) {
		c, _ := ts.Board.Get(n.X, n.Y)
		switch c.State {
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

package game

// CellState はマスの開閉状態を表します
// 「未開封」「開封済み」「フラグ付き」は排他的で、同時には成立しません
type CellState int

const (
	Covered CellState = iota // 未開封
	Exposed                  // 開封済み
	Flagged                  // フラグ付き
)

// BoardState は Uncover 操作の結果を表します
type BoardState int

const (
	InProgress BoardState = iota // ゲーム継続
	Cleared                      // 地雷以外を全て開封した（勝利）
	Detonated                    // 地雷を踏んだ（敗北）
)

// Cell は1つのマスの情報を持ちます
type Cell struct {
	State         CellState // 開閉状態
	HasMine       bool      // 地雷かどうか（配置後は変化しない）
	NeighborCount int       // 周囲8マスにある地雷の数 (0-8)
}

// Coord は盤面上の座標です
type Coord struct {
	X, Y int
}

// Board はゲーム盤面全体を持ちます
// マスは x + y*Width の1次元配列で管理します
type Board struct {
	Width  int
	Height int
	cells  []Cell
	mines  int
	flags  int
}

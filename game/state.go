package game

import "time"

// PlayState はセッション全体の進行状態を表します
type PlayState int

const (
	Unstarted PlayState = iota // 最初のクリック待ち
	Playing                    // プレイ中（タイマー作動）
	Won                        // クリア
	Lost                       // ゲームオーバー
)

// GameState は1セッション分の盤面とカウンター類を管理し、
// 盤面の結果（Cleared / Detonated）を PlayState の遷移に変換します
// Won / Lost になった後はどの操作も状態を変えません
type GameState struct {
	board      *Board
	totalMines int
	totalFlags int
	turns      int
	state      PlayState
	startedAt  time.Time
	elapsed    time.Duration // 勝敗確定時点で固定される経過時間

	// Clock は現在時刻を返す関数です（テストで差し替え可能）
	Clock func() time.Time
}

// NewGameState は地雷配置済みの盤面からセッションを作成します
// リスタートは新しい盤面 + 新しい GameState で行います
func NewGameState(board *Board) *GameState {
	return &GameState{
		board:      board,
		totalMines: board.MineCount(),
		state:      Unstarted,
		Clock:      time.Now,
	}
}

func (g *GameState) Board() *Board { return g.board }

func (g *GameState) TotalMines() int { return g.totalMines }

func (g *GameState) TotalFlags() int { return g.totalFlags }

func (g *GameState) Turns() int { return g.turns }

func (g *GameState) State() PlayState { return g.state }

// Finished は勝敗が確定しているかどうかを返します
func (g *GameState) Finished() bool {
	return g.state == Won || g.state == Lost
}

// OnLeftClick は左クリック（開封）を処理します
// 最初のクリックで Playing に遷移してタイマーが始動し、
// 勝敗確定後のクリックは無視されます
func (g *GameState) OnLeftClick(x, y int) BoardState {
	if g.Finished() {
		return InProgress
	}
	if g.state == Unstarted {
		g.state = Playing
		g.startedAt = g.Clock()
	}

	outcome := g.board.Uncover(x, y)
	g.turns++

	switch outcome {
	case Cleared:
		g.state = Won
		g.elapsed = g.Clock().Sub(g.startedAt)
	case Detonated:
		g.state = Lost
		g.elapsed = g.Clock().Sub(g.startedAt)
	}
	return outcome
}

// OnRightClick は右クリック（フラグ切り替え）を処理します
// PlayState は変化せず、フラグ数の増減だけを返します
func (g *GameState) OnRightClick(x, y int) int {
	if g.Finished() {
		return 0
	}
	delta := g.board.ToggleFlag(x, y)
	g.totalFlags += delta
	return delta
}

// Elapsed は表示用の経過時間を返します
// プレイ中は現在時刻との差、勝敗確定後は確定時点の値、開始前はゼロです
func (g *GameState) Elapsed() time.Duration {
	switch g.state {
	case Playing:
		return g.Clock().Sub(g.startedAt)
	case Won, Lost:
		return g.elapsed
	default:
		return 0
	}
}

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zerovolts/minesweeper/game"
	"github.com/zerovolts/minesweeper/generator"
	"github.com/zerovolts/minesweeper/solver"
)

var log = logrus.New()

func main() {
	games := flag.Int("games", 10000, "プレイするゲーム数")
	out := flag.String("out", "dataset.csv", "出力先CSVファイル")
	seed := flag.Int64("seed", 0, "乱数シード（0なら現在時刻）")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// CSVヘッダー: 周囲5x5マスの情報(25個) + 正解ラベル
	header := []string{}
	for i := 0; i < 25; i++ {
		header = append(header, fmt.Sprintf("cell_%d", i))
	}
	header = append(header, "is_mine")
	writer.Write(header)

	log.WithFields(logrus.Fields{
		"games": *games,
		"out":   *out,
		"seed":  *seed,
	}).Info("generating dataset")

	records := 0
	for i := 0; i < *games; i++ {
		records += playGameAndRecord(writer, rng)
	}

	log.WithField("records", records).Info("done")
}

// playGameAndRecord はソルバーに1ゲーム自己対局させ、
// 「運任せ（Guess）」になった局面だけを記録します
// ロジックで解ける局面を学習させても意味がないためです
func playGameAndRecord(writer *csv.Writer, rng *rand.Rand) int {
	// 中級程度の密度が学習データとしてちょうどよい
	w, h, mines := 9, 9, 10

	board, err := game.NewBoard(w, h)
	if err != nil {
		log.Fatal(err)
	}
	generator.Scatter(board, mines, rng)

	state := game.NewGameState(board)
	bot := solver.New(board, rng)

	records := 0
	for !state.Finished() {
		move := bot.NextMove()
		if move == nil {
			break
		}

		if move.IsGuess && move.Type == solver.MoveOpen {
			recordState(writer, board, move.X, move.Y)
			records++
		}

		if move.Type == solver.MoveOpen {
			state.OnLeftClick(move.X, move.Y)
		} else {
			state.OnRightClick(move.X, move.Y)
		}
	}
	return records
}

// recordState は対象マスを中心にした 5x5 の盤面情報を1行書き出します
// 範囲外は 9、フラグは -2、未開封は -1、開封済みは隣接地雷数です
func recordState(writer *csv.Writer, b *game.Board, tx, ty int) {
	row := []string{}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			val := 9 // 範囲外（壁）
			if cell, ok := b.Get(tx+dx, ty+dy); ok {
				switch cell.State {
				case game.Flagged:
					val = -2
				case game.Covered:
					val = -1
				default:
					val = cell.NeighborCount
				}
			}
			row = append(row, strconv.Itoa(val))
		}
	}

	// 正解ラベル（0: 安全, 1: 地雷）
	label := "0"
	if cell, ok := b.Get(tx, ty); ok && cell.HasMine {
		label = "1"
	}
	row = append(row, label)
	writer.Write(row)
}

package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zerovolts/minesweeper/game"
	"github.com/zerovolts/minesweeper/generator"
	"github.com/zerovolts/minesweeper/viewmodel"
)

var log = logrus.New()

const (
	defaultWidth  = 10
	defaultHeight = 10
	defaultMines  = 10
)

// Session は1ゲーム分の状態を保持します
type Session struct {
	ID    string
	State *game.GameState
	mu    sync.Mutex
}

// Server は複数セッションとHTTPハンドラを管理します
type Server struct {
	sessions map[string]*Session
	mu       sync.RWMutex

	rng   *rand.Rand
	rngMu sync.Mutex
}

func New() *Server {
	return &Server{
		sessions: make(map[string]*Session),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Register は /api 以下のハンドラを mux に登録します
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", s.HandleNew)
	mux.HandleFunc("/api/open", s.HandleOpen)
	mux.HandleFunc("/api/flag", s.HandleFlag)
	mux.HandleFunc("/api/state", s.HandleState)
}

// クライアントへのレスポンス用構造体
type Response struct {
	ID   string             `json:"id"`
	Game viewmodel.GameView `json:"game"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleNew は新しいセッションを作成します
// width / height / mines はクエリで指定でき、省略時は 10x10 / 10個です
func (s *Server) HandleNew(w http.ResponseWriter, r *http.Request) {
	width := queryInt(r, "width", defaultWidth)
	height := queryInt(r, "height", defaultHeight)
	mines := queryInt(r, "mines", defaultMines)

	board, err := game.NewBoard(width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 全マス地雷は勝ち筋がないので1マスは必ず残す
	if mines >= width*height {
		mines = width*height - 1
	}
	if mines < 0 {
		mines = 0
	}

	s.rngMu.Lock()
	generator.Scatter(board, mines, s.rng)
	s.rngMu.Unlock()

	session := &Session{
		ID:    uuid.New().String(),
		State: game.NewGameState(board),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"session": session.ID,
		"width":   width,
		"height":  height,
		"mines":   mines,
	}).Info("session created")

	writeView(w, session)
}

// HandleOpen は左クリック（開封）APIです
func (s *Server) HandleOpen(w http.ResponseWriter, r *http.Request) {
	session, x, y, ok := s.sessionAndCoords(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	outcome := session.State.OnLeftClick(x, y)
	finished := session.State.Finished()
	turns := session.State.Turns()
	session.mu.Unlock()

	if finished {
		log.WithFields(logrus.Fields{
			"session": session.ID,
			"outcome": outcomeLabel(outcome),
			"turns":   turns,
		}).Info("session finished")
	}

	writeView(w, session)
}

// HandleFlag は右クリック（フラグ切り替え）APIです
func (s *Server) HandleFlag(w http.ResponseWriter, r *http.Request) {
	session, x, y, ok := s.sessionAndCoords(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	session.State.OnRightClick(x, y)
	session.mu.Unlock()

	writeView(w, session)
}

// HandleState は現在の盤面スナップショットを返します
func (s *Server) HandleState(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeView(w, session)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := r.URL.Query().Get("id")
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()
	if !exists {
		writeError(w, http.StatusNotFound, "unknown session id")
		return nil, false
	}
	return session, true
}

func (s *Server) sessionAndCoords(w http.ResponseWriter, r *http.Request) (*Session, int, int, bool) {
	session, ok := s.lookup(w, r)
	if !ok {
		return nil, 0, 0, false
	}
	x, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid x coordinate")
		return nil, 0, 0, false
	}
	y, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid y coordinate")
		return nil, 0, 0, false
	}
	return session, x, y, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeView(w http.ResponseWriter, session *Session) {
	session.mu.Lock()
	view := viewmodel.NewGameView(session.State)
	session.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{ID: session.ID, Game: view})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func outcomeLabel(o game.BoardState) string {
	switch o {
	case game.Cleared:
		return "cleared"
	case game.Detonated:
		return "detonated"
	default:
		return "in_progress"
	}
}

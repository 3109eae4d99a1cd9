package svc

import (
	"errors"
	"sync"
	"time"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
)

var ErrGameNotFound = errors.New("game not found")

// Session is one human against the AI. Lock it while reading or playing its Game.
type Session struct {
	sync.Mutex
	GameUid   message.GameUid
	Game      *checkers.Game
	AI        checkers.Turn
	Depth     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) AITurn() bool {
	return s.AI.Valid() && s.Game.NowPlayer == s.AI && !s.Game.Over()
}

type GameManager struct {
	mu       sync.RWMutex
	sessions map[message.GameUid]*Session
}

func NewGameManager() *GameManager {
	return &GameManager{sessions: make(map[message.GameUid]*Session)}
}

func (m *GameManager) New(first, ai checkers.Turn, depth int) *Session {
	now := time.Now()
	s := &Session{
		GameUid:   message.NewGameUid(),
		Game:      checkers.NewGame(first),
		AI:        ai,
		Depth:     depth,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.GameUid] = s
	return s
}

func (m *GameManager) Get(id message.GameUid) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *GameManager) Delete(id message.GameUid) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *GameManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

package game

import (
	"math/rand/v2"
	"sync"
)

// Session holds the current round of one chat.
type Session struct {
	mu      sync.Mutex
	round   *Round
	newDeck func() *Deck
}

// Round returns the current round or nil if none was dealt yet.
func (s *Session) Round() *Round {
	return s.round
}

// Reset replaces the current round with a freshly dealt one.
func (s *Session) Reset() (*Round, error) {
	r, err := Deal(s.newDeck())
	if err != nil {
		return nil, err
	}
	s.round = r
	return r, nil
}

// Manager управляет активными играми
type Manager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewManager creates a session store. A nil rng shuffles with the global source.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		rng:      rng,
	}
}

// Do runs fn with the session of chatID locked, creating the session on
// first use. Transitions and the render that follows belong inside fn.
func (m *Manager) Do(chatID int64, fn func(s *Session) error) error {
	s := m.session(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (m *Manager) session(chatID int64) *Session {
	m.mu.RLock()
	s, ok := m.sessions[chatID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[chatID]; ok {
		return s
	}
	s = &Session{newDeck: m.shuffledDeck}
	m.sessions[chatID] = s
	return s
}

func (m *Manager) shuffledDeck() *Deck {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return NewShuffledDeck(m.rng)
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

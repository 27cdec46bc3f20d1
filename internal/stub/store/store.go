// Package store provides the in-memory session storage of the stub API.

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a recording session as served by the stub API.
type Session struct {
	ID        string    `json:"id"`
	Genero    string    `json:"genero"`
	Dataset   string    `json:"dataset"`
	CreatedAt time.Time `json:"created_at"`
}

var phrases = map[string][]string{
	"common_voice": {
		"O sol nasceu atrás das montanhas.",
		"Ela comprou pão na padaria da esquina.",
		"Amanhã vai chover no fim da tarde.",
	},
	"emotions": {
		"Não acredito que isso aconteceu!",
		"Que dia maravilhoso para passear.",
	},
}

// Store keeps sessions in memory for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewStore initializes an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create adds a new session with a random id.
func (s *Store) Create(genero, dataset string) Session {
	session := Session{
		ID:        uuid.NewString(),
		Genero:    genero,
		Dataset:   dataset,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a session by id.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Phrases returns the prompt phrases of a dataset.
func (s *Store) Phrases(dataset string) ([]string, bool) {
	p, ok := phrases[dataset]
	if !ok {
		return nil, false
	}
	out := make([]string, len(p))
	copy(out, p)
	return out, true
}

// Datasets lists the known dataset names.
func (s *Store) Datasets() []string {
	names := make([]string, 0, len(phrases))
	for name := range phrases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

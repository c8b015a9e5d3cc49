// Package session holds the in-memory login-session store. These are the
// cookie-backed auth sessions, not the practice sessions of models.Session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

type Session struct {
	ID         string
	UserID     uuid.UUID
	Email      string
	Name       string
	Picture    string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastUsedAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Create(userID uuid.UUID, email, name, picture string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.New().String()
	sess := &Session{
		ID:         sessionID,
		UserID:     userID,
		Email:      email,
		Name:       name,
		Picture:    picture,
		ExpiresAt:  time.Now().Add(sessionTTL),
		CreatedAt:  time.Now(),
		LastUsedAt: time.Now(),
	}

	s.sessions[sessionID] = sess
	return sess, nil
}

// Get returns the session, or nil if it is unknown or expired.
func (s *Store) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	return sess, nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if time.Now().After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			s.CleanupExpired()
		}
	}()
}

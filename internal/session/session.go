// Package session tracks per-user state for the HTTP server: a dictionary
// store plus at most one uploaded dataset and its classification result.
// Sessions are held in memory with a TTL; expiry discards everything, which
// is the intended lifetime of all state in this tool.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"lexitag/internal/models"
	"lexitag/internal/services"
	"lexitag/internal/store"
)

// StoreFactory creates a fresh dictionary store for a new session.
type StoreFactory func(ctx context.Context) (store.DictionaryStore, error)

// Session is one user's working state.
type Session struct {
	ID   string
	Dict *services.DictionaryService

	mu         sync.Mutex
	store      store.DictionaryStore
	dataset    *models.Dataset
	classified *models.Dataset
	column     string
}

// SetDataset replaces the uploaded dataset and drops any previous
// classification result.
func (s *Session) SetDataset(ds *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.classified = nil
	s.column = ""
}

// Dataset returns the uploaded dataset, or models.ErrNoDataset.
func (s *Session) Dataset() (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return nil, models.ErrNoDataset
	}
	return s.dataset, nil
}

// SetClassified records a classification result and the column it was
// computed from.
func (s *Session) SetClassified(ds *models.Dataset, column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classified = ds
	s.column = column
}

// Classified returns the latest classification result, or
// models.ErrNotClassified.
func (s *Session) Classified() (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.classified == nil {
		return nil, models.ErrNotClassified
	}
	return s.classified, nil
}

// Column returns the text column of the latest classification pass.
func (s *Session) Column() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.column
}

func (s *Session) close() {
	if err := s.store.Close(); err != nil {
		log.WithField("session", s.ID).Warnf("closing session store: %v", err)
	}
}

// Manager creates and resolves sessions.
type Manager struct {
	sessions *cache.Cache
	newStore StoreFactory
	seed     bool
}

// NewManager builds a session manager. When seed is set, each new session's
// dictionary starts with the built-in categories.
func NewManager(ttl time.Duration, factory StoreFactory, seed bool) *Manager {
	c := cache.New(ttl, ttl)
	c.OnEvicted(func(id string, v interface{}) {
		if sess, ok := v.(*Session); ok {
			sess.close()
			log.WithField("session", id).Debug("session expired")
		}
	})
	return &Manager{sessions: c, newStore: factory, seed: seed}
}

// Create starts a new session with a fresh, optionally seeded dictionary.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	st, err := m.newStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}
	sess := &Session{
		ID:    uuid.NewString(),
		Dict:  services.NewDictionaryService(st),
		store: st,
	}
	if m.seed {
		if err := sess.Dict.Seed(ctx); err != nil {
			sess.close()
			return nil, fmt.Errorf("seed session dictionary: %w", err)
		}
	}
	m.sessions.SetDefault(sess.ID, sess)
	log.WithField("session", sess.ID).Info("session created")
	return sess, nil
}

// Get resolves a session by ID and refreshes its TTL. Unknown or expired
// IDs map to models.ErrSessionExpired.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, models.ErrSessionExpired
	}
	sess := v.(*Session)
	m.sessions.SetDefault(id, sess)
	return sess, nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}

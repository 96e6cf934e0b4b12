package session

import (
	"context"
	"sync"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// MemoryStore holds sessions in process memory. It backs the session
// endpoints when no Redis address is configured, and the endpoint tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*types.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*types.Session)}
}

func (m *MemoryStore) Save(_ context.Context, key string, sess *types.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *sess
	m.sessions[key] = &copied
	return nil
}

func (m *MemoryStore) Load(_ context.Context, key string) (*types.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[key]
	if !ok {
		return nil, nil
	}
	copied := *sess
	return &copied, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}

package otp

import (
	"context"
	"sync"
)

// MemoryStore keeps registrations in process memory. Entries do not survive
// a restart and are not shared between instances; use RedisStore when the
// API runs with more than one replica. Expired entries are only noticed when
// they are read and stay in the map until overwritten or claimed.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]PendingRegistration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]PendingRegistration)}
}

func (s *MemoryStore) Put(_ context.Context, reg PendingRegistration) error {
	reg.Email = NormalizeEmail(reg.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[reg.Email] = reg
	return nil
}

func (s *MemoryStore) Get(_ context.Context, email string) (*PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.entries[NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &reg, nil
}

func (s *MemoryStore) Claim(_ context.Context, email, code string) (bool, error) {
	key := NormalizeEmail(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.entries[key]
	if !ok || reg.Code != code {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

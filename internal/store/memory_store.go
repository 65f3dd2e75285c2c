package store

import (
	"context"
	"sync"

	"becoming/internal/domain"
)

// MemoryStore keeps both slots in memory. It backs --dry-run and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	checkin *domain.Answers
	signup  *domain.Signup
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// LoadCheckin returns a copy of the stored check-in.
func (s *MemoryStore) LoadCheckin(_ context.Context) (domain.Answers, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.checkin == nil {
		return domain.Answers{}, false, nil
	}
	return s.checkin.Clone(), true, nil
}

// SaveCheckin replaces the stored check-in.
func (s *MemoryStore) SaveCheckin(_ context.Context, a domain.Answers) error {
	c := a.Clone()
	s.mu.Lock()
	s.checkin = &c
	s.mu.Unlock()
	return nil
}

// LoadSignup returns the stored signup.
func (s *MemoryStore) LoadSignup(_ context.Context) (domain.Signup, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.signup == nil {
		return domain.Signup{}, false, nil
	}
	return *s.signup, true, nil
}

// SaveSignup replaces the stored signup.
func (s *MemoryStore) SaveSignup(_ context.Context, su domain.Signup) error {
	s.mu.Lock()
	s.signup = &su
	s.mu.Unlock()
	return nil
}

var (
	_ domain.CheckinStore = (*MemoryStore)(nil)
	_ domain.SignupStore  = (*MemoryStore)(nil)
)

package store

import (
	"context"
	"path/filepath"
	"sync"

	"becoming/internal/domain"
)

const signupFile = "signup.json"

// SignupFileStore persists the reminder signup to disk.
type SignupFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSignupFileStore returns a SignupFileStore rooted at dir.
func NewSignupFileStore(dir string) *SignupFileStore {
	return &SignupFileStore{dir: dir}
}

// LoadSignup returns the stored signup and whether one was present.
func (s *SignupFileStore) LoadSignup(_ context.Context) (domain.Signup, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var su domain.Signup
	found, err := readJSON(filepath.Join(s.dir, signupFile), &su)
	if err != nil || !found || su.Email == "" {
		return domain.Signup{}, false, err
	}
	return su, true, nil
}

// SaveSignup overwrites the stored signup.
func (s *SignupFileStore) SaveSignup(_ context.Context, su domain.Signup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, signupFile), su, 0o600)
}

// Compile-time assertion that SignupFileStore implements domain.SignupStore.
var _ domain.SignupStore = (*SignupFileStore)(nil)

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"

	"becoming/internal/domain"
	"becoming/internal/util/memzero"
)

const (
	checkinFile       = "checkin.json"
	sealedCheckinFile = "checkin.json.enc"
)

// CheckinFileStore keeps the single previous check-in on disk. With a
// passphrase the record is sealed; without one it is plain JSON.
type CheckinFileStore struct {
	dir        string
	passphrase string
	kdf        kdfParams
	mu         sync.Mutex
}

// FileOption configures a CheckinFileStore.
type FileOption func(*CheckinFileStore)

// WithPassphrase seals the record with a key derived from passphrase.
func WithPassphrase(passphrase string) FileOption {
	return func(s *CheckinFileStore) { s.passphrase = passphrase }
}

// WithKDFCost overrides the scrypt cost parameters.
func WithKDFCost(n, r, p int) FileOption {
	return func(s *CheckinFileStore) { s.kdf = kdfParams{N: n, R: r, P: p} }
}

// NewCheckinFileStore returns a CheckinFileStore rooted at dir.
func NewCheckinFileStore(dir string, opts ...FileOption) *CheckinFileStore {
	s := &CheckinFileStore{dir: dir, kdf: defaultKDF()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sealed reports whether records are written encrypted.
func (s *CheckinFileStore) Sealed() bool { return s.passphrase != "" }

// LoadCheckin returns the stored check-in and whether one was present.
func (s *CheckinFileStore) LoadCheckin(_ context.Context) (domain.Answers, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a domain.Answers
	if !s.Sealed() {
		if !exists(s.path(checkinFile)) && exists(s.path(sealedCheckinFile)) {
			return domain.Answers{}, false, ErrSealed
		}
		found, err := readJSON(s.path(checkinFile), &a)
		if err != nil || !found {
			return domain.Answers{}, false, err
		}
		a.Normalize()
		return a, true, nil
	}

	b, err := readFile(s.path(sealedCheckinFile))
	if err != nil || b == nil {
		return domain.Answers{}, false, err
	}
	raw, err := open(s.passphrase, b)
	if err != nil {
		return domain.Answers{}, false, err
	}
	defer memzero.Zero(raw)
	if err := decodeJSON(raw, &a); err != nil {
		return domain.Answers{}, false, err
	}
	a.Normalize()
	return a, true, nil
}

// SaveCheckin overwrites the stored check-in.
func (s *CheckinFileStore) SaveCheckin(_ context.Context, a domain.Answers) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Sealed() {
		return writeJSON(s.path(checkinFile), a, 0o600)
	}

	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	ct, err := seal(s.passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path(sealedCheckinFile), ct, 0o600)
}

func (s *CheckinFileStore) path(name string) string { return filepath.Join(s.dir, name) }

// Compile-time assertion that CheckinFileStore implements domain.CheckinStore.
var _ domain.CheckinStore = (*CheckinFileStore)(nil)

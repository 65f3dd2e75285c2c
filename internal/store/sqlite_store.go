package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"becoming/internal/domain"
)

const (
	checkinSlot = "previous-checkin"
	signupSlot  = "signup"
)

const slotsSchema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps the check-in and signup slots in a SQLite database. Each
// slot holds one JSON value; writes replace it.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dsn := cleanPath + "?_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(slotsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadCheckin returns the stored check-in and whether one was present.
func (s *SQLiteStore) LoadCheckin(ctx context.Context) (domain.Answers, bool, error) {
	var a domain.Answers
	found, err := s.get(ctx, checkinSlot, &a)
	if err != nil || !found {
		return domain.Answers{}, false, err
	}
	a.Normalize()
	return a, true, nil
}

// SaveCheckin overwrites the stored check-in.
func (s *SQLiteStore) SaveCheckin(ctx context.Context, a domain.Answers) error {
	return s.put(ctx, checkinSlot, a)
}

// LoadSignup returns the stored signup and whether one was present.
func (s *SQLiteStore) LoadSignup(ctx context.Context) (domain.Signup, bool, error) {
	var su domain.Signup
	found, err := s.get(ctx, signupSlot, &su)
	if err != nil || !found {
		return domain.Signup{}, false, err
	}
	return su, true, nil
}

// SaveSignup overwrites the stored signup.
func (s *SQLiteStore) SaveSignup(ctx context.Context, su domain.Signup) error {
	return s.put(ctx, signupSlot, su)
}

func (s *SQLiteStore) get(ctx context.Context, key string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", key, err)
	}
	if err := decodeJSON([]byte(value), out); err != nil {
		return true, err
	}
	return true, nil
}

func (s *SQLiteStore) put(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
	value = excluded.value,
	updated_at = excluded.updated_at`,
		key, string(b), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Compile-time assertions that SQLiteStore implements both store interfaces.
var (
	_ domain.CheckinStore = (*SQLiteStore)(nil)
	_ domain.SignupStore  = (*SQLiteStore)(nil)
)

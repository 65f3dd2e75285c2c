package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"becoming/internal/domain"
	"becoming/internal/store"
)

func openSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "becoming.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_CheckinSlot(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	_, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	first := sampleAnswers()
	require.NoError(t, s.SaveCheckin(ctx, first))

	second := sampleAnswers()
	second.ID = "c2"
	require.NoError(t, s.SaveCheckin(ctx, second))

	got, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "c2", got.ID)
	assert.Equal(t, first.SelectedDomains, got.SelectedDomains)
}

func TestSQLiteStore_SignupSlot(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.SaveSignup(ctx, domain.Signup{Email: "a@b.c", SignedUpAt: now, NextReminder: now}))

	got, found, err := s.LoadSignup(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a@b.c", got.Email)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := store.OpenSQLite("  ")
	require.Error(t, err)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	a := sampleAnswers()
	require.NoError(t, s.SaveCheckin(ctx, a))
	a.DomainGoals["Health"] = "mutated"

	got, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "strong and calm", got.DomainGoals["Health"])
}

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"becoming/internal/domain/types"
	"becoming/internal/services/checkin"
	"becoming/internal/store"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := Load(LoadOptions{Home: t.TempDir()})
	require.NoError(t, err)
	return *cfg
}

func TestNewWire_FileDriver(t *testing.T) {
	cfg := testConfig(t)
	w, err := NewWire(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.IsType(t, &store.CheckinFileStore{}, w.Checkins)
	require.NoError(t, w.Checkins.SaveCheckin(context.Background(), types.NewAnswers()))
	_, err = os.Stat(filepath.Join(cfg.Home, "checkin.json"))
	require.NoError(t, err)
}

func TestNewWire_SealedFileDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Passphrase = "correct horse"
	w, err := NewWire(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	fs, ok := w.Checkins.(*store.CheckinFileStore)
	require.True(t, ok)
	assert.True(t, fs.Sealed())
}

func TestNewWire_SQLiteDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = DriverSQLite
	cfg.Storage.Path = filepath.Join(cfg.Home, "becoming.db")
	w, err := NewWire(cfg)
	require.NoError(t, err)

	require.IsType(t, &store.SQLiteStore{}, w.Checkins)
	require.NoError(t, w.Close())

	cfg.Passphrase = "pw"
	_, err = NewWire(cfg)
	require.ErrorIs(t, err, ErrPassphraseUnsupported)
}

func TestNewWire_DryRunTouchesNothing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Home = filepath.Join(cfg.Home, "never-created")
	cfg.DryRun = true
	w, err := NewWire(cfg)
	require.NoError(t, err)
	require.IsType(t, &store.MemoryStore{}, w.Checkins)

	a := New(w, cfg.UI, nil, nil)
	_, err = a.Checkin.Summary(context.Background())
	require.ErrorIs(t, err, checkin.ErrNoCheckin)
	require.NoError(t, a.Close())

	_, err = os.Stat(cfg.Home)
	assert.True(t, os.IsNotExist(err))
}

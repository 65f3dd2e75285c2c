package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Level = "loud"
	require.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Format = "xml"
	require.Error(t, bad.Validate())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "becoming.log")
	cfg := DefaultConfig()
	cfg.File = path

	log, closeLog, err := New(cfg)
	require.NoError(t, err)
	log.Debug("dropped")
	log.Named("store").Info("saved")
	closeLog()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "store", entry["logger"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "ts")
}

func TestNew_EmptyFileIsNop(t *testing.T) {
	log, closeLog, err := New(DefaultConfig())
	require.NoError(t, err)
	defer closeLog()
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "nope"
	_, _, err := New(cfg)
	require.Error(t, err)
}

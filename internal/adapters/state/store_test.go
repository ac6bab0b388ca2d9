package state_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/adapters/state"
)

func newStore(t *testing.T) (*state.Store, string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "sleep_state.json")
	var buf bytes.Buffer
	return state.NewStore(path, logger.NewWithOutput(&buf, true)), path, &buf
}

func TestStore_MissingFileIsCreatedAwake(t *testing.T) {
	s, path, buf := newStore(t)

	assert.False(t, s.Sleeping())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sleeping": false}`, string(data))
	assert.Contains(t, buf.String(), "assuming awake")
}

func TestStore_SetSleeping(t *testing.T) {
	s, path, _ := newStore(t)

	require.NoError(t, s.SetSleeping(true))
	assert.True(t, s.Sleeping())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"sleeping\": true\n}", string(data))

	require.NoError(t, s.SetSleeping(false))
	assert.False(t, s.Sleeping())
}

func TestStore_CorruptFileReportsAwake(t *testing.T) {
	s, path, buf := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.False(t, s.Sleeping())
	assert.Contains(t, buf.String(), "failed to read sleep state")
}

func TestStore_MissingKeyReportsAwake(t *testing.T) {
	s, path, _ := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(`{"other": 1}`), 0o600))

	assert.False(t, s.Sleeping())
}

func TestStore_SetSleeping_WriteFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var buf bytes.Buffer
	s := state.NewStore(filepath.Join(blocker, "sleep_state.json"), logger.NewWithOutput(&buf, true))

	err := s.SetSleeping(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write sleep state")
}

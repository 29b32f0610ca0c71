package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	assert.False(t, store.Present())

	require.NoError(t, store.Set("staff-token"))
	assert.True(t, store.Present())
	assert.Equal(t, "staff-token", store.Token())

	// A fresh instance over the same file sees the stored token, the way a
	// browser reload would.
	reopened, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.Present())
	assert.Equal(t, "staff-token", reopened.Token())
}

func TestClearRemovesToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("staff-token"))

	require.NoError(t, store.Clear())
	assert.False(t, store.Present())
	assert.Empty(t, store.Token())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.Present())
}

func TestSetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("first"))
	require.NoError(t, store.Set("second"))
	assert.Equal(t, "second", store.Token())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "second", reopened.Token())
}

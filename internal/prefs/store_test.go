package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeDefaultsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "")
	require.NoError(t, err)
	defer s.Close()

	name, err := s.Theme(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "default", name)

	_, err = s.Get(ctx, KeyTheme)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThemePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SetTheme(ctx, "dracula"))
	require.NoError(t, s.SetTheme(ctx, "nord"))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	name, err := reopened.Theme(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "nord", name)
	assert.Equal(t, path, reopened.Path())
}

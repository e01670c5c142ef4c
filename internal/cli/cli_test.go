package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/termfolio/internal/config"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/prefs"
	"github.com/atomicstack/termfolio/internal/theme"
)

func run(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	args = append(args, "--log-file", filepath.Join(dir, "termfolio.log"))
	root := NewRootCmd(opts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPrintWritesPlainBlocks(t *testing.T) {
	out, err := run(t, Options{}, "print", "calc", "2+3")
	require.NoError(t, err)
	assert.Equal(t, "2+3\n= 5\n", out)
}

func TestPrintUnknownCommand(t *testing.T) {
	out, err := run(t, Options{}, "print", "hepl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: hepl")
	assert.Contains(t, out, "Command not found: hepl")
	assert.Contains(t, out, "Did you mean 'help'?")
}

func TestPrintRunsPendingInline(t *testing.T) {
	out, err := run(t, Options{}, "print", "pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Generating PDF resume...")
	assert.Contains(t, out, "PDF generation is not yet implemented.")
}

func TestPrintRequiresCommand(t *testing.T) {
	_, err := run(t, Options{}, "print")
	require.Error(t, err)
}

func TestThemeSetAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.db")

	out, err := run(t, Options{}, "theme", "Nord", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Theme set to nord.\n", out)

	out, err = run(t, Options{}, "theme", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "* nord\n")
	assert.Contains(t, out, "  "+theme.DefaultName+"\n")

	store, err := prefs.Open(context.Background(), db)
	require.NoError(t, err)
	defer store.Close()
	stored, err := store.Theme(context.Background(), theme.DefaultName)
	require.NoError(t, err)
	assert.Equal(t, "nord", stored)
}

func TestThemeRejectsUnknownName(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.db")
	_, err := run(t, Options{}, "theme", "neon", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme: neon")
}

func TestThemePickNeedsTerminal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.db")
	_, err := run(t, Options{}, "theme", "--pick", "--db", db)
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestOnStartReceivesResolvedConfig(t *testing.T) {
	var got config.Config
	opts := Options{
		Environ: []string{"TERMFOLIO_THEME=dracula"},
		OnStart: func(cfg config.Config) { got = cfg },
	}
	_, err := run(t, opts, "print", "help", "--width", "100")
	require.NoError(t, err)
	assert.Equal(t, "dracula", got.App.Theme)
	assert.Equal(t, 100, got.App.Width)
	assert.Equal(t, []string{"help"}, got.Args)
}

func TestInvalidConfigStopsBeforeRunning(t *testing.T) {
	called := false
	opts := Options{OnStart: func(config.Config) { called = true }}
	_, err := run(t, opts, "print", "help", "--theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")
	assert.False(t, called)
}

func TestWriteBlocksStyled(t *testing.T) {
	var buf bytes.Buffer
	writeBlocks(&buf, theme.Default(), []content.Block{{
		Title:  "Skills",
		Framed: true,
		Lines:  []content.Line{{Bar: &content.Bar{Label: "Go", Percent: 90}}},
	}})
	out := buf.String()
	assert.Contains(t, out, "Skills")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "90%")
}

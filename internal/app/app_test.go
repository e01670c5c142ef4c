package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/prefs"
)

func TestResolveTheme(t *testing.T) {
	ctx := context.Background()
	store, err := prefs.Open(ctx, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, "default", ResolveTheme(ctx, "", store))
	assert.Equal(t, "default", ResolveTheme(ctx, "", nil))

	require.NoError(t, store.SetTheme(ctx, "nord"))
	assert.Equal(t, "nord", ResolveTheme(ctx, "", store))
	assert.Equal(t, "dracula", ResolveTheme(ctx, "dracula", store), "configured theme wins")
	assert.Equal(t, "nord", ResolveTheme(ctx, "neon", store), "invalid configured theme is ignored")

	require.NoError(t, store.SetTheme(ctx, "retired"))
	assert.Equal(t, "default", ResolveTheme(ctx, "", store))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "serve.log"))
	t.Cleanup(func() { logging.Configure("") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{Addr: addr, DBPath: filepath.Join(t.TempDir(), "prefs.db")})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

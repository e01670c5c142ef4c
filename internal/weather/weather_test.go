package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const berlin = `{
  "name": "Berlin",
  "sys": {"country": "DE"},
  "main": {"temp": 12.4, "feels_like": 10.9, "humidity": 71},
  "weather": [{"main": "Clouds"}],
  "wind": {"speed": 4.1}
}`

func TestLookupParsesResponse(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(berlin))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "k"}, srv.Client())
	report, err := c.Lookup(context.Background(), "  Berlin ")
	require.NoError(t, err)
	assert.Equal(t, "Berlin", report.Name)
	assert.Equal(t, "DE", report.Country)
	assert.InDelta(t, 12.4, report.Temp, 1e-9)
	assert.Equal(t, 71, report.Humidity)
	assert.Equal(t, "Clouds", report.Condition)
	assert.InDelta(t, 14.76, report.WindKmh, 1e-9)
	assert.Contains(t, query, "q=Berlin")
	assert.Contains(t, query, "units=metric")
	assert.Contains(t, query, "appid=k")
}

func TestLookupEmptyLocationMakesNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, srv.Client())
	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyLocation)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestLookupStatusError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, srv.Client())
	_, err := c.Lookup(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Equal(t, "Error: 404 - Not Found", err.Error())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "no retry expected")
}

func TestLookupInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, srv.Client())
	_, err := c.Lookup(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	require.NoError(t, th.wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, th.wait(ctx), context.Canceled)
}

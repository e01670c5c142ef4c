package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/termfolio/internal/weather"
)

type memoryPrefs struct {
	theme string
	err   error
}

func (m *memoryPrefs) Theme(_ context.Context, fallback string) (string, error) {
	if m.theme == "" {
		return fallback, m.err
	}
	return m.theme, m.err
}

func (m *memoryPrefs) SetTheme(_ context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	m.theme = name
	return nil
}

type stubWeather struct {
	err error
}

func (s stubWeather) Lookup(_ context.Context, location string) (weather.Report, error) {
	if s.err != nil {
		return weather.Report{}, s.err
	}
	return weather.Report{Name: location, Country: "FR", Temp: 21, FeelsLike: 20, Humidity: 40, Condition: "Clear", WindKmh: 7.2}, nil
}

func newTestServer(prefs *memoryPrefs, w stubWeather) http.Handler {
	return New(Options{Prefs: prefs, Weather: w, Logger: zerolog.Nop()}).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListCommandsSkipsHidden(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/api/commands", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cmds []commandInfo
	decode(t, rec, &cmds)

	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "help")
	assert.Contains(t, names, "weather")
	assert.NotContains(t, names, "exit-game")
	assert.NotContains(t, names, "stop-matrix")
}

func TestRunCommand(t *testing.T) {
	h := newTestServer(&memoryPrefs{}, stubWeather{})

	rec := do(t, h, http.MethodGet, "/api/commands/calc?args=2%2B2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out commandOutput
	decode(t, rec, &out)
	assert.Equal(t, "calc", out.Name)
	assert.False(t, out.Failed)
	assert.Contains(t, strings.Join(out.Lines, "\n"), "= 4")

	rec = do(t, h, http.MethodGet, "/api/commands/About", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &out)
	assert.Equal(t, "about", out.Name)
	assert.NotEmpty(t, out.Lines)
}

func TestRunUnknownCommand(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/api/commands/matirx", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var out commandOutput
	decode(t, rec, &out)
	assert.True(t, out.Failed)
	assert.Contains(t, strings.Join(out.Lines, "\n"), "matrix")
}

func TestRunEffectCommandIsRejected(t *testing.T) {
	h := newTestServer(&memoryPrefs{}, stubWeather{})
	for _, name := range []string{"matrix", "game", "clear"} {
		rec := do(t, h, http.MethodGet, "/api/commands/"+name, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, name)
	}
}

func TestRunWeatherInline(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/api/commands/weather?args=Paris", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out commandOutput
	decode(t, rec, &out)
	text := strings.Join(out.Lines, "\n")
	assert.Contains(t, text, "Fetching weather for Paris...")
	assert.Contains(t, text, "Paris")
	assert.False(t, out.Failed)

	rec = do(t, newTestServer(&memoryPrefs{}, stubWeather{err: errors.New("Error: 404 - Not Found")}), http.MethodGet, "/api/commands/weather?args=Nowhere", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &out)
	assert.True(t, out.Failed)
	assert.Contains(t, strings.Join(out.Lines, "\n"), "Failed to fetch weather data: Error: 404 - Not Found")
}

func TestRunThemeCommandPersists(t *testing.T) {
	prefs := &memoryPrefs{}
	rec := do(t, newTestServer(prefs, stubWeather{}), http.MethodGet, "/api/commands/theme?args=nord", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out commandOutput
	decode(t, rec, &out)
	assert.Equal(t, "nord", out.Theme)
	assert.Equal(t, "nord", prefs.theme)
}

func TestDashboard(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Performance struct {
			Labels []string `json:"labels"`
			Values []int    `json:"values"`
		} `json:"performance"`
		Charts []json.RawMessage `json:"charts"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Performance.Values, len(body.Performance.Labels))
	assert.NotEmpty(t, body.Charts)
}

func TestThemeEndpoints(t *testing.T) {
	prefs := &memoryPrefs{}
	h := newTestServer(prefs, stubWeather{})

	rec := do(t, h, http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Name      string   `json:"name"`
		Available []string `json:"available"`
	}
	decode(t, rec, &got)
	assert.Equal(t, "default", got.Name)
	assert.Contains(t, got.Available, "dracula")

	rec = do(t, h, http.MethodPut, "/api/theme", `{"name":"Dracula"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dracula", prefs.theme)

	rec = do(t, h, http.MethodPut, "/api/theme", `{"name":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "dracula", prefs.theme)

	rec = do(t, h, http.MethodPut, "/api/theme", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	prefs.err = errors.New("disk full")
	rec = do(t, h, http.MethodPut, "/api/theme", `{"name":"nord"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIndexPage(t *testing.T) {
	rec := do(t, newTestServer(&memoryPrefs{}, stubWeather{}), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h2>Commands</h2>")
	assert.Contains(t, body, `href="/api/commands/help"`)
	assert.Contains(t, body, "Languages")
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/prefs"
	"github.com/atomicstack/termfolio/internal/server"
	"github.com/atomicstack/termfolio/internal/theme"
	"github.com/atomicstack/termfolio/internal/ui"
	"github.com/atomicstack/termfolio/internal/weather"
)

const shutdownTimeout = 5 * time.Second

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	Theme         string
	Typewriter    bool
	TypeDelay     time.Duration
	MinPaneWidth  int
	MinPaneHeight int
	DBPath        string
	Addr          string
	Weather       weather.Config
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	store, err := prefs.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Theme:      ResolveTheme(ctx, cfg.Theme, store),
		Typewriter: cfg.Typewriter,
		TypeDelay:  cfg.TypeDelay,
		Limits:     layout.Limits{Horizontal: float64(cfg.MinPaneWidth), Vertical: float64(cfg.MinPaneHeight)},
		Weather:    weather.NewClient(cfg.Weather, nil),
		Prefs:      store,
		Context:    ctx,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ResolveTheme picks the configured theme, else the saved one, else the
// default.
func ResolveTheme(ctx context.Context, configured string, store *prefs.Store) string {
	if configured != "" && theme.Valid(configured) {
		return configured
	}
	if store == nil {
		return theme.DefaultName
	}
	name, err := store.Theme(ctx, theme.DefaultName)
	if err != nil {
		logging.Error(fmt.Errorf("load theme preference: %w", err))
		return theme.DefaultName
	}
	if !theme.Valid(name) {
		return theme.DefaultName
	}
	return name
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, cfg Config) error {
	store, err := prefs.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	logger, closer, err := logging.Logger()
	if err != nil {
		logging.Error(err)
		logger = zerolog.Nop()
	} else {
		defer closer.Close()
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.New(server.Options{
			Resume:  content.MustDefault(),
			Weather: weather.NewClient(cfg.Weather, nil),
			Prefs:   store,
			Logger:  logger,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

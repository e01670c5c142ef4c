// Package server exposes the portfolio content over HTTP: a small JSON API
// for the command registry and a dashboard page.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/atomicstack/termfolio/internal/command"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// ThemeStore reads and writes the persisted theme.
type ThemeStore interface {
	Theme(ctx context.Context, fallback string) (string, error)
	SetTheme(ctx context.Context, name string) error
}

// Options configure the HTTP handlers. Zero values select defaults.
type Options struct {
	Registry   *command.Registry
	Resume     *content.Resume
	Weather    command.Weather
	Calculator command.Calculator
	Prefs      ThemeStore
	Logger     zerolog.Logger
}

// Server owns the gin engine.
type Server struct {
	engine   *gin.Engine
	registry *command.Registry
	resume   *content.Resume
	weather  command.Weather
	calc     command.Calculator
	prefs    ThemeStore
}

type commandInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Usage   string `json:"usage,omitempty"`
	Group   string `json:"group"`
}

type commandOutput struct {
	Name   string   `json:"name"`
	Lines  []string `json:"lines"`
	Theme  string   `json:"theme,omitempty"`
	Failed bool     `json:"failed,omitempty"`
}

type themeBody struct {
	Name string `json:"name" binding:"required"`
}

var errInteractive = errors.New("command only runs in the terminal")

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// New builds the server and its routes.
func New(opts Options) *Server {
	registry := opts.Registry
	if registry == nil {
		registry = command.BuildRegistry()
	}
	resume := opts.Resume
	if resume == nil {
		resume = content.MustDefault()
	}
	s := &Server{
		engine:   gin.New(),
		registry: registry,
		resume:   resume,
		weather:  opts.Weather,
		calc:     opts.Calculator,
		prefs:    opts.Prefs,
	}
	s.engine.Use(gin.Recovery(), traceRequests(opts.Logger))
	s.engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
	s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/", s.handleIndex)
	api := s.engine.Group("/api")
	api.GET("/commands", s.handleCommands)
	api.GET("/commands/:name", s.handleRun)
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/theme", s.handleGetTheme)
	api.PUT("/theme", s.handlePutTheme)
}

func (s *Server) handleCommands(c *gin.Context) {
	cmds := s.registry.Commands()
	out := make([]commandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd.Hidden {
			continue
		}
		out = append(out, commandInfo{Name: cmd.Name, Summary: cmd.Summary, Usage: cmd.Usage, Group: cmd.Group.String()})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleRun(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))
	line := strings.TrimSpace(name + " " + c.Query("args"))
	ctx := c.Request.Context()

	res := s.registry.Run(s.commandContext(ctx), line)
	if res.Unknown {
		c.JSON(http.StatusNotFound, commandOutput{Name: name, Lines: plainLines(res.Blocks), Failed: true})
		return
	}
	if res.Effect != command.EffectNone {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errInteractive.Error(), "name": res.Name})
		return
	}
	out := commandOutput{Name: res.Name, Lines: plainLines(res.Blocks), Failed: hasError(res.Blocks)}
	if res.Theme != "" {
		if err := s.saveTheme(ctx, res.Theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out.Theme = res.Theme
	}
	if res.Pending != nil {
		block, err := runPending(ctx, res.Pending)
		if err != nil {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
			return
		}
		out.Lines = append(out.Lines, content.PlainLines(block)...)
		out.Failed = out.Failed || block.Kind == content.KindError
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.resume.Dashboard)
}

func (s *Server) handleGetTheme(c *gin.Context) {
	name := theme.DefaultName
	if s.prefs != nil {
		stored, err := s.prefs.Theme(c.Request.Context(), theme.DefaultName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		name = stored
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "available": theme.Names()})
}

func (s *Server) handlePutTheme(c *gin.Context) {
	var body themeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.ToLower(strings.TrimSpace(body.Name))
	if !theme.Valid(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown theme: " + body.Name, "available": theme.Names()})
		return
	}
	if err := s.saveTheme(c.Request.Context(), name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}

func (s *Server) handleIndex(c *gin.Context) {
	var groups [2][]commandInfo
	for _, cmd := range s.registry.Commands() {
		if cmd.Hidden {
			continue
		}
		idx := 0
		if cmd.Group == content.GroupUtility {
			idx = 1
		}
		groups[idx] = append(groups[idx], commandInfo{Name: cmd.Name, Summary: cmd.Summary, Group: cmd.Group.String()})
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":   s.resume.Profile,
		"main":      groups[0],
		"utility":   groups[1],
		"skills":    s.resume.SkillLevels,
		"dashboard": s.resume.Dashboard,
	})
}

func (s *Server) commandContext(ctx context.Context) command.Context {
	current := theme.DefaultName
	if s.prefs != nil {
		if stored, err := s.prefs.Theme(ctx, theme.DefaultName); err == nil {
			current = stored
		}
	}
	return command.Context{
		Resume:     s.resume,
		Weather:    s.weather,
		Calculator: s.calc,
		Theme:      current,
		Themes:     theme.Names(),
	}
}

func (s *Server) saveTheme(ctx context.Context, name string) error {
	if s.prefs == nil {
		return nil
	}
	err := s.prefs.SetTheme(ctx, name)
	events.Theme.Persist(name, err)
	return err
}

// runPending waits out the delay and runs the follow-up inline.
func runPending(ctx context.Context, p *command.Pending) (content.Block, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return content.Block{}, ctx.Err()
		case <-timer.C:
		}
	}
	return p.Run(ctx), nil
}

func plainLines(blocks []content.Block) []string {
	var out []string
	for _, b := range blocks {
		out = append(out, content.PlainLines(b)...)
	}
	return out
}

func hasError(blocks []content.Block) bool {
	for _, b := range blocks {
		if b.Kind == content.KindError {
			return true
		}
	}
	return false
}

// traceRequests records every request through the HTTP tracer and logs it
// on logger.
func traceRequests(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()
		events.HTTP.Request(c.Request.Method, c.FullPath(), status, elapsed)
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("request")
	}
}

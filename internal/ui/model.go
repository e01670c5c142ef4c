package ui

import (
	"context"
	"math/rand"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/calc"
	"github.com/atomicstack/termfolio/internal/command"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/layout"
	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/session"
	"github.com/atomicstack/termfolio/internal/theme"
	uicommand "github.com/atomicstack/termfolio/internal/ui/command"
)

const (
	DefaultTypeDelay = 20 * time.Millisecond

	// footerRows is the status bar below the panes.
	footerRows = 1
)

// DefaultLimits are the smallest a pane may be dragged to, in cells.
var DefaultLimits = layout.Limits{Horizontal: 20, Vertical: 5}

// ThemeStore persists the selected theme.
type ThemeStore interface {
	SetTheme(ctx context.Context, name string) error
}

// Options configure a Model. Zero values select defaults.
type Options struct {
	// Width and Height pin the canvas size; zero follows the terminal.
	Width      int
	Height     int
	Theme      string
	Typewriter bool
	TypeDelay  time.Duration
	Limits     layout.Limits
	Resume     *content.Resume
	Weather    command.Weather
	Calculator command.Calculator
	Prefs      ThemeStore
	Context    context.Context
	Rand       *rand.Rand
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the multi-pane terminal.
type Model struct {
	session  *session.Session
	registry *command.Registry
	bus      *uicommand.Bus
	styles   *theme.Styles
	keys     keyMap

	resume     *content.Resume
	weather    command.Weather
	calculator command.Calculator
	prefs      ThemeStore
	ctx        context.Context
	rng        *rand.Rand

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	typewriter  bool
	typeDelay   time.Duration
	status      string

	caret      cursor.Model
	caretDirty bool
	bar        progress.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with a single pane showing the welcome banner.
func NewModel(opts Options) *Model {
	resume := opts.Resume
	if resume == nil {
		resume = content.MustDefault()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	limits := opts.Limits
	if limits.Horizontal <= 0 || limits.Vertical <= 0 {
		limits = DefaultLimits
	}
	calculator := opts.Calculator
	if calculator == nil {
		calculator = calc.New()
	}
	delay := opts.TypeDelay
	if delay <= 0 {
		delay = DefaultTypeDelay
	}
	styles := theme.Resolve(opts.Theme)
	m := &Model{
		registry:   command.BuildRegistry(),
		bus:        uicommand.New(ctx),
		styles:     styles,
		keys:       defaultKeyMap(),
		resume:     resume,
		weather:    opts.Weather,
		calculator: calculator,
		prefs:      opts.Prefs,
		ctx:        ctx,
		rng:        rng,
		typewriter: opts.Typewriter,
		typeDelay:  delay,
	}
	m.session = session.New(session.Options{
		Limits: limits,
		Theme:  styles.Name,
		Banner: func() content.Block { return content.Welcome(resume) },
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetChar(" ")
	m.caret = c
	m.applyStyles()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateCaret(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(uicommand.OutputMsg{}): m.handleOutputMsg,
		reflect.TypeOf(typeTickMsg{}):         m.handleTypeTickMsg,
		reflect.TypeOf(matrixTickMsg{}):       m.handleMatrixTickMsg,
		reflect.TypeOf(snakeTickMsg{}):        m.handleSnakeTickMsg,
		reflect.TypeOf(themePersistedMsg{}):   m.handleThemePersistedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretDirty {
		m.caretDirty = false
		m.caret.Blink = false
		if cmd := m.caret.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.clampAll()
	return nil
}

// Session exposes the pane session, chiefly for tests.
func (m *Model) Session() *session.Session {
	return m.session
}

// Theme reports the active theme name.
func (m *Model) Theme() string {
	return m.session.Theme
}

// applyStyles refreshes everything derived from the current theme.
func (m *Model) applyStyles() {
	m.caret.Style = m.styles.Prompt.Copy().Reverse(true)
	m.caret.TextStyle = m.styles.Input.Copy()
	m.bar = progress.New(
		progress.WithSolidFill(string(m.styles.Palette.Primary)),
		progress.WithoutPercentage(),
	)
	m.bar.EmptyColor = string(m.styles.Palette.Border)
}

// setTheme switches themes and returns the command persisting the choice.
func (m *Model) setTheme(name string) tea.Cmd {
	styles, ok := theme.Get(name)
	if !ok {
		return nil
	}
	prev := m.session.Theme
	m.styles = styles
	m.session.Theme = styles.Name
	m.applyStyles()
	events.Theme.Change(prev, styles.Name)
	if m.prefs == nil {
		return nil
	}
	store, ctx := m.prefs, m.ctx
	return func() tea.Msg {
		err := store.SetTheme(ctx, styles.Name)
		return themePersistedMsg{name: styles.Name, err: err}
	}
}

type themePersistedMsg struct {
	name string
	err  error
}

func (m *Model) handleThemePersistedMsg(msg tea.Msg) tea.Cmd {
	persisted, ok := msg.(themePersistedMsg)
	if !ok {
		return nil
	}
	events.Theme.Persist(persisted.name, persisted.err)
	if persisted.err != nil {
		logging.Error(persisted.err)
	}
	return nil
}

func (m *Model) commandContext() command.Context {
	return command.Context{
		Resume:     m.resume,
		Weather:    m.weather,
		Calculator: m.calculator,
		Theme:      m.session.Theme,
		Themes:     theme.Names(),
		Shortcuts:  m.keys.Shortcuts(),
	}
}

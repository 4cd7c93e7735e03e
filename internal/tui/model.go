package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/sandwich/internal/catalog"
	"github.com/jask/sandwich/internal/dnd"
	"github.com/jask/sandwich/internal/stack"
)

type pane int

const (
	panePalette pane = iota
	paneStack
)

// Options configures a Model. Empty Title, Logger, Keys and Stack fall back
// to defaults. A zero Flash turns the highlight off and a DragThreshold below
// one starts drags on the first motion.
type Options struct {
	Title         string
	DragThreshold int
	Flash         time.Duration
	Logger        *zap.Logger
	Keys          *KeyRegistry
	// Stack seeds the initial layers.
	Stack *stack.Stack
}

// Model is the top-level bubbletea model. It owns the stack; nothing else
// mutates it.
type Model struct {
	width  int
	height int
	title  string

	catalog *catalog.Catalog
	visible []catalog.Template
	stack   *stack.Stack

	keys    *KeyRegistry
	tracker dnd.Tracker
	log     *zap.Logger

	focus         pane
	paletteCursor int
	stackCursor   int
	// First visible row of each pane.
	paletteTop int
	stackTop   int

	filtering bool
	filter    textinput.Model

	flashDuration time.Duration
	flashID       string
	flashSeq      int

	status    string
	statusErr bool
	quitting  bool
}

func New(cat *catalog.Catalog, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Sandwich Builder"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Stack == nil {
		opts.Stack = stack.New()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter ingredients"
	ti.CharLimit = 32

	m := Model{
		width:         100,
		height:        32,
		title:         opts.Title,
		catalog:       cat,
		stack:         opts.Stack,
		keys:          opts.Keys,
		tracker:       dnd.NewTracker(opts.DragThreshold),
		log:           opts.Logger,
		filter:        ti,
		flashDuration: opts.Flash,
		status:        "Ready",
	}
	m.refreshVisible()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Stack returns the current layers.
func (m Model) Stack() *stack.Stack {
	return m.stack
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if m.filtering {
		return scopeFilter
	}
	if m.focus == paneStack {
		return scopeStack
	}
	return scopePalette
}

func (m Model) layout() layout {
	return computeLayout(m.width, m.height)
}

func (m *Model) refreshVisible() {
	m.visible = m.catalog.Filter(m.filter.Value())
	m.paletteCursor = clampCursor(m.paletteCursor, len(m.visible))
}

func clampCursor(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}

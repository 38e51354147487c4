// Package tui presents the image picker in a terminal with bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/transport"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	"github.com/alexisbeaulieu97/imagepick/internal/widget"
)

// SnapshotMsg delivers one render event from the host.
type SnapshotMsg struct {
	Event transport.RenderEvent
}

// SourceClosedMsg reports that the host stopped sending snapshots.
type SourceClosedMsg struct {
	Err error
}

// Config wires a Model.
type Config struct {
	Widget    *widget.Widget
	Validator *snapshot.Validator
	Renderer  *Renderer
	Logger    ports.Logger
	// Mouse enables click handling on mouse presses.
	Mouse bool
}

// Model is the bubbletea model of the picker. The widget is owned by the
// program's update loop.
type Model struct {
	ctx       context.Context
	widget    *widget.Widget
	validator *snapshot.Validator
	renderer  *Renderer
	logger    ports.Logger

	keys KeyMap
	help help.Model

	focus  *snapshot.Pointer
	layout Layout
	frame  string

	mouse     bool
	closed    bool
	sourceErr error
	quitting  bool
	width     int
}

// NewModel creates the picker model. The widget's frame height is measured
// with the model's renderer.
func NewModel(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	logger = logging.OrNoOp(logger)
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = NewRenderer(DefaultOptions(), logger)
	}
	validator := cfg.Validator
	if validator == nil {
		validator = snapshot.NewValidator(logger, nil)
	}
	w := cfg.Widget
	if w == nil {
		w = widget.New(widget.Options{Logger: logger})
	}
	w.SetHeightFunc(func() int { return renderer.Measure(w) })

	m := Model{
		ctx:       ctx,
		widget:    w,
		validator: validator,
		renderer:  renderer,
		logger:    logger.With("component", "tui"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		mouse:     cfg.Mouse,
	}
	m.redraw()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Widget returns the widget driven by the model.
func (m Model) Widget() *widget.Widget { return m.widget }

// Focus returns the keyboard cursor.
func (m Model) Focus() (snapshot.Pointer, bool) {
	if m.focus == nil {
		return snapshot.Pointer{}, false
	}
	return *m.focus, true
}

// Layout returns the layout of the last drawn frame.
func (m Model) Layout() Layout { return m.layout }

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool { return m.quitting }

// redraw renders the frame and keeps the focus on a rendered image.
func (m *Model) redraw() {
	m.frame, m.layout = m.renderer.Render(m.widget, m.focus)
	if m.focus != nil && m.layout.Contains(*m.focus) {
		return
	}
	m.focus = nil
	if first, ok := m.layout.First(); ok {
		m.focus = &first
		m.frame, m.layout = m.renderer.Render(m.widget, m.focus)
	}
}

func (m *Model) setFocus(p snapshot.Pointer) {
	m.focus = &p
	m.redraw()
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		snap := m.validator.Normalize(m.ctx, msg.Event.Merged())
		m.widget.Render(m.ctx, snap)
		if el, ok := m.widget.Highlighted(); ok {
			p := el.Pointer
			m.focus = &p
		}
		m.redraw()
		return m, nil

	case SourceClosedMsg:
		m.closed = true
		m.sourceErr = msg.Err
		if msg.Err != nil {
			m.logger.Error(m.ctx, "host source failed", "error", msg.Err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Select):
		if m.focus != nil {
			m.widget.Click(m.ctx, *m.focus)
			m.redraw()
		}
	}
	return m, nil
}

func (m *Model) move(dx, dy int) {
	if m.focus == nil {
		return
	}
	m.setFocus(m.layout.Move(*m.focus, dx, dy))
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	p, ok := m.layout.Hit(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.focus = &p
	m.widget.Click(m.ctx, p)
	m.redraw()
	return m, nil
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/imagepick/internal/richtext"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{}
	if m.frame != "" {
		sections = append(sections, m.frame)
	}
	sections = append(sections, statusStyle.Render(m.status()), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// status describes the focused image, or the host state when nothing is
// focused.
func (m Model) status() string {
	if m.sourceErr != nil {
		return errorStyle.Render(fmt.Sprintf("host error: %v", m.sourceErr))
	}
	if m.focus != nil {
		if el, ok := m.widget.Element(*m.focus); ok {
			text := el.Src
			if el.Tooltip != "" {
				text = richtext.Plain(el.Tooltip)
			}
			if m.widget.Disabled() {
				text += " (disabled)"
			}
			return text
		}
	}
	if m.closed {
		return "host disconnected"
	}
	if m.widget.Cycle() == 0 {
		return "waiting for host…"
	}
	return "no images"
}

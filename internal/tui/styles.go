package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors of one theme mode.
type palette struct {
	text       lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	accent     lipgloss.Color
	focus      lipgloss.Color
	background lipgloss.Color
}

var (
	lightPalette = palette{
		text:       lipgloss.Color("236"),
		muted:      lipgloss.Color("245"),
		border:     lipgloss.Color("250"),
		accent:     lipgloss.Color("204"), // Streamlit red
		focus:      lipgloss.Color("39"),
		background: lipgloss.Color(""),
	}
	darkPalette = palette{
		text:       lipgloss.Color("252"),
		muted:      lipgloss.Color("243"),
		border:     lipgloss.Color("240"),
		accent:     lipgloss.Color("203"),
		focus:      lipgloss.Color("75"),
		background: lipgloss.Color("235"),
	}

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	rowLabelStyle = lipgloss.NewStyle().
			Italic(true).
			PaddingRight(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Align(lipgloss.Center)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

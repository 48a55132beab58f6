package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

func newTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func renderTitleBar(width int, value string) string {
	return lipgloss.
		NewStyle().
		Width(width - 2).
		Bold(true).
		Align(lipgloss.Center).
		Background(styles.Current().Surface).
		Foreground(lipgloss.Color(styles.Current().Accent)).
		Render(value)
}

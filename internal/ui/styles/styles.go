// Package styles holds the shared lipgloss styles. Styles are package
// variables rebuilt in place when the theme changes, so models can keep
// referencing them without caring which palette is active.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is one of the two selectable palettes.
type Theme struct {
	Name       string
	Accent     string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextFaint  lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Link       lipgloss.Color
}

var Dark = Theme{
	Name:       "dark",
	Accent:     "#f4722b",
	Background: lipgloss.Color("#111111"),
	Surface:    lipgloss.Color("#1d1d1d"),
	Text:       lipgloss.Color("#cccccc"),
	TextMuted:  lipgloss.Color("#8a8a8a"),
	TextFaint:  lipgloss.Color("#3e3e3e"),
	Success:    lipgloss.Color("#4d7455"),
	Error:      lipgloss.Color("#B8383B"),
	Link:       lipgloss.Color("#5885A2"),
}

var Light = Theme{
	Name:       "light",
	Accent:     "#c2410c",
	Background: lipgloss.Color("#f5f5f4"),
	Surface:    lipgloss.Color("#e7e5e4"),
	Text:       lipgloss.Color("#292524"),
	TextMuted:  lipgloss.Color("#57534e"),
	TextFaint:  lipgloss.Color("#a8a29e"),
	Success:    lipgloss.Color("#15803d"),
	Error:      lipgloss.Color("#b91c1c"),
	Link:       lipgloss.Color("#1d4ed8"),
}

var current = Dark

// Current returns the active theme.
func Current() Theme {
	return current
}

// Use switches the active theme and rebuilds every exported style. Unknown
// names fall back to dark.
func Use(name string) {
	if name == Light.Name {
		current = Light
	} else {
		current = Dark
	}

	rebuild()
}

// Toggle flips between the two palettes and returns the new theme name.
func Toggle() string {
	if current.Name == Dark.Name {
		Use(Light.Name)
	} else {
		Use(Dark.Name)
	}

	return current.Name
}

var (
	HeaderContainerStyle  lipgloss.Style
	ContentContainerStyle lipgloss.Style
	FooterContainerStyle  lipgloss.Style

	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	SectionTitle  lipgloss.Style
	SectionBody   lipgloss.Style
	ItemTitle     lipgloss.Style
	ItemMeta      lipgloss.Style
	ItemBody      lipgloss.Style
	TechBadge     lipgloss.Style
	LinkStyle     lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	PanelLabel    lipgloss.Style
	PanelValue    lipgloss.Style
	StatusBar     lipgloss.Style
	StatusError   lipgloss.Style
	StatusMessage lipgloss.Style
	StatusHelp    lipgloss.Style
	StatusVersion lipgloss.Style
	StatusSending lipgloss.Style

	FocusedStyle lipgloss.Style
	BlurredStyle lipgloss.Style
	CursorStyle  lipgloss.Style
	NoStyle      lipgloss.Style
	HelpStyle    lipgloss.Style
	ErrorText    lipgloss.Style

	FocusedSubmitButton string
	BlurredSubmitButton string

	HelpBox lipgloss.Style
)

func rebuild() {
	HeaderContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)

	NavActive = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(current.Accent)).PaddingLeft(2).PaddingRight(2)
	NavInactive = lipgloss.NewStyle().
		Foreground(current.TextMuted).PaddingLeft(2).PaddingRight(2)

	SectionTitle = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(current.Accent)).MarginTop(1).MarginBottom(1)
	SectionBody = lipgloss.NewStyle().Foreground(current.Text)
	ItemTitle = lipgloss.NewStyle().Bold(true).Foreground(current.Text)
	ItemMeta = lipgloss.NewStyle().Foreground(current.TextMuted)
	ItemBody = lipgloss.NewStyle().Foreground(current.Text)
	TechBadge = lipgloss.NewStyle().Foreground(current.Link)
	LinkStyle = lipgloss.NewStyle().Foreground(current.Link).Underline(true)
	TabActive = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(current.Accent)).PaddingLeft(1).PaddingRight(1)
	TabInactive = lipgloss.NewStyle().
		Foreground(current.TextMuted).PaddingLeft(1).PaddingRight(1)
	PanelLabel = lipgloss.NewStyle().Foreground(current.TextMuted).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	StatusBar = lipgloss.NewStyle().Background(current.Surface)
	StatusError = lipgloss.NewStyle().Foreground(current.Error).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(current.Success).Bold(true).PaddingRight(2)
	StatusHelp = lipgloss.NewStyle().Foreground(current.TextFaint).Bold(true)
	StatusVersion = lipgloss.NewStyle().Foreground(current.Success).Bold(true)
	StatusSending = lipgloss.NewStyle().Foreground(current.TextMuted).PaddingRight(2)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(current.Accent))
	BlurredStyle = lipgloss.NewStyle().Foreground(current.TextMuted)
	CursorStyle = FocusedStyle
	NoStyle = lipgloss.NewStyle()
	HelpStyle = BlurredStyle
	ErrorText = lipgloss.NewStyle().Foreground(current.Error)

	FocusedSubmitButton = FocusedStyle.Render("[ Send ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Send"))

	HelpBox = lipgloss.NewStyle().Padding(3)
}

func init() {
	rebuild()
}

// GlamourStyle maps the active theme onto one of glamour's standard styles.
func GlamourStyle() string {
	if current.Name == Light.Name {
		return "light"
	}

	return "dark"
}

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

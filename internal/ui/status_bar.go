package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

type statusBarModel struct {
	width       int
	statusMsg   string
	statusError bool
	active      sectionID
	version     string
}

func newStatusBarModel(version string) *statusBarModel {
	return &statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case activeSectionMsg:
		m.active = sectionID(msg)
	case contentViewPortHeightMsg:
		m.width = msg.width
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version + " "),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s ", defaultKeyMap.help.Help().Key, defaultKeyMap.help.Help().Desc)),
		m.status(),
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, args...)
	if m.width > 0 {
		bar = truncate.StringWithTail(bar, uint(m.width), "…")
	}

	return lipgloss.NewStyle().Width(m.width).Background(styles.Current().Surface).Render(bar)
}

func (m statusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	return styles.StatusHelp.Render(declaredSections[m.active].title)
}

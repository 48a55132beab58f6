package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

func newHelpModel(buildVersion string, buildDate string, buildCommit string, profileDir string) helpModel {
	if profileDir == "" {
		profileDir = "(embedded defaults)"
	}

	return helpModel{
		configPath:   config.Path(config.DefaultConfigName + ".yaml"),
		profileDir:   profileDir,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	view         contentView
	configPath   string
	profileDir   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, defaultKeyMap.back):
			if m.view == viewHelp {
				m.view = viewPage

				return m, setContentView(viewPage)
			}
		}
	case contentView:
		m.view = msg
	}

	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.quit,
			defaultKeyMap.help,
			defaultKeyMap.back,
			defaultKeyMap.message,
			defaultKeyMap.theme,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.nextSection,
			defaultKeyMap.prevSection,
			defaultKeyMap.section,
			defaultKeyMap.projPrev,
			defaultKeyMap.projNext,
			defaultKeyMap.accept,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.up,
			defaultKeyMap.down,
			defaultKeyMap.pageUp,
			defaultKeyMap.pageDown,
			defaultKeyMap.top,
			defaultKeyMap.bottom,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Profile Dir", m.profileDir),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}

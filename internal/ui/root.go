package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/profile"
	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

type contentView int

const (
	viewPage contentView = iota
	viewContact
	viewHelp
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	currentView   contentView
	previousView  contentView
	height        int
	width         int
	activeSection sectionID
	navModel      tea.Model
	pageModel     *pageModel
	contactModel  tea.Model
	helpModel     tea.Model
	statusModel   tea.Model
	footerHeight  int
	headerHeight  int
}

func newRootModel(userConfig config.Config, prof profile.Profile, buildVersion string, buildDate string, buildCommit string, sender ContactSender, outbox MessageOutbox) *rootModel {
	styles.Use(userConfig.Theme)

	return &rootModel{
		currentView:  viewPage,
		previousView: viewPage,
		navModel:     newNavModel(),
		pageModel:    newPageModel(userConfig, prof),
		contactModel: newContactModel(sender, outbox),
		helpModel:    newHelpModel(buildVersion, buildDate, buildCommit, userConfig.ProfileDir),
		statusModel:  newStatusBarModel(buildVersion),
		headerHeight: 1,
		footerHeight: 1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("portfolio"),
		textinput.Blink,
		m.navModel.Init(),
		m.pageModel.Init(),
		m.contactModel.Init(),
		m.helpModel.Init(),
		m.statusModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		contentViewPortHeight := m.height - m.headerHeight - m.footerHeight

		return m, setContentViewPortHeight(contentViewPortHeight, m.height, m.width)
	case activeSectionMsg:
		m.activeSection = sectionID(msg)
	case contentView:
		m.currentView = msg
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.quit):
			if m.currentView != viewPage {
				break
			}

			return m, tea.Quit
		case key.Matches(msg, defaultKeyMap.help):
			// While the form is open "?" is just a typed character.
			if m.currentView == viewContact {
				break
			}
			target := viewHelp
			if m.currentView == viewHelp {
				target = m.previousView
			} else {
				m.previousView = m.currentView
			}
			m.currentView = target

			return m.propagate(inMsg, setContentView(target))
		case key.Matches(msg, defaultKeyMap.message):
			if m.currentView != viewPage {
				break
			}

			return m.propagate(inMsg, setContentView(viewContact))
		case key.Matches(msg, defaultKeyMap.theme):
			if m.currentView != viewPage {
				break
			}

			return m.propagate(inMsg, setTheme(styles.Toggle()))
		case key.Matches(msg, defaultKeyMap.nextSection):
			if m.currentView != viewPage {
				break
			}

			return m.propagate(inMsg, gotoSection(m.nextSection(1)))
		case key.Matches(msg, defaultKeyMap.prevSection):
			if m.currentView != viewPage {
				break
			}

			return m.propagate(inMsg, gotoSection(m.nextSection(-1)))
		case key.Matches(msg, defaultKeyMap.section):
			if m.currentView != viewPage {
				break
			}

			idx := int(msg.String()[0] - '1')
			if idx >= len(declaredSections) {
				break
			}

			return m.propagate(inMsg, gotoSection(declaredSections[idx].id))
		}
	}

	return m.propagate(inMsg)
}

// nextSection cycles through the declared sections in either direction.
func (m rootModel) nextSection(step int) sectionID {
	count := len(declaredSections)

	return sectionID((int(m.activeSection) + step + count) % count)
}

func (m rootModel) View() string {
	ftr := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())
	_, ftrHeight := lipgloss.Size(ftr)

	hdr := styles.HeaderContainerStyle.Width(m.width).Render(m.navModel.View())
	_, hdrHeight := lipgloss.Size(hdr)

	contentViewPortHeight := m.height - hdrHeight - ftrHeight

	var content string
	switch m.currentView {
	case viewContact:
		content = m.contactModel.View()
	case viewHelp:
		content = m.helpModel.View()
	case viewPage:
		content = m.pageModel.View()
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 5, 5+len(extra))

	m.navModel, cmds[0] = m.navModel.Update(msg)
	m.pageModel, cmds[1] = m.pageModel.Update(msg)
	m.contactModel, cmds[2] = m.contactModel.Update(msg)
	m.helpModel, cmds[3] = m.helpModel.Update(msg)
	m.statusModel, cmds[4] = m.statusModel.Update(msg)

	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/portfolio-tui/portfolio-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
	case clearStatusMessageMsg:
		break
	case profile.Profile:
		break
	case sentMessagesMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}

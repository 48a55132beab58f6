package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uddipan77/portfolio-tui/internal/store"
)

// clearMessageTimeout is how long a status notice stays up before it is
// dismissed automatically.
const clearMessageTimeout = 5 * time.Second

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

// activeSectionMsg is broadcast whenever the scroll position lands on a
// different section. Only the most recent scroll computation wins.
type activeSectionMsg sectionID

func setActiveSection(id sectionID) tea.Cmd {
	return func() tea.Msg { return activeSectionMsg(id) }
}

// gotoSectionMsg asks the page to jump the viewport to a section anchor.
type gotoSectionMsg sectionID

func gotoSection(id sectionID) tea.Cmd {
	return func() tea.Msg { return gotoSectionMsg(id) }
}

func setContentView(view contentView) tea.Cmd {
	return func() tea.Msg { return view }
}

type contentViewPortHeightMsg struct {
	contentViewPortHeight int
	height                int
	width                 int
}

func setContentViewPortHeight(contentViewPortHeight int, height int, width int) tea.Cmd {
	return func() tea.Msg {
		return contentViewPortHeightMsg{
			contentViewPortHeight: contentViewPortHeight,
			height:                height,
			width:                 width,
		}
	}
}

// themeChangedMsg tells models that render cached content to re-render.
type themeChangedMsg string

func setTheme(name string) tea.Cmd {
	return func() tea.Msg { return themeChangedMsg(name) }
}

// contactResultMsg carries the settled outcome of a form submission. A nil
// err means the processor accepted the message.
type contactResultMsg struct {
	err error
}

// sentMessagesMsg refreshes the outbox listing in the contact view.
type sentMessagesMsg []store.SentMessage

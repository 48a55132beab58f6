package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/uddipan77/portfolio-tui/internal/contact"
	"github.com/uddipan77/portfolio-tui/internal/store"
	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

const sentMessagesShown = 5

type direction int

const (
	up direction = iota
	down
)

type contactIdx int

const (
	fieldName contactIdx = iota
	fieldEmail
	fieldMessage
	fieldSend
)

// ContactSender delivers a composed message to the form processor.
type ContactSender interface {
	Send(ctx context.Context, message contact.Message) error
}

// MessageOutbox keeps a local record of messages that were accepted.
type MessageOutbox interface {
	Save(ctx context.Context, name string, email string, body string) (store.SentMessage, error)
	Recent(ctx context.Context, limit int) ([]store.SentMessage, error)
}

type contactModel struct {
	fields     []*validatingTextInputModel
	focusIndex contactIdx
	sender     ContactSender
	outbox     MessageOutbox
	sent       []store.SentMessage
	// sending guards against double submission. Set when a request goes out,
	// cleared when the result comes back.
	sending    bool
	activeView contentView
	width      int
	height     int
}

func newContactModel(sender ContactSender, outbox MessageOutbox) tea.Model {
	message := newValidatingTextInputModel("Message", "", "What would you like to say?", requiredValidator{})
	message.input.CharLimit = 1024

	return &contactModel{
		sender: sender,
		outbox: outbox,
		fields: []*validatingTextInputModel{
			newValidatingTextInputModel("Name", "", "Your name", requiredValidator{}),
			newValidatingTextInputModel("Email", "", "you@example.com", emailValidator{}),
			message,
		},
		activeView: viewPage,
		focusIndex: fieldName,
	}
}

func (m *contactModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchSent())
}

func (m *contactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)

	m.fields[fieldName], cmds[0] = m.fields[fieldName].Update(msg)
	m.fields[fieldEmail], cmds[1] = m.fields[fieldEmail].Update(msg)
	m.fields[fieldMessage], cmds[2] = m.fields[fieldMessage].Update(msg)

	switch msg := msg.(type) {
	case contentView:
		m.activeView = msg
		if m.activeView == viewContact {
			m.focusIndex = fieldName
			for i := range m.fields {
				m.fields[i].blur()
			}
			cmds = append(cmds, m.fields[fieldName].focus(), m.fetchSent()) //nolint:makezero
		} else {
			// A focused input would keep swallowing page keystrokes.
			for i := range m.fields {
				m.fields[i].blur()
			}
		}
	case contentViewPortHeightMsg:
		m.width = msg.width
		m.height = msg.contentViewPortHeight
	case contactResultMsg:
		return m, m.settle(msg)
	case sentMessagesMsg:
		m.sent = msg
	case tea.KeyMsg:
		if m.activeView != viewContact {
			break
		}
		switch {
		case key.Matches(msg, defaultKeyMap.back):
			cmds = append(cmds, setContentView(viewPage)) //nolint:makezero
		case key.Matches(msg, defaultKeyMap.up):
			if m.focusIndex > 0 && m.focusIndex <= fieldSend {
				cmds = append(cmds, m.changeInput(up)) //nolint:makezero
			}
		case key.Matches(msg, defaultKeyMap.down):
			if m.focusIndex >= 0 && m.focusIndex < fieldSend {
				cmds = append(cmds, m.changeInput(down)) //nolint:makezero
			}
		case key.Matches(msg, defaultKeyMap.accept):
			switch m.focusIndex {
			case fieldName:
				fallthrough
			case fieldEmail:
				fallthrough
			case fieldMessage:
				cmds = append(cmds, m.changeInput(down)) //nolint:makezero
			case fieldSend:
				return m, m.submit()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// submit fires the send request. While a request is in flight further
// submissions are dropped, not queued.
func (m *contactModel) submit() tea.Cmd {
	if m.sending {
		return nil
	}

	message := contact.Message{
		Name:  strings.TrimSpace(m.fields[fieldName].input.Value()),
		Email: strings.TrimSpace(m.fields[fieldEmail].input.Value()),
		Body:  strings.TrimSpace(m.fields[fieldMessage].input.Value()),
	}

	if message.Name == "" || message.Body == "" {
		return setStatusMessage("Name and message cannot be empty", true)
	}
	if err := (emailValidator{}).validate(message.Email); err != nil {
		return setStatusMessage("Please enter a valid email address", true)
	}

	m.sending = true

	return tea.Batch(
		setStatusMessage("Sending message...", false),
		func() tea.Msg {
			errSend := m.sender.Send(context.Background(), message)
			if errSend == nil && m.outbox != nil {
				if _, errSave := m.outbox.Save(context.Background(), message.Name, message.Email, message.Body); errSave != nil {
					slog.Error("Failed to record sent message", slog.String("error", errSave.Error()))
				}
			}

			return contactResultMsg{err: errSend}
		})
}

// settle handles the outcome of a submission and always clears the in
// flight flag first.
func (m *contactModel) settle(msg contactResultMsg) tea.Cmd {
	m.sending = false

	if msg.err == nil {
		for i := range m.fields {
			m.fields[i].input.Reset()
			m.fields[i].input.Err = nil
		}
		m.focusIndex = fieldName

		return tea.Batch(
			setStatusMessage("Message sent. Thanks for reaching out!", false),
			m.fetchSent())
	}

	var valErr *contact.ValidationError
	if errors.As(msg.err, &valErr) {
		return setStatusMessage(valErr.Error(), true)
	}

	return setStatusMessage("Could not send message, please try again later", true)
}

func (m *contactModel) fetchSent() tea.Cmd {
	if m.outbox == nil {
		return nil
	}

	return func() tea.Msg {
		sent, errSent := m.outbox.Recent(context.Background(), sentMessagesShown)
		if errSent != nil {
			slog.Error("Failed to load sent messages", slog.String("error", errSent.Error()))

			return nil
		}

		return sentMessagesMsg(sent)
	}
}

func (m *contactModel) changeInput(direction direction) tea.Cmd {
	switch direction { //nolint:exhaustive
	case up:
		m.focusIndex--
	case down:
		m.focusIndex++
	default:
		return nil
	}

	var cmd tea.Cmd
	for i := range m.fields {
		if contactIdx(i) == m.focusIndex {
			cmd = m.fields[i].focus()
		} else {
			m.fields[i].blur()
		}
	}

	return cmd
}

func (m *contactModel) View() string {
	rows := []string{
		renderTitleBar(m.width, "Send me a message"),
		"",
		m.fields[fieldName].View(),
		m.fields[fieldEmail].View(),
		m.fields[fieldMessage].View(),
	}

	switch {
	case m.sending:
		rows = append(rows, styles.StatusSending.Render("Sending..."))
	case m.focusIndex == fieldSend:
		rows = append(rows, styles.FocusedSubmitButton)
	default:
		rows = append(rows, styles.BlurredSubmitButton)
	}

	if len(m.sent) > 0 {
		rows = append(rows, "", styles.ItemMeta.Render("Previously sent"))
		for _, sent := range m.sent {
			rows = append(rows, styles.DetailRow(
				humanize.Time(sent.CreatedOn),
				styles.ItemBody.Render(firstLine(sent.Body))))
		}
	}

	return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Top, rows...))
}

func firstLine(value string) string {
	if idx := strings.IndexByte(value, '\n'); idx >= 0 {
		return value[:idx]
	}

	return value
}

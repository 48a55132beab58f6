package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/uddipan77/portfolio-tui/internal/contact"
	"github.com/uddipan77/portfolio-tui/internal/store"
)

type stubSender struct {
	err   error
	calls int
	last  contact.Message
}

func (s *stubSender) Send(_ context.Context, message contact.Message) error {
	s.calls++
	s.last = message

	return s.err
}

type stubOutbox struct {
	saved []store.SentMessage
}

func (s *stubOutbox) Save(_ context.Context, name string, email string, body string) (store.SentMessage, error) {
	message := store.SentMessage{Name: name, Email: email, Body: body}
	s.saved = append(s.saved, message)

	return message, nil
}

func (s *stubOutbox) Recent(_ context.Context, _ int) ([]store.SentMessage, error) {
	return s.saved, nil
}

func fillForm(model *contactModel) {
	model.fields[fieldName].input.SetValue("Ada")
	model.fields[fieldEmail].input.SetValue("ada@example.com")
	model.fields[fieldMessage].input.SetValue("Hello there")
}

// runBatch executes a command tree and collects the produced messages.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, sub := range batch {
		msgs = append(msgs, runBatch(sub)...)
	}

	return msgs
}

func TestContactSubmitDroppedWhileInFlight(t *testing.T) {
	sender := &stubSender{}
	model := newContactModel(sender, nil).(*contactModel)
	fillForm(model)

	model.sending = true
	require.Nil(t, model.submit())
	require.Equal(t, 0, sender.calls)
}

func TestContactSubmitValidatesBeforeSending(t *testing.T) {
	sender := &stubSender{}
	model := newContactModel(sender, nil).(*contactModel)
	model.fields[fieldEmail].input.SetValue("not-an-email")
	model.fields[fieldName].input.SetValue("Ada")
	model.fields[fieldMessage].input.SetValue("hi")

	msgs := runBatch(model.submit())
	require.Len(t, msgs, 1)
	status, ok := msgs[0].(statusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
	require.Equal(t, 0, sender.calls)
	require.False(t, model.sending)
}

func TestContactSubmitSendsAndRecords(t *testing.T) {
	sender := &stubSender{}
	outbox := &stubOutbox{}
	model := newContactModel(sender, outbox).(*contactModel)
	fillForm(model)

	msgs := runBatch(model.submit())
	require.True(t, model.sending)
	require.Equal(t, 1, sender.calls)
	require.Equal(t, "Ada", sender.last.Name)
	require.Len(t, outbox.saved, 1)

	var settled bool
	for _, msg := range msgs {
		if result, ok := msg.(contactResultMsg); ok {
			settled = true
			require.NoError(t, result.err)
		}
	}
	require.True(t, settled)
}

func TestContactSettleSuccessClearsForm(t *testing.T) {
	model := newContactModel(&stubSender{}, &stubOutbox{}).(*contactModel)
	fillForm(model)
	model.sending = true
	model.focusIndex = fieldSend

	msgs := runBatch(model.settle(contactResultMsg{err: nil}))
	require.False(t, model.sending)
	require.Equal(t, fieldName, model.focusIndex)
	for _, field := range model.fields {
		require.Empty(t, field.input.Value())
	}

	var status statusMsg
	for _, msg := range msgs {
		if got, ok := msg.(statusMsg); ok {
			status = got
		}
	}
	require.False(t, status.Err)
	require.NotEmpty(t, status.Message)
}

func TestContactSettleShowsFieldErrors(t *testing.T) {
	model := newContactModel(&stubSender{}, nil).(*contactModel)
	model.sending = true

	valErr := &contact.ValidationError{Errors: []contact.FieldError{
		{Message: "Invalid email", Field: "email", Code: "INVALID_EMAIL"},
	}}
	msgs := runBatch(model.settle(contactResultMsg{err: valErr}))
	require.False(t, model.sending)
	require.Len(t, msgs, 1)

	status, ok := msgs[0].(statusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
	require.Equal(t, "Invalid email", status.Message)
}

func TestContactFieldsBlurOnLeavingView(t *testing.T) {
	model := newContactModel(&stubSender{}, nil).(*contactModel)

	updated, _ := model.Update(viewContact)
	model = updated.(*contactModel)
	updated, _ = model.Update(viewPage)
	model = updated.(*contactModel)

	// Page keystrokes must not end up inside the last-focused input.
	for _, char := range []rune{'j', 't', 'g'} {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
		model = updated.(*contactModel)
	}

	for _, field := range model.fields {
		require.Empty(t, field.input.Value())
	}
}

func TestContactSettleTransportFailure(t *testing.T) {
	model := newContactModel(&stubSender{}, nil).(*contactModel)
	fillForm(model)
	model.sending = true

	msgs := runBatch(model.settle(contactResultMsg{err: errors.New("connection refused")}))
	require.False(t, model.sending)
	require.Len(t, msgs, 1)

	status, ok := msgs[0].(statusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
	// Form content survives a failed send.
	require.Equal(t, "Ada", model.fields[fieldName].input.Value())
}

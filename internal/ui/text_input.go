package ui

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

var (
	errValueRequired = errors.New("cannot be empty")
	errEmailInvalid  = errors.New("invalid email address")
)

type inputValidator interface {
	validate(string) error
}

func newValidatingTextInputModel(label string, value string, placeholder string, validators ...inputValidator) *validatingTextInputModel {
	input := newTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &validatingTextInputModel{input: input, label: label}
}

type validatingTextInputModel struct {
	label string
	input textinput.Model
}

func (m *validatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *validatingTextInputModel) Update(msg tea.Msg) (*validatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *validatingTextInputModel) View() string {
	var errRow string
	if m.input.Err != nil {
		errRow = styles.ErrorText.Render("Validation Error: " + m.input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Render(m.label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.input.View(), errRow))
}

func (m *validatingTextInputModel) focus() tea.Cmd {
	m.input.PromptStyle = styles.FocusedStyle
	m.input.TextStyle = styles.FocusedStyle

	return m.input.Focus()
}

func (m *validatingTextInputModel) blur() {
	m.input.PromptStyle = styles.NoStyle
	m.input.TextStyle = styles.NoStyle
	m.input.Blur()
}

type requiredValidator struct{}

func (v requiredValidator) validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return errValueRequired
	}

	return nil
}

type emailValidator struct{}

func (v emailValidator) validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: Cannot be empty", errEmailInvalid)
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return errors.Join(err, errEmailInvalid)
	}

	return nil
}

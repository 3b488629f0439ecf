// Package tui runs the team builder in the terminal. It drives the same
// controller as the chat bot, with the terminal standing in for the chat.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/teamsplit/internal/bot"
)

// localUser identifies the terminal user to the controller.
const localUser = 1

type mode int

const (
	modeEditing mode = iota
	modeShowing
)

// Model is the Bubble Tea model for the interactive team builder.
type Model struct {
	controller *bot.Controller
	messenger  *localMessenger
	input      textarea.Model
	mode       mode
	quitting   bool
}

// NewModel creates a model. newController builds the controller around the
// messenger the model renders from.
func NewModel(newController func(bot.Messenger) *bot.Controller) *Model {
	ta := textarea.New()
	ta.Placeholder = "1. Jimmy\n2. Alex\n3. Ben..."
	ta.ShowLineNumbers = false
	ta.SetWidth(40)
	ta.SetHeight(12)
	ta.Focus()

	messenger := &localMessenger{}
	return &Model{
		controller: newController(messenger),
		messenger:  messenger,
		input:      ta,
		mode:       modeEditing,
	}
}

// Run starts the program and blocks until the user quits.
func Run(model *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	m.controller.Handle(context.Background(), bot.Command{UserID: localUser, ChatID: localUser, Name: "start"})
	return textarea.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(min(max(msg.Width-4, 20), 60))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeEditing {
			return m.updateEditing(msg)
		}
		return m.updateShowing(msg)
	}

	if m.mode == modeEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s", "ctrl+d":
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.controller.Handle(context.Background(), bot.Submission{
			UserID: localUser,
			ChatID: localUser,
			Text:   m.input.Value(),
		})
		m.mode = modeShowing
		m.input.Blur()
		return m, nil
	case "esc":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateShowing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.press(bot.ActionApprove)
	case "r":
		m.press(bot.ActionReshuffle)
	case "e":
		m.mode = modeEditing
		return m, m.input.Focus()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// press clicks a button on the visible message, if it carries one.
func (m *Model) press(action bot.Action) {
	if !m.messenger.has(action) {
		return
	}
	current := m.messenger.current
	m.controller.Handle(context.Background(), bot.ButtonPress{
		UserID:     localUser,
		ChatID:     localUser,
		MessageID:  current.ID,
		CallbackID: "local",
		Action:     action,
		Text:       current.Text,
	})
}

// Message returns the text of the message currently on screen.
func (m *Model) Message() string {
	if !m.messenger.visible {
		return ""
	}
	return m.messenger.current.Text
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("teamsplit"))
	b.WriteString("\n\n")

	if m.messenger.visible {
		b.WriteString(messageStyle.Render(m.messenger.current.Text))
		b.WriteString("\n")
		if len(m.messenger.current.Buttons) > 0 {
			labels := make([]string, len(m.messenger.current.Buttons))
			for i, btn := range m.messenger.current.Buttons {
				labels[i] = buttonStyle.Render("[" + btn.Label + "]")
			}
			b.WriteString(strings.Join(labels, "  "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.mode == modeEditing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ctrl+s: make teams • esc: quit"))
	} else {
		b.WriteString(helpStyle.Render("a: approve • r: reshuffle • e: edit list • q: quit"))
	}
	return b.String()
}

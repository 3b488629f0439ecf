package tui

import (
	"context"

	"github.com/lox/teamsplit/internal/bot"
)

// message is the one chat message the terminal shows at a time.
type message struct {
	ID      int
	Text    string
	Buttons []bot.Button
}

// localMessenger is a bot.Messenger that keeps the latest message in memory
// instead of talking to a chat service. The controller calls it
// synchronously from Model.Update, so it needs no locking.
type localMessenger struct {
	nextID  int
	current message
	visible bool
}

func (m *localMessenger) Send(_ context.Context, _ int64, text string, buttons []bot.Button) error {
	m.nextID++
	m.current = message{ID: m.nextID, Text: text, Buttons: buttons}
	m.visible = true
	return nil
}

func (m *localMessenger) Edit(_ context.Context, _ int64, messageID int, text string) error {
	if messageID == m.current.ID {
		m.current.Text = text
		m.current.Buttons = nil
	}
	return nil
}

func (m *localMessenger) Delete(_ context.Context, _ int64, messageID int) error {
	if messageID == m.current.ID {
		m.visible = false
	}
	return nil
}

func (m *localMessenger) Acknowledge(context.Context, string) error {
	return nil
}

func (m *localMessenger) has(action bot.Action) bool {
	if !m.visible {
		return false
	}
	for _, b := range m.current.Buttons {
		if b.Action == action {
			return true
		}
	}
	return false
}

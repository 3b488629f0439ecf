// Package telegram connects the bot controller to the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lox/teamsplit/internal/bot"
)

// ErrMissingToken is returned by Connect when no bot token is configured.
var ErrMissingToken = errors.New("telegram: bot token is required")

// API is the subset of *tgbotapi.BotAPI used by this package.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// Connect authenticates against the Bot API with token.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	return api, nil
}

// Messenger implements bot.Messenger on top of the Bot API.
type Messenger struct {
	api API
}

// NewMessenger wraps api.
func NewMessenger(api API) *Messenger {
	return &Messenger{api: api}
}

func (m *Messenger) Send(ctx context.Context, chatID int64, text string, buttons []bot.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if len(buttons) > 0 {
		msg.ReplyMarkup = keyboard(buttons)
	}
	if _, err := m.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (m *Messenger) Edit(ctx context.Context, chatID int64, messageID int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.api.Request(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (m *Messenger) Delete(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (m *Messenger) Acknowledge(ctx context.Context, callbackID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// keyboard lays buttons out on a single inline row.
func keyboard(buttons []bot.Button) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, len(buttons))
	for i, b := range buttons {
		row[i] = tgbotapi.NewInlineKeyboardButtonData(b.Label, string(b.Action))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// FromUpdate converts a Bot API update into a controller update. It returns
// false for updates the bot does not act on, such as edited messages,
// channel posts or button presses on inline-mode messages.
func FromUpdate(u tgbotapi.Update) (bot.Update, bool) {
	switch {
	case u.Message != nil:
		msg := u.Message
		if msg.From == nil || msg.Chat == nil {
			return nil, false
		}
		if msg.IsCommand() {
			return bot.Command{UserID: msg.From.ID, ChatID: msg.Chat.ID, Name: msg.Command()}, true
		}
		if msg.Text == "" {
			return nil, false
		}
		return bot.Submission{UserID: msg.From.ID, ChatID: msg.Chat.ID, Text: msg.Text}, true

	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		if q.From == nil || q.Message == nil || q.Message.Chat == nil {
			return nil, false
		}
		return bot.ButtonPress{
			UserID:     q.From.ID,
			ChatID:     q.Message.Chat.ID,
			MessageID:  q.Message.MessageID,
			CallbackID: q.ID,
			Action:     bot.Action(q.Data),
			Text:       q.Message.Text,
		}, true
	}
	return nil, false
}

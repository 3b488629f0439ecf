package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lox/teamsplit/cmd/teamsplit/shared"
	"github.com/lox/teamsplit/internal/bot"
	"github.com/lox/teamsplit/internal/randutil"
	"github.com/lox/teamsplit/internal/session"
	"github.com/lox/teamsplit/internal/tui"
)

// PlayCmd runs the approve/reshuffle loop in the terminal.
type PlayCmd struct {
	shared.LogFlags `embed:""`
	ConfigFlags     `embed:""`
}

func (c *PlayCmd) Run() error {
	// The TUI owns the terminal, so logs only surface in debug mode.
	logger := zerolog.Nop()
	if c.Debug {
		logger = c.Logger()
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}

	_, rng := randutil.Resolve(c.Seed)
	store := session.NewStore()
	model := tui.NewModel(func(m bot.Messenger) *bot.Controller {
		return bot.NewController(logger, m, store, rng,
			bot.WithRules(cfg.RosterRules()),
			bot.WithMessages(cfg.BotMessages()),
		)
	})
	return tui.Run(model, tea.WithAltScreen())
}

package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/teamsplit/cmd/teamsplit/shared"
	"github.com/lox/teamsplit/internal/bot"
	"github.com/lox/teamsplit/internal/metrics"
	"github.com/lox/teamsplit/internal/randutil"
	"github.com/lox/teamsplit/internal/session"
	"github.com/lox/teamsplit/internal/telegram"
)

// RunCmd runs the bot against the Telegram Bot API.
type RunCmd struct {
	shared.LogFlags `embed:""`
	ConfigFlags     `embed:""`

	Token       string `env:"BOT_TOKEN" help:"Telegram bot token"`
	MetricsAddr string `default:":9090" help:"Address for /metrics and /healthz (empty disables)"`
	Concurrency int    `default:"16" help:"Maximum updates handled at once"`
	PollTimeout int    `default:"30" help:"Long poll timeout in seconds"`
}

func (c *RunCmd) Run() error {
	logger := c.Logger()

	cfg, err := c.load()
	if err != nil {
		return err
	}

	seed, rng := randutil.Resolve(c.Seed)
	logger.Info().Int64("seed", seed).Bool("deterministic", c.Seed != nil).Msg("Seeded team draws")

	api, err := telegram.Connect(c.Token)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}
	logger.Info().Str("bot", api.Self.UserName).Msg("Authorized")

	store := session.NewStore()
	recorder := metrics.New(store.Len)
	controller := bot.NewController(logger, telegram.NewMessenger(api), store, rng,
		bot.WithRules(cfg.RosterRules()),
		bot.WithMessages(cfg.BotMessages()),
		bot.WithRecorder(recorder),
	)
	poller := telegram.NewPoller(logger, api, controller,
		telegram.WithConcurrency(c.Concurrency),
		telegram.WithPollTimeout(c.PollTimeout),
	)

	logger.Info().
		Int("team_size", cfg.Rules.TeamSize).
		Int("max_players", cfg.Rules.MaxPlayers).
		Int("concurrency", c.Concurrency).
		Str("metrics_addr", c.MetricsAddr).
		Msg("Starting teamsplit bot")

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(ctx)
	})
	if c.MetricsAddr != "" {
		g.Go(func() error {
			return recorder.Serve(ctx, c.MetricsAddr, logger)
		})
	}
	return g.Wait()
}

package telegram

import (
	"context"
	"time"

	"github.com/coder/quartz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/teamsplit/internal/bot"
)

// Handler processes a converted update. *bot.Controller satisfies it.
type Handler interface {
	Handle(ctx context.Context, u bot.Update)
}

// Poller long-polls getUpdates and hands each update to a Handler on its
// own goroutine, up to a concurrency limit.
type Poller struct {
	api         API
	handler     Handler
	logger      zerolog.Logger
	clock       quartz.Clock
	pollTimeout int // seconds
	concurrency int
	minBackoff  time.Duration
	maxBackoff  time.Duration
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithClock sets the clock used for retry backoff.
func WithClock(clock quartz.Clock) PollerOption {
	return func(p *Poller) { p.clock = clock }
}

// WithConcurrency caps the number of updates handled at once.
func WithConcurrency(n int) PollerOption {
	return func(p *Poller) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithPollTimeout sets the long-poll timeout in seconds.
func WithPollTimeout(seconds int) PollerOption {
	return func(p *Poller) { p.pollTimeout = seconds }
}

// WithBackoff sets the retry delay bounds after a failed getUpdates call.
func WithBackoff(minDelay, maxDelay time.Duration) PollerOption {
	return func(p *Poller) {
		p.minBackoff = minDelay
		p.maxBackoff = maxDelay
	}
}

// NewPoller returns a poller feeding handler.
func NewPoller(logger zerolog.Logger, api API, handler Handler, opts ...PollerOption) *Poller {
	p := &Poller{
		api:         api,
		handler:     handler,
		logger:      logger.With().Str("component", "poller").Logger(),
		clock:       quartz.NewReal(),
		pollTimeout: 30,
		concurrency: 16,
		minBackoff:  time.Second,
		maxBackoff:  time.Minute,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until ctx is cancelled. Updates already dispatched are allowed
// to finish before Run returns.
func (p *Poller) Run(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	defer func() { _ = g.Wait() }()

	// In-flight handlers run to completion even after shutdown begins.
	handlerCtx := context.WithoutCancel(ctx)

	offset := 0
	backoff := p.minBackoff
	for ctx.Err() == nil {
		cfg := tgbotapi.NewUpdate(offset)
		cfg.Timeout = p.pollTimeout

		updates, err := p.api.GetUpdates(cfg)
		if err != nil {
			p.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("Failed to fetch updates")
			if !p.wait(ctx, backoff) {
				break
			}
			backoff = nextBackoff(backoff, p.maxBackoff)
			continue
		}
		backoff = p.minBackoff

		for _, raw := range updates {
			if raw.UpdateID >= offset {
				offset = raw.UpdateID + 1
			}
			u, ok := FromUpdate(raw)
			if !ok {
				p.logger.Debug().Int("update_id", raw.UpdateID).Msg("Skipping unsupported update")
				continue
			}
			g.Go(func() error {
				p.handler.Handle(handlerCtx, u)
				return nil
			})
		}
	}

	p.logger.Info().Int("offset", offset).Msg("Stopped polling")
	return nil
}

// wait blocks for d or until ctx is done, reporting whether d elapsed.
func (p *Poller) wait(ctx context.Context, d time.Duration) bool {
	timer := p.clock.NewTimer(d, "poller", "backoff")
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func nextBackoff(current, limit time.Duration) time.Duration {
	next := current * 2
	if next > limit {
		return limit
	}
	return next
}

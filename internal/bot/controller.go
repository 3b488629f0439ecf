// Package bot implements the roster-to-teams conversation: it turns player
// lists into shuffled teams and handles the approve and reshuffle buttons.
package bot

import (
	"context"
	"errors"
	rand "math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/teamsplit/internal/drawid"
	"github.com/lox/teamsplit/internal/roster"
	"github.com/lox/teamsplit/internal/session"
	"github.com/lox/teamsplit/internal/teams"
)

// Controller handles updates for all users. Handle may be called from many
// goroutines at once.
type Controller struct {
	logger      zerolog.Logger
	messenger   Messenger
	sessions    *session.Store
	rules       roster.Rules
	messages    Messages
	partitioner *teams.Partitioner
	recorder    Recorder
	ids         *drawid.Generator
}

// Option configures a Controller.
type Option func(*Controller)

// WithRules overrides the default team size, maximum and filler names.
func WithRules(rules roster.Rules) Option {
	return func(c *Controller) { c.rules = rules }
}

// WithMessages overrides the default reply texts.
func WithMessages(messages Messages) Option {
	return func(c *Controller) { c.messages = messages }
}

// WithRecorder attaches an interaction recorder such as the Prometheus metrics.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithDrawIDs sets the generator used to tag each draw.
func WithDrawIDs(g *drawid.Generator) Option {
	return func(c *Controller) { c.ids = g }
}

// NewController returns a controller that replies through messenger, keeps
// rosters in sessions and shuffles with rng.
func NewController(logger zerolog.Logger, messenger Messenger, sessions *session.Store, rng *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		logger:    logger.With().Str("component", "controller").Logger(),
		messenger: messenger,
		sessions:  sessions,
		rules:     roster.DefaultRules(),
		messages:  DefaultMessages(),
		recorder:  nopRecorder{},
		ids:       drawid.NewGenerator(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.partitioner = teams.NewPartitioner(c.rules.TeamSize, rng)
	return c
}

// Handle processes a single update to completion. Transport failures are
// logged and not retried.
func (c *Controller) Handle(ctx context.Context, u Update) {
	switch u := u.(type) {
	case Command:
		c.handleCommand(ctx, u)
	case Submission:
		c.handleSubmission(ctx, u)
	case ButtonPress:
		c.handleButton(ctx, u)
	default:
		c.logger.Warn().Type("update", u).Msg("Unhandled update type")
	}
}

func (c *Controller) handleCommand(ctx context.Context, cmd Command) {
	switch cmd.Name {
	case "start":
		c.send(ctx, cmd.ChatID, c.messages.Start, nil)
	default:
		c.logger.Debug().
			Int64("user_id", cmd.UserID).
			Str("command", cmd.Name).
			Msg("Ignoring unknown command")
	}
}

func (c *Controller) handleSubmission(ctx context.Context, sub Submission) {
	players := roster.Parse(sub.Text)

	var tooMany *roster.TooManyPlayersError
	if err := c.rules.Check(players); errors.As(err, &tooMany) {
		c.logger.Info().
			Int64("user_id", sub.UserID).
			Int("players", tooMany.Count).
			Int("max_players", tooMany.Max).
			Msg("Rejected oversized roster")
		c.recorder.Submission(false)
		c.send(ctx, sub.ChatID, c.messages.Rejection(tooMany.Count, tooMany.Max), nil)
		return
	}

	completed := c.rules.Complete(players)
	c.sessions.Put(sub.UserID, completed)
	c.recorder.Submission(true)

	c.logger.Debug().
		Int64("user_id", sub.UserID).
		Int("submitted", len(players)).
		Int("roster", len(completed)).
		Msg("Stored roster")

	c.sendTeams(ctx, sub.UserID, sub.ChatID, completed)
}

func (c *Controller) handleButton(ctx context.Context, press ButtonPress) {
	if err := c.messenger.Acknowledge(ctx, press.CallbackID); err != nil {
		c.logger.Warn().Err(err).Str("callback_id", press.CallbackID).Msg("Failed to acknowledge button")
	}

	switch press.Action {
	case ActionApprove:
		c.recorder.Approved()
		if err := c.messenger.Edit(ctx, press.ChatID, press.MessageID, c.messages.Approve(press.Text)); err != nil {
			c.logger.Error().Err(err).
				Int64("chat_id", press.ChatID).
				Int("message_id", press.MessageID).
				Msg("Failed to mark teams approved")
			return
		}
		c.logger.Info().Int64("user_id", press.UserID).Msg("Teams approved")

	case ActionReshuffle:
		c.recorder.Reshuffled()
		players := c.sessions.Get(press.UserID)
		if err := c.messenger.Delete(ctx, press.ChatID, press.MessageID); err != nil {
			c.logger.Warn().Err(err).
				Int64("chat_id", press.ChatID).
				Int("message_id", press.MessageID).
				Msg("Failed to delete previous teams")
		}
		c.sendTeams(ctx, press.UserID, press.ChatID, players)

	default:
		c.logger.Warn().
			Int64("user_id", press.UserID).
			Str("action", string(press.Action)).
			Msg("Unknown button action")
	}
}

// sendTeams draws a fresh partition of players and posts it with buttons.
func (c *Controller) sendTeams(ctx context.Context, userID, chatID int64, players roster.Roster) {
	drawn := c.partitioner.Partition(players)
	c.recorder.TeamsDrawn(len(drawn))

	event := c.logger.Info().
		Str("draw_id", c.ids.New()).
		Int64("user_id", userID).
		Int("players", len(players)).
		Int("teams", len(drawn))
	if left := c.partitioner.Leftover(len(players)); left > 0 {
		event = event.Int("dropped", left)
	}
	event.Msg("Drew teams")

	c.send(ctx, chatID, RenderTeams(drawn), c.messages.Buttons())
}

func (c *Controller) send(ctx context.Context, chatID int64, text string, buttons []Button) {
	if err := c.messenger.Send(ctx, chatID, text, buttons); err != nil {
		c.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/teamsplit/internal/bot"
	"github.com/lox/teamsplit/internal/randutil"
	"github.com/lox/teamsplit/internal/session"
)

type recordingHandler struct {
	mu      sync.Mutex
	updates []bot.Update
}

func (h *recordingHandler) Handle(_ context.Context, u bot.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.updates = append(h.updates, u)
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.updates)
}

func textUpdate(id int, userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: text,
		},
	}
}

func waitForCondition(t *testing.T, condition func() bool, timeout time.Duration, errMsg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error(errMsg)
}

func runPoller(t *testing.T, p *Poller) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	return cancel, done
}

func TestPollerDispatchesAndAdvancesOffset(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	api := &fakeAPI{
		block: block,
		batches: []batch{
			{updates: []tgbotapi.Update{textUpdate(10, 1, "Alice"), textUpdate(11, 2, "Bob")}},
			{updates: []tgbotapi.Update{{UpdateID: 12}, textUpdate(13, 3, "Carl")}},
		},
	}
	h := &recordingHandler{}
	p := NewPoller(testLogger(), api, h, WithPollTimeout(1))

	cancel, done := runPoller(t, p)
	waitForCondition(t, func() bool { return h.count() == 3 }, time.Second, "expected 3 handled updates")
	waitForCondition(t, func() bool { return api.calls() == 3 }, time.Second, "expected a third poll")

	cancel()
	close(block)
	require.NoError(t, <-done)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, []int{0, 12, 14}, api.offsets)
}

func TestPollerRetriesAfterError(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	api := &fakeAPI{
		block: block,
		batches: []batch{
			{err: errors.New("bad gateway")},
			{err: errors.New("bad gateway")},
			{updates: []tgbotapi.Update{textUpdate(1, 1, "Alice")}},
		},
	}
	h := &recordingHandler{}
	p := NewPoller(testLogger(), api, h,
		WithClock(quartz.NewReal()),
		WithBackoff(time.Millisecond, 4*time.Millisecond),
	)

	cancel, done := runPoller(t, p)
	waitForCondition(t, func() bool { return h.count() == 1 }, time.Second, "expected update after retries")

	cancel()
	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, bot.Submission{UserID: 1, ChatID: 1, Text: "Alice"}, h.updates[0])
}

func TestPollerStopsDuringBackoff(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		block:   make(chan struct{}),
		batches: []batch{{err: errors.New("unavailable")}},
	}
	p := NewPoller(testLogger(), api, &recordingHandler{},
		WithClock(quartz.NewMock(t)),
		WithBackoff(time.Hour, time.Hour),
	)

	cancel, done := runPoller(t, p)
	waitForCondition(t, func() bool { return api.calls() == 1 }, time.Second, "expected first poll")
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop while backing off")
	}
	assert.Equal(t, 1, api.calls())
}

func TestNextBackoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2*time.Second, nextBackoff(time.Second, time.Minute))
	assert.Equal(t, time.Minute, nextBackoff(40*time.Second, time.Minute))
	assert.Equal(t, time.Minute, nextBackoff(time.Minute, time.Minute))
}

func TestPollerDrivesController(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	api := &fakeAPI{
		block:   block,
		batches: []batch{{updates: []tgbotapi.Update{textUpdate(1, 7, "1. Alice\n2. Bob")}}},
	}
	controller := bot.NewController(testLogger(), NewMessenger(api), session.NewStore(), randutil.New(1))
	p := NewPoller(testLogger(), api, controller, WithConcurrency(1))

	cancel, done := runPoller(t, p)
	waitForCondition(t, func() bool {
		api.mu.Lock()
		defer api.mu.Unlock()
		return len(api.sent) == 1
	}, time.Second, "expected team list to be sent")
	cancel()
	close(block)
	require.NoError(t, <-done)

	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(7), msg.ChatID)
	assert.Contains(t, msg.Text, "🏆 Team 1:")
	assert.Contains(t, msg.Text, "Alice")
	assert.Contains(t, msg.Text, "Rand6")
}

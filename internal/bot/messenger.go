package bot

import "context"

// Button is an inline control attached to an outgoing message.
type Button struct {
	Label  string
	Action Action
}

// Messenger delivers rendered output back to the chat platform.
type Messenger interface {
	// Send posts a new message to chatID with an optional row of buttons.
	Send(ctx context.Context, chatID int64, text string, buttons []Button) error
	// Edit replaces the text of an existing message and drops its buttons.
	Edit(ctx context.Context, chatID int64, messageID int, text string) error
	// Delete removes an existing message.
	Delete(ctx context.Context, chatID int64, messageID int) error
	// Acknowledge answers a button press so the client stops its spinner.
	Acknowledge(ctx context.Context, callbackID string) error
}

// Recorder receives counts of handled interactions.
type Recorder interface {
	Submission(accepted bool)
	Approved()
	Reshuffled()
	TeamsDrawn(n int)
}

type nopRecorder struct{}

func (nopRecorder) Submission(bool) {}
func (nopRecorder) Approved()       {}
func (nopRecorder) Reshuffled()     {}
func (nopRecorder) TeamsDrawn(int)  {}

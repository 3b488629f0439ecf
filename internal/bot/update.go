package bot

// Update is an inbound event from the chat transport. It is one of
// Command, Submission or ButtonPress.
type Update interface {
	// Sender returns the platform user ID of whoever triggered the update.
	Sender() int64
	isUpdate()
}

// Command is a slash command such as /start.
type Command struct {
	UserID int64
	ChatID int64
	Name   string
}

// Submission is free text treated as a newline-delimited player list.
type Submission struct {
	UserID int64
	ChatID int64
	Text   string
}

// Action is the opaque token carried by an inline button.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReshuffle Action = "reshuffle"
)

// ButtonPress is a click on one of the buttons attached to a team list.
// Text is the content of the message the button was attached to.
type ButtonPress struct {
	UserID     int64
	ChatID     int64
	MessageID  int
	CallbackID string
	Action     Action
	Text       string
}

func (c Command) Sender() int64     { return c.UserID }
func (s Submission) Sender() int64  { return s.UserID }
func (b ButtonPress) Sender() int64 { return b.UserID }

func (Command) isUpdate()     {}
func (Submission) isUpdate()  {}
func (ButtonPress) isUpdate() {}

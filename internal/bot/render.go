package bot

import (
	"fmt"
	"strings"

	"github.com/lox/teamsplit/internal/teams"
)

// Messages holds every user-facing string the controller sends.
type Messages struct {
	Start          string
	TooManyPlayers string // formatted with the submitted count and the maximum
	ApprovedBanner string
	ApproveLabel   string
	ReshuffleLabel string
}

// DefaultMessages returns the stock English replies.
func DefaultMessages() Messages {
	return Messages{
		Start:          "👋 Send a list of players (like:\n1.Jimmy\n2.Alex\n3.Ben...)",
		TooManyPlayers: "❌ Too many players (%d). Max allowed is %d.",
		ApprovedBanner: "✅ Teams approved!\n\n",
		ApproveLabel:   "✅ Approve",
		ReshuffleLabel: "🔁 Reshuffle",
	}
}

// RenderTeams formats teams as numbered paragraphs separated by blank lines.
func RenderTeams(ts []teams.Team) string {
	blocks := make([]string, len(ts))
	for i, team := range ts {
		blocks[i] = fmt.Sprintf("🏆 Team %d:\n", i+1) + strings.Join(team, "\n")
	}
	return strings.Join(blocks, "\n\n")
}

// Approve prefixes the displayed team list with the approval banner, leaving
// the original text byte for byte intact.
func (m Messages) Approve(displayed string) string {
	return m.ApprovedBanner + displayed
}

// Rejection returns the too-many-players reply.
func (m Messages) Rejection(count, limit int) string {
	return fmt.Sprintf(m.TooManyPlayers, count, limit)
}

// Buttons returns the approve/reshuffle row attached to every team list.
func (m Messages) Buttons() []Button {
	return []Button{
		{Label: m.ApproveLabel, Action: ActionApprove},
		{Label: m.ReshuffleLabel, Action: ActionReshuffle},
	}
}

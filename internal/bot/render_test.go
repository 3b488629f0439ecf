package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/teamsplit/internal/teams"
)

func TestRenderTeams(t *testing.T) {
	t.Parallel()

	got := RenderTeams([]teams.Team{
		{"Alice", "Bob"},
		{"Carl", "Dan"},
	})
	assert.Equal(t, "🏆 Team 1:\nAlice\nBob\n\n🏆 Team 2:\nCarl\nDan", got)
}

func TestRenderNoTeams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RenderTeams(nil))
}

func TestApproveKeepsBytes(t *testing.T) {
	t.Parallel()
	m := DefaultMessages()

	block := "🏆 Team 1:\nAlice\nBob  \n\n🏆 Team 2:\n  Carl"
	assert.Equal(t, m.ApprovedBanner+block, m.Approve(block))
	assert.Equal(t, "✅ Teams approved!\n\n"+block, m.Approve(block))
}

func TestRejection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "❌ Too many players (25). Max allowed is 24.", DefaultMessages().Rejection(25, 24))
}

func TestButtons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Button{
		{Label: "✅ Approve", Action: ActionApprove},
		{Label: "🔁 Reshuffle", Action: ActionReshuffle},
	}, DefaultMessages().Buttons())
}

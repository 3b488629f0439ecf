package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/teamsplit/internal/teams"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	teamStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginRight(1)

	teamHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	buttonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// teamsPerRow keeps styled output narrow enough for an 80 column terminal.
const teamsPerRow = 3

// StyleTeams renders teams as bordered boxes laid out side by side.
func StyleTeams(ts []teams.Team) string {
	if len(ts) == 0 {
		return helpStyle.Render("(no teams)")
	}

	boxes := make([]string, len(ts))
	for i, team := range ts {
		header := teamHeaderStyle.Render(fmt.Sprintf("Team %d", i+1))
		boxes[i] = teamStyle.Render(header + "\n" + strings.Join(team, "\n"))
	}

	var rows []string
	for start := 0; start < len(boxes); start += teamsPerRow {
		end := min(start+teamsPerRow, len(boxes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

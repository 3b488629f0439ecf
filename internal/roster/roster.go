// Package roster turns free-form player lists into rosters and pads them
// out to a whole number of teams.
package roster

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultTeamSize is the number of players in every team.
	DefaultTeamSize = 6
	// DefaultMaxPlayers is the largest roster a single submission may contain.
	DefaultMaxPlayers = 24
)

// DefaultFillerNames are the placeholder names used to pad an incomplete roster.
var DefaultFillerNames = []string{"Rand1", "Rand2", "Rand3", "Rand4", "Rand5", "Rand6"}

// Roster is an ordered list of player names.
type Roster []string

// Clone returns a copy that shares no backing array with r.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// numbered matches list items such as "1. Jimmy" or "  12.Alex".
var numbered = regexp.MustCompile(`^\s*\d+\.\s*(.*)$`)

// Parse splits text on newlines and parses each line.
func Parse(text string) Roster {
	return ParseLines(strings.Split(strings.TrimSpace(text), "\n"))
}

// ParseLines extracts one player name per line, stripping leading "N."
// markers and skipping lines that end up empty.
func ParseLines(lines []string) Roster {
	players := make(Roster, 0, len(lines))
	for _, line := range lines {
		var name string
		if m := numbered.FindStringSubmatch(line); m != nil {
			name = strings.TrimSpace(m[1])
		} else {
			name = strings.TrimSpace(line)
		}
		if name != "" {
			players = append(players, name)
		}
	}
	return players
}

// TooManyPlayersError reports a roster that exceeds the configured maximum.
type TooManyPlayersError struct {
	Count int
	Max   int
}

func (e *TooManyPlayersError) Error() string {
	return fmt.Sprintf("too many players: %d (max %d)", e.Count, e.Max)
}

// Rules holds the sizing constants used for completion and partitioning.
type Rules struct {
	TeamSize    int
	MaxPlayers  int
	FillerNames []string
}

// DefaultRules returns six-a-side teams capped at 24 players.
func DefaultRules() Rules {
	return Rules{
		TeamSize:    DefaultTeamSize,
		MaxPlayers:  DefaultMaxPlayers,
		FillerNames: DefaultFillerNames,
	}
}

// Check returns a *TooManyPlayersError when r is longer than the maximum.
func (rules Rules) Check(r Roster) error {
	if len(r) > rules.MaxPlayers {
		return &TooManyPlayersError{Count: len(r), Max: rules.MaxPlayers}
	}
	return nil
}

// Complete pads r with filler names until its length is a multiple of the
// team size or the maximum is reached, whichever comes first. The filler for
// position n is FillerNames[n % TeamSize]. r itself is never modified.
func (rules Rules) Complete(r Roster) Roster {
	out := r.Clone()
	count := len(out)
	for count%rules.TeamSize != 0 && count < rules.MaxPlayers {
		out = append(out, rules.filler(count%rules.TeamSize))
		count++
	}
	return out
}

func (rules Rules) filler(i int) string {
	if len(rules.FillerNames) == 0 {
		return fmt.Sprintf("Rand%d", i+1)
	}
	return rules.FillerNames[i%len(rules.FillerNames)]
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/teamsplit/cmd/teamsplit/shared"
	"github.com/lox/teamsplit/internal/bot"
	"github.com/lox/teamsplit/internal/drawid"
	"github.com/lox/teamsplit/internal/fileutil"
	"github.com/lox/teamsplit/internal/randutil"
	"github.com/lox/teamsplit/internal/roster"
	"github.com/lox/teamsplit/internal/teams"
	"github.com/lox/teamsplit/internal/tui"
)

// ShuffleCmd draws teams once from a file or stdin.
type ShuffleCmd struct {
	shared.LogFlags `embed:""`
	ConfigFlags     `embed:""`

	File  string `arg:"" optional:"" help:"Player list (reads stdin when omitted or '-')"`
	Plain bool   `help:"Print the same text the bot sends instead of styled boxes"`
	Out   string `short:"o" type:"path" help:"Also write the plain team list to this file"`
}

func (c *ShuffleCmd) Run() error {
	return c.run(c.Logger(), os.Stdin, os.Stdout)
}

func (c *ShuffleCmd) run(logger zerolog.Logger, in io.Reader, out io.Writer) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	text, err := c.read(in)
	if err != nil {
		return err
	}

	rules := cfg.RosterRules()
	players := roster.Parse(text)
	if err := rules.Check(players); err != nil {
		return err
	}
	completed := rules.Complete(players)

	seed, rng := randutil.Resolve(c.Seed)
	drawn := teams.NewPartitioner(rules.TeamSize, rng).Partition(completed)
	plain := bot.RenderTeams(drawn)

	logger.Debug().
		Str("draw_id", drawid.New()).
		Int64("seed", seed).
		Int("players", len(players)).
		Int("teams", len(drawn)).
		Msg("Teams drawn")

	if c.Plain {
		_, err = fmt.Fprintln(out, plain)
	} else {
		_, err = fmt.Fprintln(out, tui.StyleTeams(drawn))
	}
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := fileutil.WriteFileAtomic(c.Out, []byte(plain+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.Out, err)
		}
		logger.Info().Str("path", c.Out).Msg("Wrote teams")
	}
	return nil
}

func (c *ShuffleCmd) read(stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if c.File == "" || c.File == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return "", fmt.Errorf("read player list: %w", err)
	}
	return string(data), nil
}

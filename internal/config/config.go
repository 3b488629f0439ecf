// Package config loads the optional HCL file that tunes team sizes and the
// bot's reply texts.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/teamsplit/internal/bot"
	"github.com/lox/teamsplit/internal/roster"
)

// Config represents the complete bot configuration.
type Config struct {
	Rules    *RulesBlock    `hcl:"rules,block"`
	Messages *MessagesBlock `hcl:"messages,block"`
}

// RulesBlock controls roster completion and partitioning.
type RulesBlock struct {
	TeamSize    int      `hcl:"team_size,optional"`
	MaxPlayers  int      `hcl:"max_players,optional"`
	FillerNames []string `hcl:"filler_names,optional"`
}

// MessagesBlock overrides the texts sent to users.
type MessagesBlock struct {
	Start          string `hcl:"start,optional"`
	TooManyPlayers string `hcl:"too_many_players,optional"`
	ApprovedBanner string `hcl:"approved_banner,optional"`
	ApproveLabel   string `hcl:"approve_label,optional"`
	ReshuffleLabel string `hcl:"reshuffle_label,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rules := roster.DefaultRules()
	msgs := bot.DefaultMessages()
	return &Config{
		Rules: &RulesBlock{
			TeamSize:    rules.TeamSize,
			MaxPlayers:  rules.MaxPlayers,
			FillerNames: append([]string(nil), rules.FillerNames...),
		},
		Messages: &MessagesBlock{
			Start:          msgs.Start,
			TooManyPlayers: msgs.TooManyPlayers,
			ApprovedBanner: msgs.ApprovedBanner,
			ApproveLabel:   msgs.ApproveLabel,
			ReshuffleLabel: msgs.ReshuffleLabel,
		},
	}
}

// Load reads an HCL configuration file. An empty filename or a missing file
// yields the defaults; any field left out of the file keeps its default.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Rules == nil {
		c.Rules = def.Rules
	}
	if c.Rules.TeamSize == 0 {
		c.Rules.TeamSize = def.Rules.TeamSize
	}
	if c.Rules.MaxPlayers == 0 {
		c.Rules.MaxPlayers = def.Rules.MaxPlayers
	}
	if len(c.Rules.FillerNames) == 0 {
		c.Rules.FillerNames = def.Rules.FillerNames
	}

	if c.Messages == nil {
		c.Messages = def.Messages
	}
	m, d := c.Messages, def.Messages
	if m.Start == "" {
		m.Start = d.Start
	}
	if m.TooManyPlayers == "" {
		m.TooManyPlayers = d.TooManyPlayers
	}
	if m.ApprovedBanner == "" {
		m.ApprovedBanner = d.ApprovedBanner
	}
	if m.ApproveLabel == "" {
		m.ApproveLabel = d.ApproveLabel
	}
	if m.ReshuffleLabel == "" {
		m.ReshuffleLabel = d.ReshuffleLabel
	}
}

// Validate checks the configuration for values the bot cannot work with.
// max_players must be a multiple of team_size so that a completed roster
// never leaves players out of the draw.
func (c *Config) Validate() error {
	r := c.Rules
	if r.TeamSize < 1 {
		return fmt.Errorf("team_size must be positive, got %d", r.TeamSize)
	}
	if r.MaxPlayers < r.TeamSize {
		return fmt.Errorf("max_players (%d) must be at least team_size (%d)", r.MaxPlayers, r.TeamSize)
	}
	if r.MaxPlayers%r.TeamSize != 0 {
		return fmt.Errorf("max_players (%d) must be a multiple of team_size (%d)", r.MaxPlayers, r.TeamSize)
	}
	if len(r.FillerNames) < r.TeamSize {
		return fmt.Errorf("need at least %d filler_names, got %d", r.TeamSize, len(r.FillerNames))
	}
	for i, name := range r.FillerNames {
		if name == "" {
			return fmt.Errorf("filler_names[%d] is empty", i)
		}
	}
	if c.Messages.ApproveLabel == c.Messages.ReshuffleLabel {
		return fmt.Errorf("approve_label and reshuffle_label must differ")
	}
	return nil
}

// RosterRules converts the rules block for the roster package.
func (c *Config) RosterRules() roster.Rules {
	return roster.Rules{
		TeamSize:    c.Rules.TeamSize,
		MaxPlayers:  c.Rules.MaxPlayers,
		FillerNames: c.Rules.FillerNames,
	}
}

// BotMessages converts the messages block for the controller.
func (c *Config) BotMessages() bot.Messages {
	return bot.Messages{
		Start:          c.Messages.Start,
		TooManyPlayers: c.Messages.TooManyPlayers,
		ApprovedBanner: c.Messages.ApprovedBanner,
		ApproveLabel:   c.Messages.ApproveLabel,
		ReshuffleLabel: c.Messages.ReshuffleLabel,
	}
}

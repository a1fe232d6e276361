// Package config loads match and simulation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete unomatch configuration
type Config struct {
	Match      MatchConfig       `hcl:"match,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// MatchConfig defines a single match: who plays and how the match is scored
type MatchConfig struct {
	Name           string   `hcl:"name,label"`
	Players        []string `hcl:"players"`
	TargetScore    int      `hcl:"target_score,optional"`
	CardsPerPlayer int      `hcl:"cards_per_player,optional"`
	Seed           int64    `hcl:"seed,optional"`
	LogLevel       string   `hcl:"log_level,optional"`
}

// SimulationConfig controls batch simulation runs
type SimulationConfig struct {
	Games   int   `hcl:"games,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			Name:           "main",
			Players:        []string{"Player 1", "Player 2"},
			TargetScore:    500,
			CardsPerPlayer: 7,
			LogLevel:       "info",
		},
		Simulation: &SimulationConfig{
			Games:   100,
			Workers: runtime.NumCPU(),
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Match.TargetScore == 0 {
		c.Match.TargetScore = 500
	}
	if c.Match.CardsPerPlayer == 0 {
		c.Match.CardsPerPlayer = 7
	}
	if c.Match.LogLevel == "" {
		c.Match.LogLevel = "info"
	}
	if c.Simulation != nil {
		if c.Simulation.Games == 0 {
			c.Simulation.Games = 100
		}
		if c.Simulation.Workers == 0 {
			c.Simulation.Workers = runtime.NumCPU()
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Match.Players) < 2 || len(c.Match.Players) > 10 {
		return fmt.Errorf("match %s: player count must be between 2 and 10, got %d", c.Match.Name, len(c.Match.Players))
	}
	seen := make(map[string]bool, len(c.Match.Players))
	for _, name := range c.Match.Players {
		if name == "" {
			return fmt.Errorf("match %s: player names must not be empty", c.Match.Name)
		}
		if seen[name] {
			return fmt.Errorf("match %s: duplicate player name %q", c.Match.Name, name)
		}
		seen[name] = true
	}
	if c.Match.TargetScore <= 0 {
		return fmt.Errorf("match %s: target score must be positive", c.Match.Name)
	}
	if c.Match.CardsPerPlayer < 1 {
		return fmt.Errorf("match %s: cards per player must be at least 1", c.Match.Name)
	}
	// Every player must be dealable from a single 108-card deck with one
	// card left for the first discard.
	if c.Match.CardsPerPlayer*len(c.Match.Players) >= 108 {
		return fmt.Errorf("match %s: %d players at %d cards each exceeds the deck",
			c.Match.Name, len(c.Match.Players), c.Match.CardsPerPlayer)
	}
	switch c.Match.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("match %s: invalid log level %q", c.Match.Name, c.Match.LogLevel)
	}

	if c.Simulation != nil {
		if c.Simulation.Games < 1 {
			return fmt.Errorf("simulation: games must be positive")
		}
		if c.Simulation.Workers < 1 {
			return fmt.Errorf("simulation: workers must be positive")
		}
	}
	return nil
}

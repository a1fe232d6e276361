package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/unomatch/internal/config"
	"github.com/lox/unomatch/internal/report"
	"github.com/lox/unomatch/internal/simulator"
)

// SimulateCmd runs batches of matches with random-policy players
type SimulateCmd struct {
	Games   int      `kong:"default='100',help='Number of matches to play'"`
	Players []string `kong:"default='North,East,South,West',help='Player names in seat order'"`
	Target  int      `kong:"default='500',help='Score needed to win each match'"`
	Workers int      `kong:"default='0',help='Parallel workers (0 = all CPUs)'"`
	Seed    *int64   `kong:"help='Master RNG seed (optional)'"`
	Output  string   `kong:"type='path',help='Write a JSON report to this file'"`
	Config  string   `kong:"type='path',help='HCL config file; overrides the flags above'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	games := c.Games
	players := c.Players
	target := c.Target
	workers := c.Workers
	if c.Config != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		players = cfg.Match.Players
		target = cfg.Match.TargetScore
		if cfg.Simulation != nil {
			games = cfg.Simulation.Games
			workers = cfg.Simulation.Workers
			if cfg.Simulation.Seed != 0 {
				c.Seed = &cfg.Simulation.Seed
			}
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("starting simulation",
		"games", games,
		"players", len(players),
		"target", target,
		"workers", workers,
		"seed", seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Games:       games,
		Players:     players,
		TargetScore: target,
		Workers:     workers,
		Seed:        seed,
		Logger:      logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(stats, players)

	if c.Output != "" {
		r := report.Build(stats, players, seed, target)
		if err := r.WriteJSON(c.Output); err != nil {
			return err
		}
		logger.Info("report written", "path", c.Output)
	}
	return nil
}

package main

import (
	"time"

	"github.com/lox/unomatch/internal/config"
	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/internal/randutil"
	"github.com/lox/unomatch/internal/tui"
)

// PlayCmd runs an interactive hot-seat match
type PlayCmd struct {
	Players []string `kong:"default='Player 1,Player 2',help='Player names in seat order'"`
	Target  int      `kong:"default='500',help='Score needed to win the match'"`
	Cards   int      `kong:"default='7',help='Cards dealt to each player'"`
	Seed    *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Config  string   `kong:"type='path',help='HCL config file; overrides the flags above'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	players := c.Players
	target := c.Target
	cards := c.Cards
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
		cards = cfg.Match.CardsPerPlayer
		if cfg.Match.Seed != 0 {
			c.Seed = &cfg.Match.Seed
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	}

	g, err := game.NewGame(players, game.GameConfig{
		TargetScore:    target,
		CardsPerPlayer: cards,
		Shuffler:       randutil.Shuffler(seed),
		Randomizer:     randutil.DealerRandomizer(seed),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	return tui.Run(g, logger)
}

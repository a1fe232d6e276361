package main

import (
	"fmt"
	"time"

	"github.com/lox/unomatch/internal/display"
	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/internal/randutil"
)

// DealCmd deals a single hand and prints it, useful for eyeballing shuffles
type DealCmd struct {
	Players []string `kong:"default='Player 1,Player 2,Player 3,Player 4',help='Player names in seat order'"`
	Cards   int      `kong:"default='7',help='Cards dealt to each player'"`
	Dealer  int      `kong:"default='1',help='Dealer seat (1-based)'"`
	Seed    *int64   `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *DealCmd) Run() error {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	h, err := game.NewHand(randutil.Shuffler(seed), c.Players, c.Dealer-1,
		game.WithCardsPerPlayer(c.Cards))
	if err != nil {
		return err
	}

	fmt.Printf("Seed: %d\n\n", seed)
	for i, name := range h.Players() {
		cards, err := h.PlayerHand(i)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", name, display.Cards(cards))
	}
	fmt.Println()
	fmt.Println(display.HandState(h))
	return nil
}

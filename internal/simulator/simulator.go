// Package simulator plays large batches of matches with random-policy
// players, checking engine invariants and collecting outcome statistics.
package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/internal/randutil"
	"github.com/lox/unomatch/internal/statistics"
	"github.com/lox/unomatch/uno"
)

// maxMoves bounds a single match; a run past it indicates a stuck engine.
const maxMoves = 1_000_000

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Players     []string
	TargetScore int
	Workers     int
	Seed        int64
	Logger      *log.Logger
	Clock       quartz.Clock
}

// Simulator plays full matches from a master seed. Each game derives its own
// seed, so runs are reproducible regardless of worker interleaving.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = runtime.NumCPU()
	}
	if config.TargetScore < 1 {
		config.TargetScore = 500
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(nil, log.Options{Level: log.WarnLevel})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated statistics. Games run
// on up to Workers goroutines; the first engine error aborts the batch.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if len(s.config.Players) < 2 {
		return nil, fmt.Errorf("simulator: need at least 2 players, got %d", len(s.config.Players))
	}

	stats := statistics.New(len(s.config.Players))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		gameSeed := s.config.Seed + int64(i)
		eg.Go(func() error {
			result, err := s.playGame(ctx, gameSeed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", gameSeed, err)
			}
			stats.Add(result)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame drives a single match to completion with a random policy: play a
// random legal card, otherwise draw. Players usually remember to declare
// UNO; opponents pounce when they forget.
func (s *Simulator) playGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	start := s.config.Clock.Now()

	g, err := game.NewGame(s.config.Players, game.GameConfig{
		TargetScore: s.config.TargetScore,
		Shuffler:    uno.RandomShuffler(rng),
		Randomizer:  func(playerCount int) int { return rng.IntN(playerCount) },
		Logger:      s.config.Logger,
	})
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{Seed: seed}
	for result.Moves = 0; result.Moves < maxMoves; result.Moves++ {
		if err := ctx.Err(); err != nil {
			return statistics.GameResult{}, err
		}
		h := g.CurrentHand()
		if h == nil {
			break
		}
		if got := h.CardsInPlay(); got != uno.DeckSize {
			return statistics.GameResult{}, fmt.Errorf("card conservation broken: %d cards in play", got)
		}

		if err := s.playMove(g, h, rng, &result); err != nil {
			return statistics.GameResult{}, err
		}
	}
	if !g.Finished() {
		return statistics.GameResult{}, fmt.Errorf("match did not finish within %d moves", maxMoves)
	}

	winner, ok := g.Winner()
	if !ok {
		return statistics.GameResult{}, fmt.Errorf("finished match reports no winner")
	}
	result.Winner = winner
	result.HandsPlayed = g.HandsPlayed()
	result.Duration = s.config.Clock.Since(start)
	return result, nil
}

func (s *Simulator) playMove(g *game.Game, h *game.Hand, rng *rand.Rand, result *statistics.GameResult) error {
	player := h.PlayerInTurn()
	cards, err := h.PlayerHand(player)
	if err != nil {
		return err
	}

	var legal []int
	for idx := range cards {
		if err := wouldBeLegal(h, idx); err == nil {
			legal = append(legal, idx)
		}
	}

	if len(legal) == 0 {
		return g.Draw()
	}

	// Three times out of four the player remembers UNO before going to
	// one card.
	if len(cards) == 2 && rng.IntN(4) > 0 {
		if err := g.SayUno(player); err != nil {
			return err
		}
	}

	idx := legal[rng.IntN(len(legal))]
	color := uno.NoColor
	if cards[idx].IsWild() {
		color = []uno.Color{uno.Red, uno.Yellow, uno.Green, uno.Blue}[rng.IntN(4)]
	}

	out, err := g.Play(idx, color)
	if err != nil {
		return err
	}
	if out.HandEnded {
		result.Reshuffles += h.Reshuffles()
		return nil
	}

	// The next player accuses anyone left on one card.
	if next := h.PlayerInTurn(); next >= 0 && next != player && len(cards) == 2 {
		caught, err := h.CatchUnoFailure(game.Accusation{Accuser: next, Accused: player})
		if err != nil {
			return err
		}
		if caught {
			result.UnoCatches++
		}
	}
	return nil
}

// wouldBeLegal replays the Play legality checks without mutating state.
func wouldBeLegal(h *game.Hand, idx int) error {
	cards, err := h.PlayerHand(h.PlayerInTurn())
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(cards) {
		return game.ErrIllegalPlay
	}
	card := cards[idx]
	top, ok := h.LastPlayedCard()
	if !ok {
		return nil
	}
	if card.Type == uno.WildDraw {
		for _, held := range cards {
			if held.Color != uno.NoColor && held.Color == top.Color {
				return game.ErrIllegalPlay
			}
		}
		return nil
	}
	if !card.CanPlayOn(top) {
		return game.ErrIllegalPlay
	}
	return nil
}

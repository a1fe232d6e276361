package game

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/unomatch/internal/matchid"
	"github.com/lox/unomatch/internal/randutil"
	"github.com/lox/unomatch/uno"
)

// Randomizer chooses the dealer for a new hand given the player count.
type Randomizer func(playerCount int) int

// GameConfig carries the pluggable pieces of a match. Zero values get
// sensible defaults: 7 cards per player and time-seeded randomness.
type GameConfig struct {
	TargetScore    int
	CardsPerPlayer int
	Shuffler       uno.Shuffler
	Randomizer     Randomizer
	Logger         *log.Logger
}

// Game sequences hands until one player's accumulated score reaches the
// target. Each hand's dealer is chosen by the randomizer; each hand's
// score is credited to its winner when Play reports the hand ended.
type Game struct {
	id             string
	players        []string
	targetScore    int
	cardsPerPlayer int
	shuffler       uno.Shuffler
	randomizer     Randomizer
	logger         *log.Logger

	scores      []int
	hand        *Hand
	handsPlayed int
}

// NewGame validates the configuration and immediately starts the first
// hand with a randomizer-chosen dealer.
func NewGame(players []string, cfg GameConfig) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("new game: %d players, need at least 2: %w", len(players), ErrInvalidConfig)
	}
	if cfg.TargetScore <= 0 {
		return nil, fmt.Errorf("new game: target score %d must be positive: %w", cfg.TargetScore, ErrInvalidConfig)
	}
	if cfg.CardsPerPlayer == 0 {
		cfg.CardsPerPlayer = DefaultCardsPerPlayer
	}
	if cfg.Shuffler == nil {
		cfg.Shuffler = randutil.Shuffler(time.Now().UnixNano())
	}
	if cfg.Randomizer == nil {
		cfg.Randomizer = randutil.DealerRandomizer(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	id := matchid.New()
	g := &Game{
		id:             id,
		players:        slices.Clone(players),
		targetScore:    cfg.TargetScore,
		cardsPerPlayer: cfg.CardsPerPlayer,
		shuffler:       cfg.Shuffler,
		randomizer:     cfg.Randomizer,
		logger:         cfg.Logger.With("match", id),
		scores:         make([]int, len(players)),
	}
	if err := g.startHand(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) startHand() error {
	dealer := g.randomizer(len(g.players))
	hand, err := NewHand(g.shuffler, g.players, dealer,
		WithCardsPerPlayer(g.cardsPerPlayer),
		WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("start hand: %w", err)
	}
	g.hand = hand
	g.logger.Debug("hand started", "number", g.handsPlayed+1, "dealer", g.players[dealer])
	return nil
}

// Draw forwards to the current hand.
func (g *Game) Draw() error {
	if g.hand == nil {
		return fmt.Errorf("draw: %w", ErrMatchOver)
	}
	return g.hand.Draw()
}

// Play forwards to the current hand and settles the hand's score when the
// play ends it: the winner collects the losers' points, and a fresh hand
// starts unless the winner's total reached the target.
func (g *Game) Play(cardIndex int, chosenColor uno.Color) (PlayOutcome, error) {
	if g.hand == nil {
		return PlayOutcome{}, fmt.Errorf("play: %w", ErrMatchOver)
	}
	out, err := g.hand.Play(cardIndex, chosenColor)
	if err != nil || !out.HandEnded {
		return out, err
	}

	g.handsPlayed++
	g.scores[out.Winner] += out.Score
	g.logger.Info("hand won",
		"winner", g.players[out.Winner],
		"points", out.Score,
		"total", g.scores[out.Winner])

	if g.scores[out.Winner] >= g.targetScore {
		g.hand = nil
		g.logger.Info("match won", "winner", g.players[out.Winner], "score", g.scores[out.Winner])
		return out, nil
	}
	if err := g.startHand(); err != nil {
		return out, err
	}
	return out, nil
}

// SayUno forwards to the current hand.
func (g *Game) SayUno(player int) error {
	if g.hand == nil {
		return fmt.Errorf("say uno: %w", ErrMatchOver)
	}
	return g.hand.SayUno(player)
}

// CatchUnoFailure forwards to the current hand.
func (g *Game) CatchUnoFailure(a Accusation) (bool, error) {
	if g.hand == nil {
		return false, fmt.Errorf("catch uno failure: %w", ErrMatchOver)
	}
	return g.hand.CatchUnoFailure(a)
}

// ID returns the unique identifier assigned to this match.
func (g *Game) ID() string {
	return g.id
}

// CurrentHand returns the hand in progress, or nil once the match is over.
func (g *Game) CurrentHand() *Hand {
	return g.hand
}

// Players returns the player names in seat order.
func (g *Game) Players() []string {
	return slices.Clone(g.players)
}

// Scores returns a copy of the per-player running totals.
func (g *Game) Scores() []int {
	return slices.Clone(g.scores)
}

// Score returns the running total for the player at index.
func (g *Game) Score(index int) (int, error) {
	if index < 0 || index >= len(g.players) {
		return 0, fmt.Errorf("score %d: %w", index, ErrPlayerOutOfRange)
	}
	return g.scores[index], nil
}

// TargetScore returns the score a player must reach to win the match.
func (g *Game) TargetScore() int {
	return g.targetScore
}

// HandsPlayed returns the number of completed hands.
func (g *Game) HandsPlayed() int {
	return g.handsPlayed
}

// Finished reports whether the match has been decided.
func (g *Game) Finished() bool {
	return g.hand == nil
}

// Winner returns the first player (in seat order) whose score meets or
// exceeds the target.
func (g *Game) Winner() (int, bool) {
	for i, s := range g.scores {
		if s >= g.targetScore {
			return i, true
		}
	}
	return 0, false
}

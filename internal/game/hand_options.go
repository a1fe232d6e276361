package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/unomatch/uno"
)

// DefaultCardsPerPlayer is the number of cards dealt to each player when no
// override is given.
const DefaultCardsPerPlayer = 7

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

type handConfig struct {
	cardsPerPlayer int
	deck           *uno.Deck
	logger         *log.Logger
}

// NewHand creates a hand: it builds a fresh standard deck, shuffles it with
// the supplied shuffler, deals every player their cards in seat order, and
// runs setup so the first discard is in place and its effect has been
// applied. Play starts at dealer+1 unless the setup card changed that.
//
// The shuffler makes randomness explicit; fix its seed for deterministic
// tests. A nil shuffler leaves deck order unchanged, which is only sensible
// together with WithDeck.
//
//	h, err := game.NewHand(randutil.Shuffler(42), []string{"Ada", "Grace"}, 0)
func NewHand(shuffler uno.Shuffler, players []string, dealer int, opts ...HandOption) (*Hand, error) {
	if len(players) < 2 || len(players) > 10 {
		return nil, fmt.Errorf("new hand: %d players, need 2 to 10: %w", len(players), ErrInvalidConfig)
	}
	if dealer < 0 || dealer >= len(players) {
		return nil, fmt.Errorf("new hand: dealer %d out of range: %w", dealer, ErrInvalidConfig)
	}

	cfg := &handConfig{
		cardsPerPlayer: DefaultCardsPerPlayer,
		logger:         log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cardsPerPlayer < 1 {
		return nil, fmt.Errorf("new hand: %d cards per player: %w", cfg.cardsPerPlayer, ErrInvalidConfig)
	}

	drawPile := cfg.deck
	if drawPile == nil {
		drawPile = uno.NewDeck()
		drawPile.Shuffle(shuffler)
	}

	h := &Hand{
		players:   slices.Clone(players),
		hands:     make([][]uno.Card, len(players)),
		drawPile:  drawPile,
		discard:   uno.NewEmptyDeck(),
		shuffler:  shuffler,
		logger:    cfg.logger,
		direction: 1,
		unoSaid:   make([]bool, len(players)),
	}

	for p := range players {
		h.hands[p] = make([]uno.Card, 0, cfg.cardsPerPlayer)
		for i := 0; i < cfg.cardsPerPlayer; i++ {
			card, ok := h.drawPile.Deal()
			if !ok {
				return nil, fmt.Errorf("new hand: deck exhausted during deal: %w", ErrInvalidConfig)
			}
			h.hands[p] = append(h.hands[p], card)
		}
	}

	if err := h.setup(dealer); err != nil {
		return nil, err
	}
	return h, nil
}

// setup establishes the first discard card. Wilds are bounced to the bottom
// of the draw pile with a reshuffle so the starting discard is never wild,
// then the setup card's effect is applied without counting as a play.
func (h *Hand) setup(dealer int) error {
	if len(h.drawPile.Filter(func(c uno.Card) bool { return !c.IsWild() })) == 0 {
		return fmt.Errorf("new hand: no non-wild card available for setup: %w", ErrInvalidConfig)
	}
	var card uno.Card
	for {
		c, ok := h.drawPile.Deal()
		if !ok {
			return fmt.Errorf("new hand: deck exhausted during setup: %w", ErrInvalidConfig)
		}
		if c.IsWild() {
			h.drawPile.AddToBottom(c)
			h.drawPile.Shuffle(h.shuffler)
			continue
		}
		card = c
		break
	}
	h.discard.AddToTop(card)

	n := len(h.players)
	h.current = (dealer + 1) % n

	switch card.Type {
	case uno.Reverse:
		h.direction = -1
		h.current = (dealer - 1 + n) % n
	case uno.Skip:
		h.advance()
	case uno.Draw:
		// The starting player draws two and forfeits their turn.
		h.drawCards(h.current, 2)
		h.advance()
	}
	h.logger.Debug("hand set up",
		"players", n,
		"dealer", h.players[dealer],
		"firstDiscard", card,
		"startingPlayer", h.players[h.current])
	return nil
}

// WithCardsPerPlayer overrides the number of cards dealt to each player.
func WithCardsPerPlayer(n int) HandOption {
	return func(c *handConfig) {
		c.cardsPerPlayer = n
	}
}

// WithDeck deals from a specific pre-arranged deck instead of building and
// shuffling a standard one. The shuffler is still used for reshuffles and
// for bouncing wild setup cards.
func WithDeck(deck *uno.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithLogger attaches a logger to the hand. The default discards.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

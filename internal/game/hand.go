package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/unomatch/uno"
)

// PlayOutcome is the synchronous result of a successful Play call. When the
// play emptied the current player's hand, HandEnded is true, Winner holds
// that player's index, and Score holds the points the winner collects from
// the losers' remaining cards. Callers (the Game wrapper in particular)
// read the outcome inline; there is no callback registration.
type PlayOutcome struct {
	HandEnded bool
	Winner    int
	Score     int
}

// Hand is the state machine for a single round of play: deal, setup card,
// then caller-driven Draw/Play/SayUno/CatchUnoFailure commands until one
// player empties their hand. A Hand is single-writer and entirely
// in-memory; callers serialize access themselves.
type Hand struct {
	players  []string
	hands    [][]uno.Card
	drawPile *uno.Deck
	discard  *uno.Deck
	shuffler uno.Shuffler
	logger   *log.Logger

	current    int
	direction  int
	unoSaid    []bool
	ended      bool
	winner     int
	reshuffles int
}

// Draw deals one card from the draw pile to the player in turn. If that
// player still cannot legally play anything, the turn advances; otherwise
// they keep the turn and may follow up with Play. Drawing never ends the
// hand and never triggers an UNO check.
func (h *Hand) Draw() error {
	if h.ended {
		return fmt.Errorf("draw: %w", ErrHandEnded)
	}
	h.drawCards(h.current, 1)
	if !h.hasPlayableCard(h.current) {
		h.advance()
	}
	return nil
}

// Play discards the card at cardIndex from the current player's hand.
// chosenColor must be a real color when the card is wild and NoColor
// otherwise. On success the card's effect is applied (including turn
// advancement) and the returned outcome reports whether the play ended the
// hand.
func (h *Hand) Play(cardIndex int, chosenColor uno.Color) (PlayOutcome, error) {
	if h.ended {
		return PlayOutcome{}, fmt.Errorf("play: %w", ErrHandEnded)
	}
	hand := h.hands[h.current]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return PlayOutcome{}, fmt.Errorf("play: no card at index %d: %w", cardIndex, ErrIllegalPlay)
	}
	card := hand[cardIndex]

	if !h.isValidPlay(card, hand) {
		top, _ := h.discard.Top()
		return PlayOutcome{}, fmt.Errorf("play: %v on %v: %w", card, top, ErrIllegalPlay)
	}
	if card.IsWild() && chosenColor == uno.NoColor {
		return PlayOutcome{}, fmt.Errorf("play: %v: %w", card, ErrMissingColor)
	}
	if card.Color != uno.NoColor && chosenColor != uno.NoColor {
		return PlayOutcome{}, fmt.Errorf("play: %v with color %v: %w", card, chosenColor, ErrExtraneousColor)
	}

	player := h.current
	h.hands[player] = slices.Delete(h.hands[player], cardIndex, cardIndex+1)
	if card.IsWild() {
		card.Color = chosenColor
	}
	h.discard.AddToTop(card)
	h.logger.Debug("card played", "player", h.players[player], "card", card, "remaining", len(h.hands[player]))

	// Playing away from exactly one card closes the window for a
	// retroactive UNO declaration.
	if len(h.hands[player]) != 1 {
		h.unoSaid[player] = false
	}

	if len(h.hands[player]) == 0 {
		// The winning card's forced draw is still applied to the next
		// player even though the hand is over.
		switch card.Type {
		case uno.Draw:
			h.drawCards(h.next(player), 2)
		case uno.WildDraw:
			h.drawCards(h.next(player), 4)
		}
		h.ended = true
		h.winner = player
		score := h.Score()
		h.logger.Debug("hand ended", "winner", h.players[player], "score", score)
		return PlayOutcome{HandEnded: true, Winner: player, Score: score}, nil
	}

	h.applyEffect(card)
	return PlayOutcome{}, nil
}

// SayUno records player's UNO declaration. The declaration only sticks if
// the player holds exactly one card, or holds exactly two on their own turn
// (an anticipatory call before playing down to one); otherwise the call is
// a silent no-op.
func (h *Hand) SayUno(player int) error {
	if h.ended {
		return fmt.Errorf("say uno: %w", ErrHandEnded)
	}
	if player < 0 || player >= len(h.players) {
		return fmt.Errorf("say uno: player %d: %w", player, ErrPlayerOutOfRange)
	}
	n := len(h.hands[player])
	if n == 1 || (player == h.current && n == 2) {
		h.unoSaid[player] = true
		h.logger.Debug("uno declared", "player", h.players[player])
	}
	return nil
}

// Accusation names a player who allegedly failed to declare UNO.
type Accusation struct {
	Accuser int
	Accused int
}

// CatchUnoFailure penalizes the accused with four cards if they hold
// exactly one card, never declared UNO, and the accusation arrives before
// a second player has acted past them (the current turn holder must be the
// player immediately after the accused). It reports whether the penalty
// was applied. The accuser is not validated.
func (h *Hand) CatchUnoFailure(a Accusation) (bool, error) {
	if h.ended {
		return false, fmt.Errorf("catch uno failure: %w", ErrHandEnded)
	}
	if a.Accused < 0 || a.Accused >= len(h.players) {
		return false, fmt.Errorf("catch uno failure: accused %d: %w", a.Accused, ErrPlayerOutOfRange)
	}
	if h.current != h.next(a.Accused) {
		return false, nil
	}
	if len(h.hands[a.Accused]) != 1 || h.unoSaid[a.Accused] {
		return false, nil
	}
	h.drawCards(a.Accused, 4)
	h.unoSaid[a.Accused] = true
	h.logger.Debug("uno failure caught", "accused", h.players[a.Accused], "accuser", a.Accuser)
	return true, nil
}

// PlayerInTurn returns the index of the player who may act, or -1 once the
// hand has ended.
func (h *Hand) PlayerInTurn() int {
	if h.ended {
		return -1
	}
	return h.current
}

// Players returns the player names in seat order.
func (h *Hand) Players() []string {
	return slices.Clone(h.players)
}

// Player returns the name of the player at index.
func (h *Hand) Player(index int) (string, error) {
	if index < 0 || index >= len(h.players) {
		return "", fmt.Errorf("player %d: %w", index, ErrPlayerOutOfRange)
	}
	return h.players[index], nil
}

// PlayerHand returns a copy of the cards held by the player at index.
func (h *Hand) PlayerHand(index int) ([]uno.Card, error) {
	if index < 0 || index >= len(h.players) {
		return nil, fmt.Errorf("player hand %d: %w", index, ErrPlayerOutOfRange)
	}
	return slices.Clone(h.hands[index]), nil
}

// LastPlayedCard returns the top of the discard pile. ok is false only
// before the setup card has been placed.
func (h *Hand) LastPlayedCard() (uno.Card, bool) {
	return h.discard.Top()
}

// DrawPile returns the hand's draw pile.
func (h *Hand) DrawPile() *uno.Deck {
	return h.drawPile
}

// DiscardPile returns the hand's discard pile.
func (h *Hand) DiscardPile() *uno.Deck {
	return h.discard
}

// Direction returns +1 for ascending seat order, -1 for descending.
func (h *Hand) Direction() int {
	return h.direction
}

// HasEnded reports whether the hand has reached its terminal state. Once
// true it stays true for the lifetime of the hand.
func (h *Hand) HasEnded() bool {
	return h.ended
}

// Winner returns the winning player's index once the hand has ended.
func (h *Hand) Winner() (int, bool) {
	if !h.ended {
		return 0, false
	}
	return h.winner, true
}

// Score sums the remaining cards of every non-winning player: face value
// for numbered cards, 20 for skip/reverse/draw-two, 50 for wilds. It
// returns 0 while the hand is still in progress.
func (h *Hand) Score() int {
	if !h.ended {
		return 0
	}
	score := 0
	for i, hand := range h.hands {
		if i == h.winner {
			continue
		}
		for _, c := range hand {
			score += c.Score()
		}
	}
	return score
}

// Reshuffles returns how many times the discard pile has been recycled
// into the draw pile.
func (h *Hand) Reshuffles() int {
	return h.reshuffles
}

// CardsInPlay returns the total card count across both piles and all
// player hands. It is DeckSize for any hand dealt from a standard deck.
func (h *Hand) CardsInPlay() int {
	total := h.drawPile.Size() + h.discard.Size()
	for _, hand := range h.hands {
		total += len(hand)
	}
	return total
}

// isValidPlay implements the legality relation against the discard top.
// Wild-draw-four legality is a last-resort house rule: it depends on the
// player's other held cards, not just the played card.
func (h *Hand) isValidPlay(card uno.Card, hand []uno.Card) bool {
	top, ok := h.discard.Top()
	if !ok {
		return true
	}
	if card.Type == uno.WildDraw {
		for _, held := range hand {
			if held.Color != uno.NoColor && held.Color == top.Color {
				return false
			}
		}
		return true
	}
	return card.CanPlayOn(top)
}

func (h *Hand) hasPlayableCard(player int) bool {
	for _, c := range h.hands[player] {
		if h.isValidPlay(c, h.hands[player]) {
			return true
		}
	}
	return false
}

// applyEffect resolves a played card that did not end the hand. Draw and
// WildDraw advance the turn twice themselves (the penalized player is
// skipped entirely), so they suppress the generic post-effect advance.
func (h *Hand) applyEffect(card uno.Card) {
	switch card.Type {
	case uno.Skip:
		h.advance()
	case uno.Reverse:
		h.direction = -h.direction
		if len(h.players) == 2 {
			// Reverse degenerates to a skip with two players.
			h.advance()
		}
	case uno.Draw:
		h.advance()
		h.drawCards(h.current, 2)
		h.advance()
	case uno.WildDraw:
		h.advance()
		h.drawCards(h.current, 4)
		h.advance()
	case uno.Wild, uno.Numbered:
		// Wild color was recorded before discarding; numbered cards have
		// no effect.
	}
	if card.Type != uno.Draw && card.Type != uno.WildDraw {
		h.advance()
	}
}

// drawCards deals count cards to player, recycling the discard pile
// whenever the draw pile runs dry.
func (h *Hand) drawCards(player, count int) {
	for i := 0; i < count; i++ {
		if h.drawPile.Size() == 0 {
			h.reshuffleDiscard()
		}
		card, ok := h.drawPile.Deal()
		if !ok {
			// Every card outside the discard top is held in hands;
			// nothing left to deal.
			h.logger.Warn("draw pile exhausted with nothing to recycle", "player", h.players[player])
			return
		}
		h.hands[player] = append(h.hands[player], card)
		if h.drawPile.Size() == 0 {
			h.reshuffleDiscard()
		}
	}
}

// reshuffleDiscard holds back the active discard top, moves the rest of
// the discard pile into the draw pile in order, shuffles it, and rebuilds
// the discard pile containing only the held top card.
func (h *Hand) reshuffleDiscard() {
	if h.discard.Size() <= 1 {
		return
	}
	top, _ := h.discard.Deal()
	for {
		c, ok := h.discard.Deal()
		if !ok {
			break
		}
		h.drawPile.AddToBottom(c)
	}
	h.drawPile.Shuffle(h.shuffler)
	h.discard.AddToTop(top)
	h.reshuffles++
	h.logger.Debug("discard pile reshuffled into draw pile", "drawPile", h.drawPile.Size())
}

func (h *Hand) next(from int) int {
	n := len(h.players)
	return ((from+h.direction)%n + n) % n
}

func (h *Hand) advance() {
	h.current = h.next(h.current)
}

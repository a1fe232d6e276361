package uno

import (
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 108

// Shuffler permutes a card sequence in place. Injecting the strategy keeps
// shuffling deterministic under test; a nil Shuffler leaves the order
// unchanged.
type Shuffler func([]Card)

// RandomShuffler returns a Fisher-Yates Shuffler driven by rng.
func RandomShuffler(rng *rand.Rand) Shuffler {
	return func(cards []Card) {
		for i := len(cards) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			cards[i], cards[j] = cards[j], cards[i]
		}
	}
}

// Deck is an ordered, mutable pile of cards. The front of the sequence is
// the top (dealt first); the back is the bottom.
type Deck struct {
	cards []Card
}

// NewDeck returns the standard 108-card deck in canonical generation order:
// per color one 0, 1-9 twice, two skips, two reverses, two draw-twos, then
// four wilds and four wild-draw-fours. Callers shuffle it themselves.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		for n := 0; n <= 9; n++ {
			cards = append(cards, NewNumbered(color, n))
		}
		for n := 1; n <= 9; n++ {
			cards = append(cards, NewNumbered(color, n))
		}
		cards = append(cards,
			NewSkip(color), NewSkip(color),
			NewReverse(color), NewReverse(color),
			NewDraw(color), NewDraw(color),
		)
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewWild())
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewWildDraw())
	}
	return &Deck{cards: cards}
}

// NewEmptyDeck returns a deck with no cards, used for discard piles.
func NewEmptyDeck() *Deck {
	return &Deck{}
}

// NewStackedDeck returns a deck containing exactly the given cards, top
// first. Intended for rigging deals in tests.
func NewStackedDeck(cards ...Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// Deal removes and returns the top card. It fails softly: ok is false on an
// empty deck and no card is returned.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// AddToBottom appends a card to the bottom of the deck.
func (d *Deck) AddToBottom(c Card) {
	d.cards = append(d.cards, c)
}

// AddToTop pushes a card onto the top of the deck unconditionally. Unlike
// SetTopCard it never deduplicates, so a discard pile can hold both copies
// of a card.
func (d *Deck) AddToTop(c Card) {
	d.cards = slices.Insert(d.cards, 0, c)
}

// SetTopCard places c on top of the deck. If an equal card is already
// present, it is moved rather than duplicated, so forcing a known top card
// never changes the deck's composition.
func (d *Deck) SetTopCard(c Card) {
	if i := slices.Index(d.cards, c); i >= 0 {
		d.cards = slices.Delete(d.cards, i, i+1)
	}
	d.cards = slices.Insert(d.cards, 0, c)
}

// Top peeks at the top card without removing it.
func (d *Deck) Top() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Shuffle permutes the deck in place using the supplied strategy.
func (d *Deck) Shuffle(shuffle Shuffler) {
	if shuffle == nil {
		return
	}
	shuffle(d.cards)
}

// Filter returns the cards matching keep, in deck order, without mutating
// the deck.
func (d *Deck) Filter(keep func(Card) bool) []Card {
	var out []Card
	for _, c := range d.cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Cards returns a copy of the deck's contents, top first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

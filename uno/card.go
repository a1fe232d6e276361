package uno

import (
	"fmt"
	"strings"
)

// Color is a card color. Wild cards carry NoColor until a color is chosen
// for them at play time.
type Color uint8

const (
	NoColor Color = iota
	Red
	Yellow
	Green
	Blue
)

// Colors lists the four playable colors in canonical deck order.
var Colors = [4]Color{Red, Yellow, Green, Blue}

// String returns the single-letter representation used in card notation.
func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return ""
	}
}

// Name returns the human-readable color name.
func (c Color) Name() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "None"
	}
}

// CardType is the closed set of card kinds. Effect resolution switches
// exhaustively over these.
type CardType uint8

const (
	Numbered CardType = iota
	Skip
	Reverse
	Draw
	Wild
	WildDraw
)

// String returns the lowercase type letter(s) used in card notation.
func (t CardType) String() string {
	switch t {
	case Numbered:
		return ""
	case Skip:
		return "s"
	case Reverse:
		return "r"
	case Draw:
		return "d"
	case Wild:
		return "w"
	case WildDraw:
		return "wd"
	default:
		return "?"
	}
}

// Card is a value-typed UNO card. Number is meaningful only for Numbered
// cards. Wild and WildDraw cards have NoColor until played, at which point
// the chosen color is written onto the card instance on the discard pile.
type Card struct {
	Type   CardType
	Color  Color
	Number int
}

// NewNumbered returns a numbered card. Panics outside 0-9, matching the
// closed composition of the deck.
func NewNumbered(color Color, number int) Card {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("uno: numbered card out of range: %d", number))
	}
	return Card{Type: Numbered, Color: color, Number: number}
}

// NewSkip returns a skip card of the given color.
func NewSkip(color Color) Card {
	return Card{Type: Skip, Color: color}
}

// NewReverse returns a reverse card of the given color.
func NewReverse(color Color) Card {
	return Card{Type: Reverse, Color: color}
}

// NewDraw returns a draw-two card of the given color.
func NewDraw(color Color) Card {
	return Card{Type: Draw, Color: color}
}

// NewWild returns an uncolored wild card.
func NewWild() Card {
	return Card{Type: Wild}
}

// NewWildDraw returns an uncolored wild-draw-four card.
func NewWildDraw() Card {
	return Card{Type: WildDraw}
}

// IsWild reports whether the card is a Wild or WildDraw.
func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDraw
}

// Score returns the card's point value when left in a losing hand:
// face value for numbered cards, 20 for Skip/Reverse/Draw, 50 for wilds.
func (c Card) Score() int {
	switch c.Type {
	case Wild, WildDraw:
		return 50
	case Skip, Reverse, Draw:
		return 20
	default:
		return c.Number
	}
}

// CanPlayOn reports whether the card matches top under the pairwise
// legality relation. Wild and WildDraw always match here; the
// wild-draw-four last-resort restriction depends on the rest of the
// player's hand and is enforced by the game engine.
func (c Card) CanPlayOn(top Card) bool {
	switch {
	case c.Type == Wild || c.Type == WildDraw:
		return true
	case c.Type == Numbered && top.Type == Numbered:
		// Both numbered: same number or same color only. A mismatch of
		// both is illegal even though the types match.
		return c.Number == top.Number || c.Color == top.Color
	default:
		return c.Color == top.Color || c.Type == top.Type
	}
}

// String returns compact card notation: "R5", "Gs" (skip), "Yr" (reverse),
// "Bd" (draw two), "w" / "wd" for uncolored wilds, and "wR" / "wdR" once a
// color has been chosen.
func (c Card) String() string {
	switch c.Type {
	case Numbered:
		return fmt.Sprintf("%s%d", c.Color, c.Number)
	case Wild, WildDraw:
		return c.Type.String() + c.Color.String()
	default:
		return c.Color.String() + c.Type.String()
	}
}

// ParseCard parses the compact notation emitted by Card.String.
func ParseCard(s string) (Card, error) {
	if s == "" {
		return Card{}, fmt.Errorf("uno: empty card string")
	}

	// Wilds first: "w", "wd", optionally followed by a color letter.
	if strings.HasPrefix(s, "w") {
		rest := s[1:]
		typ := Wild
		if strings.HasPrefix(rest, "d") {
			typ = WildDraw
			rest = rest[1:]
		}
		color := NoColor
		if rest != "" {
			var err error
			if color, err = parseColor(rest); err != nil {
				return Card{}, fmt.Errorf("uno: bad wild card %q: %w", s, err)
			}
		}
		return Card{Type: typ, Color: color}, nil
	}

	color, err := parseColor(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("uno: bad card %q: %w", s, err)
	}
	rest := s[1:]
	switch rest {
	case "s":
		return NewSkip(color), nil
	case "r":
		return NewReverse(color), nil
	case "d":
		return NewDraw(color), nil
	}
	if len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
		return NewNumbered(color, int(rest[0]-'0')), nil
	}
	return Card{}, fmt.Errorf("uno: bad card %q", s)
}

func parseColor(s string) (Color, error) {
	switch s {
	case "R":
		return Red, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	default:
		return NoColor, fmt.Errorf("unknown color %q", s)
	}
}

// Package display renders cards, hands and scoreboards for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/uno"
)

// Static styles for content elements
var (
	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	yellowCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	greenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	blueCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true)

	wildCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2D3436")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	turnMarkerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// ForceProfile pins the color profile, mainly so tests get stable output.
func ForceProfile(p termenv.Profile) {
	lipgloss.SetColorProfile(p)
}

// Card renders a single card with its color, e.g. "[R5]" in red.
func Card(c uno.Card) string {
	label := fmt.Sprintf("[%s]", cardLabel(c))
	return cardStyle(c).Render(label)
}

func cardLabel(c uno.Card) string {
	switch c.Type {
	case uno.Numbered:
		return fmt.Sprintf("%s%d", c.Color, c.Number)
	case uno.Skip:
		return fmt.Sprintf("%s SKIP", c.Color)
	case uno.Reverse:
		return fmt.Sprintf("%s REV", c.Color)
	case uno.Draw:
		return fmt.Sprintf("%s +2", c.Color)
	case uno.Wild:
		if c.Color != uno.NoColor {
			return fmt.Sprintf("WILD→%s", c.Color)
		}
		return "WILD"
	case uno.WildDraw:
		if c.Color != uno.NoColor {
			return fmt.Sprintf("WILD+4→%s", c.Color)
		}
		return "WILD+4"
	}
	return "?"
}

func cardStyle(c uno.Card) lipgloss.Style {
	if c.IsWild() && c.Color == uno.NoColor {
		return wildCardStyle
	}
	switch c.Color {
	case uno.Red:
		return redCardStyle
	case uno.Yellow:
		return yellowCardStyle
	case uno.Green:
		return greenCardStyle
	case uno.Blue:
		return blueCardStyle
	}
	return wildCardStyle
}

// Cards renders a slice of cards separated by spaces.
func Cards(cards []uno.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// IndexedHand renders a hand with 1-based indices for command entry, e.g.
// "1:[R5] 2:[WILD]".
func IndexedHand(cards []uno.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%d:%s", i+1, Card(c))
	}
	return strings.Join(parts, " ")
}

// HandState renders the shared table view of a hand: discard top, pile
// sizes, direction and per-player card counts with a turn marker.
func HandState(h *game.Hand) string {
	var b strings.Builder

	if top, ok := h.LastPlayedCard(); ok {
		fmt.Fprintf(&b, "Discard: %s  ", Card(top))
	}
	fmt.Fprintf(&b, "Draw pile: %d", h.DrawPile().Size())
	if h.Direction() < 0 {
		b.WriteString("  (reversed)")
	}
	b.WriteString("\n")

	players := h.Players()
	for i, name := range players {
		cards, err := h.PlayerHand(i)
		if err != nil {
			continue
		}
		marker := "  "
		if i == h.PlayerInTurn() {
			marker = turnMarkerStyle.Render("->") + " "
		}
		fmt.Fprintf(&b, "%s%s: %d cards", marker, name, len(cards))
		if len(cards) == 1 {
			b.WriteString("  " + infoStyle.Render("(one card!)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Scoreboard renders the running match totals.
func Scoreboard(g *game.Game) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Scores (first to %d)", g.TargetScore())))
	b.WriteString("\n")
	for i, name := range g.Players() {
		score, err := g.Score(i)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  %-12s %5d\n", name, score)
	}
	return b.String()
}

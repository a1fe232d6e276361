// Package tui implements the interactive hot-seat match interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/unomatch/internal/display"
	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/uno"
)

// Model is the Bubble Tea model driving a hot-seat match: every player
// shares the terminal and types commands on their turn.
type Model struct {
	game   *game.Game
	logger *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	gameLog  []string
	quitting bool
	width    int
	height   int
}

// New creates a model for the given match.
func New(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "play <n> [color] | draw | uno | catch <seat> | hand | scores | help"
	ti.Focus()
	ti.CharLimit = 60
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle

	m := &Model{
		game:        g,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
	}
	m.addLog(fmt.Sprintf("Match to %d points. Players: %s.",
		g.TargetScore(), strings.Join(g.Players(), ", ")))
	m.addLog("Type 'help' for commands.")
	return m
}

// Run starts the interactive program and blocks until it exits.
func Run(g *game.Game, logger *log.Logger) error {
	program := tea.NewProgram(New(g, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				if quit := m.handleCommand(line); quit {
					m.quitting = true
					return m, tea.Quit
				}
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) resize() {
	inputHeight := 3
	headerHeight := 8
	logHeight := m.height - inputHeight - headerHeight
	if logHeight < 3 {
		logHeight = 3
	}
	m.logViewport.Width = max(m.width-4, 10)
	m.logViewport.Height = logHeight
	m.input.Width = max(m.width-8, 20)
	m.refreshLog()
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var header strings.Builder
	header.WriteString(headerStyle.Render("unomatch"))
	header.WriteString("\n")
	if h := m.game.CurrentHand(); h != nil {
		header.WriteString(display.HandState(h))
		if p := h.PlayerInTurn(); p >= 0 {
			name, _ := h.Player(p)
			header.WriteString(successStyle.Render(fmt.Sprintf("%s to act", name)))
			header.WriteString("\n")
		}
	} else {
		header.WriteString(display.Scoreboard(m.game))
		if w, ok := m.game.Winner(); ok {
			header.WriteString(successStyle.Render(
				fmt.Sprintf("%s wins the match!", m.game.Players()[w])))
			header.WriteString("\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header.String(),
		logPaneStyle.Render(m.logViewport.View()),
		inputPaneStyle.Render(m.input.View()),
	)
}

func (m *Model) addLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.refreshLog()
}

func (m *Model) addError(err error) {
	m.addLog(errorStyle.Render(err.Error()))
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// handleCommand executes one typed command, reporting whether to quit.
func (m *Model) handleCommand(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "q", "exit":
		return true
	case "help", "?":
		m.showHelp()
	case "play", "p":
		m.handlePlay(args)
	case "draw", "d":
		m.handleDraw()
	case "uno", "u":
		m.handleUno()
	case "catch", "c":
		m.handleCatch(args)
	case "hand", "cards":
		m.handleShowHand()
	case "table", "t":
		m.handleShowTable()
	case "scores", "s":
		m.addLog(display.Scoreboard(m.game))
	default:
		m.addLog(infoStyle.Render(fmt.Sprintf("Unknown command: %s. Type 'help'.", cmd)))
	}
	return false
}

func (m *Model) showHelp() {
	m.addLog("Commands:")
	m.addLog("  play <n> [color] - play card n from your hand; color required for wilds")
	m.addLog("  draw             - draw a card from the pile")
	m.addLog("  uno              - declare UNO for yourself")
	m.addLog("  catch <seat>     - accuse seat (1-based) of failing to declare UNO")
	m.addLog("  hand             - show your cards")
	m.addLog("  table            - show the table state")
	m.addLog("  scores           - show match scores")
	m.addLog("  quit             - leave the match")
}

func (m *Model) currentHand() *game.Hand {
	h := m.game.CurrentHand()
	if h == nil {
		m.addLog(infoStyle.Render("The match is over."))
	}
	return h
}

func (m *Model) handlePlay(args []string) {
	h := m.currentHand()
	if h == nil {
		return
	}
	if len(args) == 0 {
		m.addLog(infoStyle.Render("Usage: play <n> [red|yellow|green|blue]"))
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		m.addError(fmt.Errorf("invalid card number %q", args[0]))
		return
	}

	color := uno.NoColor
	if len(args) > 1 {
		color, err = parseColor(args[1])
		if err != nil {
			m.addError(err)
			return
		}
	}

	player := h.PlayerInTurn()
	name, _ := h.Player(player)
	cards, _ := h.PlayerHand(player)
	if idx < 1 || idx > len(cards) {
		m.addError(fmt.Errorf("you hold %d cards", len(cards)))
		return
	}
	card := cards[idx-1]

	out, err := m.game.Play(idx-1, color)
	if err != nil {
		m.addError(err)
		return
	}
	m.addLog(fmt.Sprintf("%s played %s", name, display.Card(card)))
	m.logger.Debug("card played", "player", name, "card", card)

	if out.HandEnded {
		m.addLog(successStyle.Render(
			fmt.Sprintf("%s wins the hand for %d points!", name, out.Score)))
		if m.game.Finished() {
			m.addLog(successStyle.Render("The match is decided."))
		} else {
			m.addLog("A new hand has been dealt.")
		}
	}
}

func (m *Model) handleDraw() {
	h := m.currentHand()
	if h == nil {
		return
	}
	player := h.PlayerInTurn()
	name, _ := h.Player(player)
	if err := m.game.Draw(); err != nil {
		m.addError(err)
		return
	}
	m.addLog(fmt.Sprintf("%s drew a card", name))
	if h.PlayerInTurn() == player {
		m.addLog(infoStyle.Render("The drawn card is playable; it is still your turn."))
	}
}

func (m *Model) handleUno() {
	h := m.currentHand()
	if h == nil {
		return
	}
	player := h.PlayerInTurn()
	name, _ := h.Player(player)
	if err := m.game.SayUno(player); err != nil {
		m.addError(err)
		return
	}
	m.addLog(fmt.Sprintf("%s says UNO!", name))
}

func (m *Model) handleCatch(args []string) {
	h := m.currentHand()
	if h == nil {
		return
	}
	if len(args) == 0 {
		m.addLog(infoStyle.Render("Usage: catch <seat>"))
		return
	}
	seat, err := strconv.Atoi(args[0])
	if err != nil {
		m.addError(fmt.Errorf("invalid seat %q", args[0]))
		return
	}
	accused := seat - 1
	accuser := h.PlayerInTurn()

	caught, err := m.game.CatchUnoFailure(game.Accusation{Accuser: accuser, Accused: accused})
	if err != nil {
		m.addError(err)
		return
	}
	name, _ := h.Player(accused)
	if caught {
		m.addLog(successStyle.Render(
			fmt.Sprintf("%s failed to declare UNO and draws four!", name)))
	} else {
		m.addLog(infoStyle.Render(fmt.Sprintf("Nothing to catch on %s.", name)))
	}
}

func (m *Model) handleShowHand() {
	h := m.currentHand()
	if h == nil {
		return
	}
	player := h.PlayerInTurn()
	name, _ := h.Player(player)
	cards, err := h.PlayerHand(player)
	if err != nil {
		m.addError(err)
		return
	}
	m.addLog(fmt.Sprintf("%s's hand: %s", name, display.IndexedHand(cards)))
}

func (m *Model) handleShowTable() {
	h := m.currentHand()
	if h == nil {
		return
	}
	m.addLog(display.HandState(h))
}

func parseColor(s string) (uno.Color, error) {
	switch s {
	case "red", "r":
		return uno.Red, nil
	case "yellow", "y":
		return uno.Yellow, nil
	case "green", "g":
		return uno.Green, nil
	case "blue", "b":
		return uno.Blue, nil
	}
	return uno.NoColor, fmt.Errorf("unknown color %q", s)
}

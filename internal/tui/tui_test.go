package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/unomatch/internal/game"
	"github.com/lox/unomatch/internal/randutil"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	g, err := game.NewGame([]string{"Ada", "Grace"}, game.GameConfig{
		TargetScore: 500,
		Shuffler:    randutil.Shuffler(11),
		Randomizer:  func(int) int { return 0 },
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(g, log.New(io.Discard))
}

func lastLog(m *Model) string {
	return m.gameLog[len(m.gameLog)-1]
}

func TestViewBeforeSizing(t *testing.T) {
	m := testModel(t)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before WindowSizeMsg = %q", got)
	}
}

func TestHelpCommand(t *testing.T) {
	m := testModel(t)
	before := len(m.gameLog)
	if quit := m.handleCommand("help"); quit {
		t.Fatal("help requested quit")
	}
	if len(m.gameLog) <= before {
		t.Error("help added no log entries")
	}
}

func TestQuitCommand(t *testing.T) {
	m := testModel(t)
	for _, cmd := range []string{"quit", "q", "exit"} {
		if !m.handleCommand(cmd) {
			t.Errorf("%q did not request quit", cmd)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	m := testModel(t)
	m.handleCommand("shuffle")
	if !strings.Contains(lastLog(m), "Unknown command") {
		t.Errorf("last log = %q", lastLog(m))
	}
}

func TestPlayCommandValidation(t *testing.T) {
	m := testModel(t)

	m.handleCommand("play")
	if !strings.Contains(lastLog(m), "Usage") {
		t.Errorf("missing usage message, got %q", lastLog(m))
	}

	m.handleCommand("play x")
	if !strings.Contains(lastLog(m), "invalid card number") {
		t.Errorf("missing parse error, got %q", lastLog(m))
	}

	m.handleCommand("play 99")
	if !strings.Contains(lastLog(m), "you hold") {
		t.Errorf("missing range error, got %q", lastLog(m))
	}

	m.handleCommand("play 1 purple")
	if !strings.Contains(lastLog(m), "unknown color") {
		t.Errorf("missing color error, got %q", lastLog(m))
	}
}

func TestDrawCommand(t *testing.T) {
	m := testModel(t)
	m.handleCommand("draw")

	found := false
	for _, line := range m.gameLog {
		if strings.Contains(line, "drew a card") {
			found = true
		}
	}
	if !found {
		t.Errorf("draw produced no log entry: %v", m.gameLog)
	}
}

func TestHandCommandShowsCards(t *testing.T) {
	m := testModel(t)
	m.handleCommand("hand")
	if !strings.Contains(lastLog(m), "hand:") {
		t.Errorf("last log = %q", lastLog(m))
	}
}

func TestCatchCommandValidation(t *testing.T) {
	m := testModel(t)

	m.handleCommand("catch")
	if !strings.Contains(lastLog(m), "Usage") {
		t.Errorf("missing usage message, got %q", lastLog(m))
	}

	m.handleCommand("catch 2")
	if !strings.Contains(lastLog(m), "Nothing to catch") {
		t.Errorf("fresh hand should have nothing to catch, got %q", lastLog(m))
	}
}

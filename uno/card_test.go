package uno

import "testing"

func TestCardCreation(t *testing.T) {
	t.Parallel()
	red5 := NewNumbered(Red, 5)
	if red5.Type != Numbered {
		t.Errorf("Expected type Numbered, got %d", red5.Type)
	}
	if red5.Color != Red {
		t.Errorf("Expected color Red, got %v", red5.Color)
	}
	if red5.Number != 5 {
		t.Errorf("Expected number 5, got %d", red5.Number)
	}
	if red5.String() != "R5" {
		t.Errorf("Expected 'R5', got %s", red5.String())
	}

	wild := NewWild()
	if wild.Color != NoColor {
		t.Errorf("Fresh wild should have no color, got %v", wild.Color)
	}
	if !wild.IsWild() {
		t.Error("Wild should report IsWild")
	}
	if NewSkip(Green).IsWild() {
		t.Error("Skip should not report IsWild")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "red five", input: "R5", wantCard: NewNumbered(Red, 5)},
		{name: "green zero", input: "G0", wantCard: NewNumbered(Green, 0)},
		{name: "blue skip", input: "Bs", wantCard: NewSkip(Blue)},
		{name: "yellow reverse", input: "Yr", wantCard: NewReverse(Yellow)},
		{name: "red draw two", input: "Rd", wantCard: NewDraw(Red)},
		{name: "wild", input: "w", wantCard: NewWild()},
		{name: "wild draw four", input: "wd", wantCard: NewWildDraw()},
		{name: "colored wild", input: "wG", wantCard: Card{Type: Wild, Color: Green}},
		{name: "colored wild draw", input: "wdB", wantCard: Card{Type: WildDraw, Color: Blue}},
		{name: "bad color", input: "X5", wantErr: true},
		{name: "bad rank", input: "Rx", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: "R55", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCard(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	for _, c := range deck.Cards() {
		parsed, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("round trip %v -> %q -> %v", c, c.String(), parsed)
		}
	}
}

func TestCardScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want int
	}{
		{NewNumbered(Red, 0), 0},
		{NewNumbered(Blue, 9), 9},
		{NewSkip(Green), 20},
		{NewReverse(Yellow), 20},
		{NewDraw(Red), 20},
		{NewWild(), 50},
		{NewWildDraw(), 50},
	}
	for _, tt := range tests {
		if got := tt.card.Score(); got != tt.want {
			t.Errorf("%v.Score() = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestCanPlayOn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		card Card
		top  Card
		want bool
	}{
		{"same color numbered", NewNumbered(Red, 3), NewNumbered(Red, 7), true},
		{"same number numbered", NewNumbered(Blue, 7), NewNumbered(Red, 7), true},
		{"numbered both mismatch", NewNumbered(Blue, 3), NewNumbered(Red, 7), false},
		{"skip on same color number", NewSkip(Red), NewNumbered(Red, 7), true},
		{"skip on skip other color", NewSkip(Blue), NewSkip(Red), true},
		{"reverse on draw other color", NewReverse(Blue), NewDraw(Red), false},
		{"draw on draw", NewDraw(Blue), NewDraw(Red), true},
		{"wild on anything", NewWild(), NewSkip(Green), true},
		{"wild draw on anything", NewWildDraw(), NewNumbered(Red, 1), true},
		{"color match on colored wild", NewNumbered(Green, 2), Card{Type: Wild, Color: Green}, true},
		{"color mismatch on colored wild", NewNumbered(Red, 2), Card{Type: Wild, Color: Green}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.CanPlayOn(tt.top); got != tt.want {
				t.Errorf("%v.CanPlayOn(%v) = %v, want %v", tt.card, tt.top, got, tt.want)
			}
		})
	}
}

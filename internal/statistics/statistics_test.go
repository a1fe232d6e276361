package statistics

import (
	"sync"
	"testing"
	"time"
)

func sample(winner, moves, hands int) GameResult {
	return GameResult{
		Winner:      winner,
		Moves:       moves,
		HandsPlayed: hands,
		Duration:    time.Millisecond,
	}
}

func TestAddAndAggregates(t *testing.T) {
	s := New(3)
	s.Add(sample(0, 100, 2))
	s.Add(sample(0, 200, 3))
	s.Add(sample(2, 300, 4))

	if s.Games != 3 {
		t.Errorf("Games = %d, want 3", s.Games)
	}
	if s.WinsBySeat[0] != 2 || s.WinsBySeat[1] != 0 || s.WinsBySeat[2] != 1 {
		t.Errorf("WinsBySeat = %v, want [2 0 1]", s.WinsBySeat)
	}
	if got := s.WinRate(0); got != 2.0/3.0 {
		t.Errorf("WinRate(0) = %f", got)
	}
	if got := s.MeanMoves(); got != 200 {
		t.Errorf("MeanMoves = %f, want 200", got)
	}
	if got := s.MeanHands(); got != 3 {
		t.Errorf("MeanHands = %f, want 3", got)
	}
	if got := s.MedianMoves(); got != 200 {
		t.Errorf("MedianMoves = %f, want 200", got)
	}
	if s.LongestMatch != 300 {
		t.Errorf("LongestMatch = %d, want 300", s.LongestMatch)
	}
	if s.Duration != 3*time.Millisecond {
		t.Errorf("Duration = %v, want 3ms", s.Duration)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStdDevMoves(t *testing.T) {
	s := New(2)
	s.Add(sample(0, 100, 1))
	s.Add(sample(1, 300, 1))

	// Sample std dev of {100, 300} is sqrt(2*100^2 / 1).
	want := 141.4213562
	if got := s.StdDevMoves(); got < want-0.001 || got > want+0.001 {
		t.Errorf("StdDevMoves = %f, want ~%f", got, want)
	}
}

func TestPercentileMoves(t *testing.T) {
	s := New(1)
	for _, m := range []int{10, 20, 30, 40} {
		s.Add(sample(0, m, 1))
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.0, 10},
		{0.5, 25},
		{1.0, 40},
	}
	for _, tt := range tests {
		if got := s.PercentileMoves(tt.p); got != tt.want {
			t.Errorf("PercentileMoves(%.1f) = %f, want %f", tt.p, got, tt.want)
		}
	}
}

func TestValidateCatchesImbalance(t *testing.T) {
	s := New(2)
	s.Add(GameResult{Winner: 5, Moves: 10, HandsPlayed: 1}) // out-of-range winner

	if err := s.Validate(); err == nil {
		t.Fatal("expected validation error for unattributed win")
	}
}

func TestConcurrentAdd(t *testing.T) {
	s := New(2)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Add(sample(n%2, 10+n, 1))
		}(i)
	}
	wg.Wait()

	if s.Games != 50 {
		t.Errorf("Games = %d, want 50", s.Games)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

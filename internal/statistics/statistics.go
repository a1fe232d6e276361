// Package statistics aggregates match outcomes across simulation runs.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

// GameResult represents the outcome of a single simulated match
type GameResult struct {
	Seed        int64         // RNG seed for this match (for replay)
	Winner      int           // Winning seat index
	Moves       int           // Total commands issued across the match
	HandsPlayed int           // Hands needed to decide the match
	Reshuffles  int           // Draw pile recycles across all hands
	UnoCatches  int           // Successful UNO failure accusations
	Duration    time.Duration // Wall clock time for the match
}

// Statistics tracks aggregate simulation statistics. It is safe for
// concurrent Add calls.
type Statistics struct {
	mu sync.Mutex

	Games        int
	WinsBySeat   []int
	TotalHands   int
	TotalMoves   int
	Reshuffles   int
	UnoCatches   int
	Duration     time.Duration
	LongestMatch int // Moves in the longest match observed

	moveCounts []float64 // Per-game move counts for median/percentiles
}

// New creates statistics for matches with the given number of seats.
func New(seats int) *Statistics {
	return &Statistics{WinsBySeat: make([]int, seats)}
}

// Add incorporates a finished match into the statistics
func (s *Statistics) Add(result GameResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Games++
	if result.Winner >= 0 && result.Winner < len(s.WinsBySeat) {
		s.WinsBySeat[result.Winner]++
	}
	s.TotalHands += result.HandsPlayed
	s.TotalMoves += result.Moves
	s.Reshuffles += result.Reshuffles
	s.UnoCatches += result.UnoCatches
	s.Duration += result.Duration
	if result.Moves > s.LongestMatch {
		s.LongestMatch = result.Moves
	}
	s.moveCounts = append(s.moveCounts, float64(result.Moves))
}

// WinRate returns the fraction of matches won from the given seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.WinsBySeat) {
		return 0
	}
	return float64(s.WinsBySeat[seat]) / float64(s.Games)
}

// MeanHands returns the average number of hands per match
func (s *Statistics) MeanHands() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalHands) / float64(s.Games)
}

// MeanMoves returns the average number of commands per match
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// StdDevMoves returns the sample standard deviation of match lengths
func (s *Statistics) StdDevMoves() float64 {
	n := len(s.moveCounts)
	if n < 2 {
		return 0
	}
	mean := s.MeanMoves()
	sum := 0.0
	for _, v := range s.moveCounts {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// MedianMoves returns the median match length
func (s *Statistics) MedianMoves() float64 {
	return s.PercentileMoves(0.5)
}

// PercentileMoves returns the given percentile (0.0-1.0) of match lengths
func (s *Statistics) PercentileMoves(p float64) float64 {
	if len(s.moveCounts) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.moveCounts))
	copy(sorted, s.moveCounts)
	sort.Float64s(sorted)

	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// Validate checks internal consistency of the aggregates
func (s *Statistics) Validate() error {
	wins := 0
	for _, w := range s.WinsBySeat {
		wins += w
	}
	if wins != s.Games {
		return fmt.Errorf("wins (%d) do not sum to games played (%d)", wins, s.Games)
	}
	if len(s.moveCounts) != s.Games {
		return fmt.Errorf("recorded %d move counts for %d games", len(s.moveCounts), s.Games)
	}
	if s.TotalHands < s.Games {
		return fmt.Errorf("total hands (%d) below games played (%d): every match takes at least one hand", s.TotalHands, s.Games)
	}
	return nil
}

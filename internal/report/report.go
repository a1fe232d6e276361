// Package report writes simulation results to disk for later comparison
// between engine versions.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/unomatch/internal/statistics"
)

// SeatResult summarizes one seat across a simulation run.
type SeatResult struct {
	Name    string  `json:"name"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// Report is the serializable summary of a simulation run.
type Report struct {
	GeneratedAt  time.Time    `json:"generated_at"`
	Seed         int64        `json:"seed"`
	Games        int          `json:"games"`
	TargetScore  int          `json:"target_score"`
	Seats        []SeatResult `json:"seats"`
	MeanHands    float64      `json:"mean_hands"`
	MeanMoves    float64      `json:"mean_moves"`
	MedianMoves  float64      `json:"median_moves"`
	StdDevMoves  float64      `json:"stddev_moves"`
	LongestMatch int          `json:"longest_match_moves"`
	Reshuffles   int          `json:"reshuffles"`
	UnoCatches   int          `json:"uno_catches"`
	WallTime     string       `json:"wall_time"`
}

// Build assembles a report from aggregated statistics.
func Build(stats *statistics.Statistics, players []string, seed int64, targetScore int) Report {
	seats := make([]SeatResult, len(players))
	for i, name := range players {
		seats[i] = SeatResult{
			Name:    name,
			Wins:    stats.WinsBySeat[i],
			WinRate: stats.WinRate(i),
		}
	}
	return Report{
		GeneratedAt:  time.Now().UTC(),
		Seed:         seed,
		Games:        stats.Games,
		TargetScore:  targetScore,
		Seats:        seats,
		MeanHands:    stats.MeanHands(),
		MeanMoves:    stats.MeanMoves(),
		MedianMoves:  stats.MedianMoves(),
		StdDevMoves:  stats.StdDevMoves(),
		LongestMatch: stats.LongestMatch,
		Reshuffles:   stats.Reshuffles,
		UnoCatches:   stats.UnoCatches,
		WallTime:     stats.Duration.String(),
	}
}

// WriteJSON writes the report to path atomically: it lands in a temp file
// in the same directory first, then renames over the target, so a reader
// never observes a partial report.
func (r Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename report into place: %w", err)
	}
	return nil
}

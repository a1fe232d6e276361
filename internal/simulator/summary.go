package simulator

import (
	"fmt"

	"github.com/lox/unomatch/internal/statistics"
)

// PrintSummary prints a human-readable summary of simulation results
func PrintSummary(stats *statistics.Statistics, players []string) {
	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Matches played: %d\n", stats.Games)
	fmt.Printf("Total hands: %d (%.1f per match)\n", stats.TotalHands, stats.MeanHands())
	fmt.Printf("Total wall time: %v\n", stats.Duration)

	fmt.Printf("\n=== MATCH LENGTH (moves) ===\n")
	fmt.Printf("Mean: %.1f\n", stats.MeanMoves())
	fmt.Printf("Median: %.1f\n", stats.MedianMoves())
	fmt.Printf("Std Dev: %.1f\n", stats.StdDevMoves())
	fmt.Printf("P5=%.0f, P95=%.0f, longest=%d\n",
		stats.PercentileMoves(0.05), stats.PercentileMoves(0.95), stats.LongestMatch)

	fmt.Printf("\n=== WIN RATES BY SEAT ===\n")
	for i, name := range players {
		fmt.Printf("Seat %d (%s): %d wins (%.1f%%)\n",
			i+1, name, stats.WinsBySeat[i], stats.WinRate(i)*100)
	}

	fmt.Printf("\n=== ENGINE ACTIVITY ===\n")
	fmt.Printf("Draw pile reshuffles: %d\n", stats.Reshuffles)
	fmt.Printf("UNO failures caught: %d\n", stats.UnoCatches)
}

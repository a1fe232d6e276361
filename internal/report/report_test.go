package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lox/unomatch/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	s := statistics.New(2)
	s.Add(statistics.GameResult{Winner: 0, Moves: 120, HandsPlayed: 3, Duration: time.Second})
	s.Add(statistics.GameResult{Winner: 1, Moves: 180, HandsPlayed: 4, Duration: time.Second})
	return s
}

func TestBuild(t *testing.T) {
	t.Parallel()
	r := Build(sampleStats(), []string{"Ada", "Grace"}, 42, 500)

	if r.Games != 2 || r.Seed != 42 || r.TargetScore != 500 {
		t.Errorf("header fields = %+v", r)
	}
	if len(r.Seats) != 2 || r.Seats[0].Name != "Ada" || r.Seats[0].Wins != 1 {
		t.Errorf("seats = %+v", r.Seats)
	}
	if r.Seats[0].WinRate != 0.5 {
		t.Errorf("WinRate = %f, want 0.5", r.Seats[0].WinRate)
	}
	if r.MeanMoves != 150 {
		t.Errorf("MeanMoves = %f, want 150", r.MeanMoves)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "results.json")
	r := Build(sampleStats(), []string{"Ada", "Grace"}, 7, 300)

	if err := r.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Games != 2 || got.Seed != 7 || len(got.Seats) != 2 {
		t.Errorf("round trip = %+v", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want just the report", len(entries))
	}
}

func TestWriteJSONBadDirectory(t *testing.T) {
	t.Parallel()
	r := Build(sampleStats(), []string{"Ada", "Grace"}, 7, 300)
	if err := r.WriteJSON("/nonexistent-dir/results.json"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

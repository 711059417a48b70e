package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 10, 100*time.Millisecond)
	if s.TotalGenerations != 1 {
		t.Fatalf("total generations = %d, want 1", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/sec = %f, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 10 {
		t.Fatalf("average population = %f, want 10", s.AveragePopulation)
	}

	// Second sample folds in with 0.9/0.1 smoothing.
	s.Update(2, 20, 100*time.Millisecond)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("average population = %f, want 11", s.AveragePopulation)
	}
}

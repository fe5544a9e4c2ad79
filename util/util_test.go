package util

import (
	"math"
	"math/rand"
	"testing"
)

func TestPercentile(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := Percentile(a, 50); got != 5 {
		t.Errorf("p50 = %f, want 5", got)
	}
	if got := Percentile([]float64{7}, 95); got != 7 {
		t.Errorf("p95 of single value = %f, want 7", got)
	}
	if got := Percentile(nil, 95); !math.IsNaN(got) {
		t.Errorf("p95 of empty = %f, want NaN", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{2, 4, 6}); got != 4 {
		t.Errorf("mean = %f, want 4", got)
	}
	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("mean of empty = %f, want NaN", got)
	}
}

func TestRandomString(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := RandomString(rng, 16)
	if len(s) != 16 {
		t.Errorf("len = %d, want 16", len(s))
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			t.Errorf("non-alphanumeric byte %q", c)
		}
	}
}

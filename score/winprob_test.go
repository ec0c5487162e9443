package score

import (
	"math"
	"testing"
)

func TestWinProbabilitySymmetry(t *testing.T) {
	if got := WinProbability(0); got != 50.0 {
		t.Fatalf("WinProbability(0) must be exactly 50, got %v", got)
	}
	for _, cp := range []float64{1, 10, 50, 100, 300, 900, 2500} {
		sum := WinProbability(cp) + WinProbability(-cp)
		if math.Abs(sum-100) > 1e-6 {
			t.Errorf("cp=%v: probabilities should mirror around 50, sum %v", cp, sum)
		}
	}
}

func TestWinProbabilityMonotonic(t *testing.T) {
	prev := WinProbability(-2000)
	for cp := -1900.0; cp <= 2000; cp += 100 {
		p := WinProbability(cp)
		if p <= prev {
			t.Fatalf("probability must increase with cp: p(%v)=%v <= %v", cp, p, prev)
		}
		prev = p
	}
}

func TestWinProbabilityClampsExtremes(t *testing.T) {
	for _, cp := range []float64{1e9, math.Inf(1)} {
		if got := WinProbability(cp); got > 100 || math.IsNaN(got) {
			t.Errorf("WinProbability(%v) = %v, want <= 100 and not NaN", cp, got)
		}
	}
	for _, cp := range []float64{-1e9, math.Inf(-1)} {
		if got := WinProbability(cp); got < 0 || math.IsNaN(got) {
			t.Errorf("WinProbability(%v) = %v, want >= 0 and not NaN", cp, got)
		}
	}
}

func TestMoveAccuracyCeiling(t *testing.T) {
	cases := [][2]float64{{50, 50}, {50, 60}, {10, 90}, {99.9, 100}}
	for _, c := range cases {
		if got := MoveAccuracy(c[0], c[1]); got != 100 {
			t.Errorf("MoveAccuracy(%v, %v) = %v, want exactly 100", c[0], c[1], got)
		}
	}
}

func TestMoveAccuracyDecreasesWithLoss(t *testing.T) {
	prev := MoveAccuracy(100, 100)
	for loss := 1.0; loss <= 100; loss++ {
		got := MoveAccuracy(100, 100-loss)
		if got > prev {
			t.Fatalf("accuracy must not rise as probability loss grows: loss=%v", loss)
		}
		prev = got
	}
	if got := MoveAccuracy(100, 0); got < 0 || got > 100 {
		t.Errorf("accuracy must stay within [0,100], got %v", got)
	}
}

func TestEstimateRatingSteps(t *testing.T) {
	cases := []struct {
		accuracy float64
		rating   int
	}{
		{99, 2700}, {98, 2700}, {96, 2400}, {91, 2100},
		{86, 1800}, {81, 1500}, {72, 1200}, {50, 900}, {0, 900},
	}
	for _, c := range cases {
		if got := EstimateRating(c.accuracy); got != c.rating {
			t.Errorf("EstimateRating(%v) = %d, want %d", c.accuracy, got, c.rating)
		}
	}
}

func TestRatingCategory(t *testing.T) {
	cases := []struct {
		avg  float64
		want Category
	}{
		{2600, Grandmaster}, {2500, Grandmaster}, {2300, Master},
		{1900, Advanced}, {1500, Intermediate}, {1000, Beginner},
	}
	for _, c := range cases {
		if got := RatingCategory(c.avg); got != c.want {
			t.Errorf("RatingCategory(%v) = %s, want %s", c.avg, got, c.want)
		}
	}
}

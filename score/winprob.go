// Package score converts centipawn evaluations into win probabilities,
// grades individual moves, and folds per-move grades into whole-game
// statistics.
package score

import "math"

// Logistic scale constant for the centipawn -> win probability curve.
const winProbScale = 0.00368208

// Accuracy curve constants: accuracy = a*e^(-b*probLoss) - c.
const (
	accuracyScale = 103.1668
	accuracyDecay = 0.04354
	accuracyShift = 3.1669
)

// WinProbability maps a centipawn evaluation onto a 0-100 win chance
// for the side the evaluation favors. Symmetric around 0 -> 50.
func WinProbability(cp float64) float64 {
	p := 50 + 50*(2/(1+math.Exp(-winProbScale*cp))-1)
	return clamp(p, 0, 100)
}

// MoveAccuracy grades a move by how much win probability it gave up.
// A move that did not worsen the position scores exactly 100.
func MoveAccuracy(probBefore, probAfter float64) float64 {
	if probAfter >= probBefore {
		return 100
	}
	probLoss := probBefore - probAfter
	return clamp(accuracyScale*math.Exp(-accuracyDecay*probLoss)-accuracyShift, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EstimateRating maps a per-side accuracy figure onto a rough rating.
func EstimateRating(accuracy float64) int {
	switch {
	case accuracy >= 98:
		return 2700
	case accuracy >= 95:
		return 2400
	case accuracy >= 90:
		return 2100
	case accuracy >= 85:
		return 1800
	case accuracy >= 80:
		return 1500
	case accuracy >= 70:
		return 1200
	default:
		return 900
	}
}

type Category string

const (
	Beginner     Category = "beginner"
	Intermediate Category = "intermediate"
	Advanced     Category = "advanced"
	Master       Category = "master"
	Grandmaster  Category = "grandmaster"
)

// RatingCategory buckets the average of both sides' estimated ratings.
func RatingCategory(averageRating float64) Category {
	switch {
	case averageRating >= 2500:
		return Grandmaster
	case averageRating >= 2200:
		return Master
	case averageRating >= 1800:
		return Advanced
	case averageRating >= 1400:
		return Intermediate
	default:
		return Beginner
	}
}

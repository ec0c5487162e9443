package score

import "math"

// SideSummary aggregates one side's moves.
type SideSummary struct {
	Accuracy        float64 `json:"accuracy"`
	CpLoss          int     `json:"cpLoss"`
	Brilliant       int     `json:"brilliant"`
	Great           int     `json:"great"`
	Inaccuracies    int     `json:"inaccuracies"`
	Mistakes        int     `json:"mistakes"`
	Blunders        int     `json:"blunders"`
	TacticsExecuted int     `json:"tacticsExecuted"`
	TacticsMissed   int     `json:"tacticsMissed"`
}

type RatingEstimate struct {
	White    int      `json:"white"`
	Black    int      `json:"black"`
	Category Category `json:"category"`
}

// GameScore is the whole-game summary built from an ordered, gapless
// half-move list.
type GameScore struct {
	White      SideSummary    `json:"white"`
	Black      SideSummary    `json:"black"`
	Complexity int            `json:"complexity"`
	Sharpness  int            `json:"sharpness"`
	Rating     RatingEstimate `json:"rating"`
}

// Scaling factors for the 0-100 complexity and sharpness figures.
const (
	complexityScale = 200
	sharpnessScale  = 150
)

// Aggregate folds per-move assessments into a GameScore. Moves must be
// in ascending ply order with White at even indexes; an empty list
// yields the zero score.
func Aggregate(moves []Assessment) GameScore {
	if len(moves) == 0 {
		return GameScore{}
	}

	var accSum [2]float64
	var moveCount [2]int
	var cpLoss [2]float64
	var sides [2]SideSummary
	var critical int
	for i, mv := range moves {
		side := i % 2 // 0 = White, 1 = Black
		moveCount[side]++
		accSum[side] += mv.Accuracy
		if mv.CpLoss > 0 {
			cpLoss[side] += mv.CpLoss
		}
		switch mv.Quality {
		case Brilliant:
			sides[side].Brilliant++
		case Great:
			sides[side].Great++
		case Inaccuracy:
			sides[side].Inaccuracies++
		case Mistake:
			sides[side].Mistakes++
		case Blunder:
			sides[side].Blunders++
		}
		sides[side].TacticsExecuted += len(mv.TacticsExecuted)
		sides[side].TacticsMissed += len(mv.TacticsMissed)
		if mv.IsCritical {
			critical++
		}
	}
	for side := 0; side < 2; side++ {
		if moveCount[side] > 0 {
			sides[side].Accuracy = roundTenth(accSum[side] / float64(moveCount[side]))
		}
		sides[side].CpLoss = int(math.Round(cpLoss[side]))
	}

	total := float64(len(moves))
	tactics := sides[0].TacticsExecuted + sides[1].TacticsExecuted
	gs := GameScore{
		White:      sides[0],
		Black:      sides[1],
		Complexity: scaledShare(complexityScale, float64(tactics), total),
		Sharpness:  scaledShare(sharpnessScale, float64(critical), total),
	}
	gs.Rating.White = EstimateRating(gs.White.Accuracy)
	gs.Rating.Black = EstimateRating(gs.Black.Accuracy)
	gs.Rating.Category = RatingCategory(float64(gs.Rating.White+gs.Rating.Black) / 2)
	return gs
}

func scaledShare(scale float64, n, total float64) int {
	v := int(math.Round(scale * n / total))
	if v > 100 {
		return 100
	}
	return v
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

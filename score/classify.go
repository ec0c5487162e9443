package score

import "chess-insight/eval"

// Quality is the discrete grade attached to one half-move.
type Quality string

const (
	Brilliant  Quality = "brilliant"
	Great      Quality = "great"
	Best       Quality = "best"
	Excellent  Quality = "excellent"
	Good       Quality = "good"
	Book       Quality = "book"
	Inaccuracy Quality = "inaccuracy"
	Mistake    Quality = "mistake"
	Blunder    Quality = "blunder"
	Miss       Quality = "miss"
	Forced     Quality = "forced"
)

// Fixed display weights, consumed by reporting only. Classification
// never branches on them.
var qualityWeight = map[Quality]float64{
	Brilliant:  1.2,
	Great:      1.1,
	Best:       1.0,
	Excellent:  0.9,
	Book:       0.8,
	Good:       0.7,
	Forced:     0.5,
	Inaccuracy: 0.4,
	Mistake:    0.2,
	Miss:       0.15,
	Blunder:    0.0,
}

func (q Quality) Weight() float64 { return qualityWeight[q] }

// Tactic names a tactical motif. Detection happens upstream; this core
// only records what it is handed.
type Tactic string

const (
	TacticFork             Tactic = "fork"
	TacticPin              Tactic = "pin"
	TacticSkewer           Tactic = "skewer"
	TacticDiscoveredAttack Tactic = "discoveredAttack"
	TacticBackRank         Tactic = "backRank"
	TacticSacrifice        Tactic = "sacrifice"
)

// Centipawn-loss ladder thresholds, checked in ascending order.
const (
	greatCeil      = 0
	bestCeil       = 5
	excellentCeil  = 15
	goodCeil       = 30
	inaccuracyCeil = 75
	mistakeCeil    = 200
)

// Brilliant gate: the move must beat the pre-move best line by this
// much while giving up at least this much material.
const (
	brilliantGain      = -50
	brilliantSacrifice = 300
)

// MoveContext carries everything the classifier consumes for one
// half-move. CpLoss may be negative when the played move improved on
// the engine's best line. MaterialSacrificed and the tactic lists are
// supplied by an upstream analysis stage.
type MoveContext struct {
	CpLoss             float64
	WinProbLoss        float64
	Accuracy           float64
	Phase              eval.Phase
	IsTheoretical      bool
	IsCritical         bool
	OnlyLegalMove      bool
	MaterialSacrificed float64
	TacticsMissed      []Tactic
	TacticsExecuted    []Tactic
}

// Classify resolves a move context to exactly one quality. Rules are
// checked in a fixed order and the first match wins: forced, book,
// brilliant, miss, then the centipawn-loss ladder.
func Classify(mc MoveContext) Quality {
	if mc.OnlyLegalMove {
		return Forced
	}
	if mc.IsTheoretical && mc.Phase == eval.Opening {
		return Book
	}
	if mc.CpLoss <= brilliantGain && mc.MaterialSacrificed >= brilliantSacrifice {
		return Brilliant
	}
	if len(mc.TacticsMissed) > 0 && len(mc.TacticsExecuted) == 0 {
		return Miss
	}
	switch {
	case mc.CpLoss <= greatCeil:
		return Great
	case mc.CpLoss <= bestCeil:
		return Best
	case mc.CpLoss <= excellentCeil:
		return Excellent
	case mc.CpLoss <= goodCeil:
		return Good
	case mc.CpLoss <= inaccuracyCeil:
		return Inaccuracy
	case mc.CpLoss <= mistakeCeil:
		return Mistake
	default:
		return Blunder
	}
}

// Assessment is the per-half-move record produced by Judge and consumed
// by the aggregator.
type Assessment struct {
	Quality            Quality  `json:"quality"`
	Accuracy           float64  `json:"accuracy"`
	CpLoss             float64  `json:"cpLoss"`
	WinProbabilityLoss float64  `json:"winProbabilityLoss"`
	IsTheoretical      bool     `json:"isTheoretical"`
	IsCritical         bool     `json:"isCritical"`
	TacticsMissed      []Tactic `json:"tacticsMissed,omitempty"`
	TacticsExecuted    []Tactic `json:"tacticsExecuted,omitempty"`
}

// Judge classifies a move context and fixes up its accuracy: a move
// that improved on the best line is a perfect move regardless of the
// supplied figure.
func Judge(mc MoveContext) Assessment {
	accuracy := mc.Accuracy
	if mc.CpLoss < 0 {
		accuracy = 100
	}
	return Assessment{
		Quality:            Classify(mc),
		Accuracy:           clamp(accuracy, 0, 100),
		CpLoss:             mc.CpLoss,
		WinProbabilityLoss: mc.WinProbLoss,
		IsTheoretical:      mc.IsTheoretical,
		IsCritical:         mc.IsCritical,
		TacticsMissed:      mc.TacticsMissed,
		TacticsExecuted:    mc.TacticsExecuted,
	}
}

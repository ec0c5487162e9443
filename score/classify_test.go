package score

import (
	"testing"

	"chess-insight/eval"
)

func TestClassifyLadder(t *testing.T) {
	cases := []struct {
		cpLoss float64
		want   Quality
	}{
		{-10, Great}, {0, Great}, {3, Best}, {5, Best},
		{10, Excellent}, {15, Excellent}, {20, Good}, {30, Good},
		{50, Inaccuracy}, {75, Inaccuracy}, {120, Mistake}, {200, Mistake},
		{201, Blunder}, {900, Blunder},
	}
	for _, c := range cases {
		got := Classify(MoveContext{CpLoss: c.cpLoss, Phase: eval.Middlegame})
		if got != c.want {
			t.Errorf("cpLoss=%v: got %s, want %s", c.cpLoss, got, c.want)
		}
	}
}

func TestClassifyForcedWinsOverBlunder(t *testing.T) {
	got := Classify(MoveContext{CpLoss: 500, OnlyLegalMove: true})
	if got != Forced {
		t.Errorf("the only legal move is forced even at blunder-sized loss, got %s", got)
	}
}

func TestClassifyBookOnlyInOpening(t *testing.T) {
	opening := Classify(MoveContext{IsTheoretical: true, Phase: eval.Opening})
	if opening != Book {
		t.Errorf("theory in the opening is a book move, got %s", opening)
	}
	middlegame := Classify(MoveContext{IsTheoretical: true, Phase: eval.Middlegame})
	if middlegame == Book {
		t.Errorf("theory flag outside the opening must not classify book")
	}
}

func TestClassifyBrilliantNeedsSacrifice(t *testing.T) {
	withSac := Classify(MoveContext{CpLoss: -60, MaterialSacrificed: 320, Phase: eval.Middlegame})
	if withSac != Brilliant {
		t.Errorf("improving sacrifice should be brilliant, got %s", withSac)
	}
	noSac := Classify(MoveContext{CpLoss: -60, Phase: eval.Middlegame})
	if noSac != Great {
		t.Errorf("improvement without sacrifice falls through to the ladder, got %s", noSac)
	}
	smallGain := Classify(MoveContext{CpLoss: -10, MaterialSacrificed: 320, Phase: eval.Middlegame})
	if smallGain == Brilliant {
		t.Errorf("a sacrifice must also beat the best line by 50cp to be brilliant")
	}
}

func TestClassifyMiss(t *testing.T) {
	missed := Classify(MoveContext{CpLoss: 40, TacticsMissed: []Tactic{TacticFork}, Phase: eval.Middlegame})
	if missed != Miss {
		t.Errorf("unanswered missed tactic classifies miss, got %s", missed)
	}
	compensated := Classify(MoveContext{
		CpLoss:          40,
		TacticsMissed:   []Tactic{TacticFork},
		TacticsExecuted: []Tactic{TacticPin},
		Phase:           eval.Middlegame,
	})
	if compensated == Miss {
		t.Errorf("an executed tactic compensates a missed one, got %s", compensated)
	}
}

func TestJudgeClampsAccuracyOnImprovement(t *testing.T) {
	a := Judge(MoveContext{CpLoss: -25, Accuracy: 73.5, Phase: eval.Middlegame})
	if a.Accuracy != 100 {
		t.Errorf("improving move must carry accuracy 100, got %v", a.Accuracy)
	}
	if a.CpLoss != -25 {
		t.Errorf("cpLoss is recorded untouched, got %v", a.CpLoss)
	}
}

func TestJudgeKeepsSuppliedFlags(t *testing.T) {
	a := Judge(MoveContext{
		CpLoss:          12,
		Accuracy:        91.2,
		WinProbLoss:     2.5,
		IsCritical:      true,
		TacticsExecuted: []Tactic{TacticSkewer},
		Phase:           eval.Middlegame,
	})
	if a.Quality != Excellent {
		t.Errorf("expected excellent, got %s", a.Quality)
	}
	if !a.IsCritical || len(a.TacticsExecuted) != 1 || a.WinProbabilityLoss != 2.5 {
		t.Errorf("supplied flags must pass through unchanged: %+v", a)
	}
}

func TestQualityWeightsCoverAllLabels(t *testing.T) {
	labels := []Quality{Brilliant, Great, Best, Excellent, Good, Book, Inaccuracy, Mistake, Blunder, Miss, Forced}
	for _, q := range labels {
		if _, ok := qualityWeight[q]; !ok {
			t.Errorf("quality %s has no display weight", q)
		}
	}
}

// Package analysis replays games through the rules engine, evaluates
// every position, and grades each played move against a one-ply static
// scan of the alternatives. There is no search tree: the best reply is
// simply the legal move whose resulting position evaluates best.
package analysis

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-insight/census"
	"chess-insight/eval"
	"chess-insight/score"
)

// MoveReport is one analyzed half-move. Evaluations are centipawns from
// White's perspective; probabilities are from the mover's perspective.
type MoveReport struct {
	Ply        int              `json:"ply"`
	Move       string           `json:"move"`
	Phase      eval.Phase       `json:"phase"`
	EvalBefore int              `json:"evalBefore"`
	BestEval   int              `json:"bestEval"`
	EvalAfter  int              `json:"evalAfter"`
	ProbBefore float64          `json:"probBefore"`
	ProbAfter  float64          `json:"probAfter"`
	Assessment score.Assessment `json:"assessment"`
}

type GameReport struct {
	Moves []MoveReport    `json:"moves"`
	Score score.GameScore `json:"score"`
}

// AnalyzeGame replays a move list from the initial position.
func AnalyzeGame(moves []dragontoothmg.Move) (*GameReport, error) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	return AnalyzeFrom(&board, moves)
}

// AnalyzeFrom replays a move list from an arbitrary position. The board
// is mutated during replay and left at the final position.
func AnalyzeFrom(board *dragontoothmg.Board, moves []dragontoothmg.Move) (*GameReport, error) {
	report := &GameReport{Moves: make([]MoveReport, 0, len(moves))}
	assessments := make([]score.Assessment, 0, len(moves))
	for ply, mv := range moves {
		legal := board.GenerateLegalMoves()
		if len(legal) == 0 {
			return nil, fmt.Errorf("ply %d: game continues past a final position", ply+1)
		}
		if !containsMove(legal, mv) {
			return nil, fmt.Errorf("ply %d: illegal move %s", ply+1, mv.String())
		}

		before, err := evaluate(board)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", ply+1, err)
		}
		whiteMove := board.Wtomove
		bestEval, err := bestStaticEval(board, legal)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", ply+1, err)
		}

		board.Apply(mv)
		after, err := evaluate(board)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", ply+1, err)
		}

		cpLoss := float64(bestEval - after.Total)
		if !whiteMove {
			cpLoss = -cpLoss
		}
		probBest := moverProbability(bestEval, whiteMove)
		probAfter := moverProbability(after.Total, whiteMove)
		probLoss := probBest - probAfter
		if probLoss < 0 {
			probLoss = 0
		}

		assessment := score.Judge(score.MoveContext{
			CpLoss:        cpLoss,
			WinProbLoss:   probLoss,
			Accuracy:      score.MoveAccuracy(probBest, probAfter),
			Phase:         before.Phase,
			OnlyLegalMove: len(legal) == 1,
		})
		assessments = append(assessments, assessment)
		report.Moves = append(report.Moves, MoveReport{
			Ply:        ply + 1,
			Move:       mv.String(),
			Phase:      before.Phase,
			EvalBefore: before.Total,
			BestEval:   bestEval,
			EvalAfter:  after.Total,
			ProbBefore: probBest,
			ProbAfter:  probAfter,
			Assessment: assessment,
		})
	}
	report.Score = score.Aggregate(assessments)
	return report, nil
}

func evaluate(board *dragontoothmg.Board) (eval.PositionEvaluation, error) {
	c, err := census.FromBoard(board)
	if err != nil {
		return eval.PositionEvaluation{}, err
	}
	return eval.Evaluate(c)
}

// bestStaticEval evaluates every legal reply and keeps the total most
// favorable to the side to move.
func bestStaticEval(board *dragontoothmg.Board, legal []dragontoothmg.Move) (int, error) {
	whiteMove := board.Wtomove
	best := 0
	for i, mv := range legal {
		unapply := board.Apply(mv)
		ev, err := evaluate(board)
		unapply()
		if err != nil {
			return 0, err
		}
		if i == 0 || (whiteMove && ev.Total > best) || (!whiteMove && ev.Total < best) {
			best = ev.Total
		}
	}
	return best, nil
}

func moverProbability(cp int, whiteMove bool) float64 {
	p := score.WinProbability(float64(cp))
	if !whiteMove {
		p = 100 - p
	}
	return p
}

func containsMove(legal []dragontoothmg.Move, mv dragontoothmg.Move) bool {
	for _, lm := range legal {
		if lm == mv {
			return true
		}
	}
	return false
}

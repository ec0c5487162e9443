// Package eval turns a board census into a multi-factor centipawn
// score. Every term is signed with positive favoring White, and the
// total is the exact integer sum of the eight terms.
package eval

import "chess-insight/census"

// Non-material evaluation parameters
var (
	DoubledPawnPenalty  = 15 // per extra pawn on a file
	IsolatedPawnPenalty = 20
	PassedPawnBase      = 20
	PassedPawnPerRank   = 10

	CastledKingBonus   = 30
	KingShieldPawn     = 10 // per pawn on the three files in front of the king
	ExposedKingPenalty = 50 // un-castled king on files c-f in the middlegame

	MobilityBaseline = 30 // legal moves assumed for a level position
	MobilityPerMove  = 2

	CenterPawnBonus     = 20
	CenterPieceBonus    = 10
	ExtendedCenterBonus = 5
	UndevelopedMinor    = 15
	SpacePerRank        = 3
	CheckThreatPenalty  = 30
)

// PositionEvaluation is the per-position score breakdown. Total always
// equals the sum of the eight term fields.
type PositionEvaluation struct {
	Material      int   `json:"material"`
	PawnStructure int   `json:"pawnStructure"`
	KingSafety    int   `json:"kingSafety"`
	PieceActivity int   `json:"pieceActivity"`
	CenterControl int   `json:"centerControl"`
	Development   int   `json:"development"`
	Space         int   `json:"space"`
	Threats       int   `json:"threats"`
	Total         int   `json:"total"`
	Phase         Phase `json:"phase"`
}

// Evaluate scores a census. It validates the census first and never
// substitutes a default score for malformed input.
func Evaluate(c *census.Census) (PositionEvaluation, error) {
	if err := c.Validate(); err != nil {
		return PositionEvaluation{}, err
	}
	phase := ClassifyPhase(c)
	ev := PositionEvaluation{
		Phase:         phase,
		Material:      material(c, phase),
		PawnStructure: pawnStructure(c),
		KingSafety:    kingSafety(c, phase),
		PieceActivity: pieceActivity(c),
		CenterControl: centerControl(c),
		Development:   development(c, phase),
		Space:         space(c),
		Threats:       threats(c),
	}
	ev.Total = ev.Material + ev.PawnStructure + ev.KingSafety + ev.PieceActivity +
		ev.CenterControl + ev.Development + ev.Space + ev.Threats
	return ev, nil
}

func colorSign(side census.Side) int {
	if side == census.White {
		return 1
	}
	return -1
}

func material(c *census.Census, phase Phase) (score int) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind == census.NoPiece {
				continue
			}
			score += PieceValue(sq.Kind, phase) * colorSign(sq.Side)
		}
	}
	return score
}

func pawnStructure(c *census.Census) (score int) {
	for side := census.White; side <= census.Black; side++ {
		score += sidePawnStructure(c, side) * colorSign(side)
	}
	return score
}

func sidePawnStructure(c *census.Census, side census.Side) (score int) {
	var fileCount [8]int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind == census.Pawn && sq.Side == side {
				fileCount[file]++
			}
		}
	}
	for _, n := range fileCount {
		if n > 1 {
			score -= DoubledPawnPenalty * (n - 1)
		}
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind != census.Pawn || sq.Side != side {
				continue
			}
			isolated := true
			if file > 0 && fileCount[file-1] > 0 {
				isolated = false
			}
			if file < 7 && fileCount[file+1] > 0 {
				isolated = false
			}
			if isolated {
				score -= IsolatedPawnPenalty
			}
			if passedPawn(c, side, rank, file) {
				score += PassedPawnBase + PassedPawnPerRank*pawnAdvancement(side, rank)
			}
		}
	}
	return score
}

// pawnAdvancement measures how far a pawn has travelled from its own
// starting rank toward promotion.
func pawnAdvancement(side census.Side, rank int) int {
	if side == census.White {
		return rank - 1
	}
	return 6 - rank
}

// passedPawn reports whether no enemy pawn can block or capture the
// pawn on any rank between it and the promotion rank, adjacent files
// included.
func passedPawn(c *census.Census, side census.Side, rank, file int) bool {
	dir := 1
	if side == census.Black {
		dir = -1
	}
	for r := rank + dir; r >= 0 && r < 8; r += dir {
		for f := file - 1; f <= file+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			sq := c.Grid[r][f]
			if sq.Kind == census.Pawn && sq.Side != side {
				return false
			}
		}
	}
	return true
}

func kingSafety(c *census.Census, phase Phase) (score int) {
	if phase == Endgame {
		return 0
	}
	for side := census.White; side <= census.Black; side++ {
		score += sideKingSafety(c, side, phase) * colorSign(side)
	}
	return score
}

func sideKingSafety(c *census.Census, side census.Side, phase Phase) (score int) {
	kingRank, kingFile := -1, -1
	for rank := 0; rank < 8 && kingRank < 0; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind == census.King && sq.Side == side {
				kingRank, kingFile = rank, file
				break
			}
		}
	}
	homeRank := 0
	dir := 1
	if side == census.Black {
		homeRank = 7
		dir = -1
	}
	// Castled corner squares: g1/c1 for White, g8/c8 for Black.
	if kingRank == homeRank && (kingFile == 6 || kingFile == 2) {
		score += CastledKingBonus
	}
	shieldRank := kingRank + dir
	if shieldRank >= 0 && shieldRank < 8 {
		for f := kingFile - 1; f <= kingFile+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			sq := c.Grid[shieldRank][f]
			if sq.Kind == census.Pawn && sq.Side == side {
				score += KingShieldPawn
			}
		}
	}
	if phase == Middlegame && kingRank == homeRank && kingFile >= 2 && kingFile <= 5 {
		score -= ExposedKingPenalty
	}
	return score
}

// pieceActivity rewards mobility above the empirical baseline. The
// legal move count belongs to the side to move, so the term is flipped
// when it is Black's turn.
func pieceActivity(c *census.Census) int {
	score := (c.LegalMoves - MobilityBaseline) * MobilityPerMove
	if !c.WhiteToMove {
		score = -score
	}
	return score
}

func centerControl(c *census.Census) (score int) {
	for rank := 2; rank <= 5; rank++ {
		for file := 2; file <= 5; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind == census.NoPiece || sq.Kind == census.King {
				continue
			}
			central := rank >= 3 && rank <= 4 && file >= 3 && file <= 4
			switch {
			case central && sq.Kind == census.Pawn:
				score += CenterPawnBonus * colorSign(sq.Side)
			case central:
				score += CenterPieceBonus * colorSign(sq.Side)
			case sq.Kind != census.Pawn:
				score += ExtendedCenterBonus * colorSign(sq.Side)
			}
		}
	}
	return score
}

var minorHomeFiles = [4]int{1, 2, 5, 6}

// development penalizes knights and bishops still sitting on their
// original squares. Only applied while the game is in the opening.
func development(c *census.Census, phase Phase) (score int) {
	if phase != Opening {
		return 0
	}
	for side := census.White; side <= census.Black; side++ {
		homeRank := 0
		if side == census.Black {
			homeRank = 7
		}
		for _, file := range minorHomeFiles {
			sq := c.Grid[homeRank][file]
			if (sq.Kind == census.Knight || sq.Kind == census.Bishop) && sq.Side == side {
				score -= UndevelopedMinor * colorSign(side)
			}
		}
	}
	return score
}

func space(c *census.Census) (score int) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind != census.Pawn {
				continue
			}
			adv := rank
			if sq.Side == census.Black {
				adv = 7 - rank
			}
			score += adv * SpacePerRank * colorSign(sq.Side)
		}
	}
	return score
}

// threats charges the side to move for standing in check.
func threats(c *census.Census) int {
	if !c.InCheck {
		return 0
	}
	if c.WhiteToMove {
		return -CheckThreatPenalty
	}
	return CheckThreatPenalty
}

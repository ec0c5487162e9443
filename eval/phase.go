package eval

import (
	"encoding/json"

	"chess-insight/census"
)

type Phase int8

const (
	Opening Phase = iota
	Middlegame
	Endgame
)

var phaseNames = [3]string{"opening", "middlegame", "endgame"}

func (p Phase) String() string {
	if p < Opening || p > Endgame {
		return "unknown"
	}
	return phaseNames[p]
}

// MarshalJSON renders the phase by name.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Thresholds on the non-king piece count.
const (
	openingPieceFloor = 28
	endgamePieceCeil  = 14
)

// ClassifyPhase labels a position opening/middlegame/endgame from its
// remaining material. Queenless positions always count as endgame.
func ClassifyPhase(c *census.Census) Phase {
	var pieces, queens int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			switch c.Grid[rank][file].Kind {
			case census.NoPiece, census.King:
			case census.Queen:
				pieces++
				queens++
			default:
				pieces++
			}
		}
	}
	if pieces >= openingPieceFloor {
		return Opening
	}
	if pieces <= endgamePieceCeil || queens == 0 {
		return Endgame
	}
	return Middlegame
}

package eval

import "chess-insight/census"

// Piece base values in centipawns, indexed by census.Kind. The king is
// worth 0 for material accounting since its loss ends the game.
var pieceValue = [7]int{
	census.Pawn: 100, census.Knight: 305, census.Bishop: 333,
	census.Rook: 563, census.Queen: 950, census.King: 0,
}
var pieceValueEndgame = [7]int{
	census.Pawn: 120, census.Knight: 290, census.Bishop: 340,
	census.Rook: 590, census.Queen: 980, census.King: 0,
}

// PieceValue returns the centipawn value of a piece kind in the given
// game phase.
func PieceValue(kind census.Kind, phase Phase) int {
	if kind < census.Pawn || kind > census.King {
		return 0
	}
	if phase == Endgame {
		return pieceValueEndgame[kind]
	}
	return pieceValue[kind]
}

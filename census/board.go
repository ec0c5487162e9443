package census

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// FromBoard extracts a census from a dragontoothmg board. The board is
// only read; move generation is the one rules-engine call whose result
// (the legal move count) the census carries along.
func FromBoard(b *dragontoothmg.Board) (*Census, error) {
	c := &Census{
		WhiteToMove: b.Wtomove,
		InCheck:     b.OurKingInCheck(),
		LegalMoves:  len(b.GenerateLegalMoves()),
	}
	fill(c, &b.White, White)
	fill(c, &b.Black, Black)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func fill(c *Census, bb *dragontoothmg.Bitboards, side Side) {
	place := func(mask uint64, kind Kind) {
		for x := mask; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			c.Grid[sq>>3][sq&7] = Square{Kind: kind, Side: side}
		}
	}
	place(bb.Pawns, Pawn)
	place(bb.Knights, Knight)
	place(bb.Bishops, Bishop)
	place(bb.Rooks, Rook)
	place(bb.Queens, Queen)
	place(bb.Kings, King)
}

// KindAt looks up the piece kind on a square of a single side's
// bitboard set.
func KindAt(square uint8, bb *dragontoothmg.Bitboards) (Kind, bool) {
	mask := uint64(1) << square
	switch {
	case bb.Pawns&mask != 0:
		return Pawn, true
	case bb.Knights&mask != 0:
		return Knight, true
	case bb.Bishops&mask != 0:
		return Bishop, true
	case bb.Rooks&mask != 0:
		return Rook, true
	case bb.Queens&mask != 0:
		return Queen, true
	case bb.Kings&mask != 0:
		return King, true
	}
	return NoPiece, false
}

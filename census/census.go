// Package census holds the read-only board snapshot consumed by the
// evaluator. A census is extracted once per position from the rules
// engine and never mutated afterwards.
package census

import "fmt"

type Side int8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type Kind int8

const (
	NoPiece Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [7]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if k < NoPiece || k > King {
		return "unknown"
	}
	return kindNames[k]
}

// Square is one cell of the census grid. Kind == NoPiece means empty,
// in which case Side is meaningless.
type Square struct {
	Kind Kind
	Side Side
}

// Census is the full board snapshot: an 8x8 grid indexed [rank][file]
// with rank 0 = White's back rank, plus turn, check state and the legal
// move count for the side to move.
type Census struct {
	Grid        [8][8]Square
	WhiteToMove bool
	InCheck     bool
	LegalMoves  int
}

// InvariantError reports which census invariant a malformed input broke.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("census: %s: %s", e.Invariant, e.Detail)
}

// Validate fails fast on censuses no legal chess position can produce.
func (c *Census) Validate() error {
	var kings [2]int
	var pieces [2]int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := c.Grid[rank][file]
			if sq.Kind == NoPiece {
				continue
			}
			if sq.Kind < Pawn || sq.Kind > King {
				return &InvariantError{"piece kind", fmt.Sprintf("unknown kind %d on %s", sq.Kind, SquareName(rank, file))}
			}
			pieces[sq.Side]++
			if sq.Kind == King {
				kings[sq.Side]++
			}
			if sq.Kind == Pawn && (rank == 0 || rank == 7) {
				return &InvariantError{"pawn rank", fmt.Sprintf("%s pawn on %s", sq.Side, SquareName(rank, file))}
			}
		}
	}
	for side := White; side <= Black; side++ {
		if kings[side] != 1 {
			return &InvariantError{"king count", fmt.Sprintf("%s has %d kings", side, kings[side])}
		}
		if pieces[side] > 16 {
			return &InvariantError{"piece count", fmt.Sprintf("%s has %d pieces", side, pieces[side])}
		}
	}
	if c.LegalMoves < 0 {
		return &InvariantError{"legal moves", fmt.Sprintf("negative count %d", c.LegalMoves)}
	}
	return nil
}

// SideToMove returns whose turn the census records.
func (c *Census) SideToMove() Side {
	if c.WhiteToMove {
		return White
	}
	return Black
}

// SquareName renders a rank/file pair in algebraic notation (0,0 -> a1).
func SquareName(rank, file int) string {
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

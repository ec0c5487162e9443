package census

import (
	"errors"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestFromBoardStartingPosition(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	c, err := FromBoard(&board)
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}
	if !c.WhiteToMove {
		t.Errorf("expected White to move")
	}
	if c.InCheck {
		t.Errorf("starting position is not check")
	}
	if c.LegalMoves != 20 {
		t.Errorf("expected 20 legal moves, got %d", c.LegalMoves)
	}
	pieces := 0
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if c.Grid[rank][file].Kind != NoPiece {
				pieces++
			}
		}
	}
	if pieces != 32 {
		t.Errorf("expected 32 pieces, got %d", pieces)
	}
	if got := c.Grid[0][4]; got.Kind != King || got.Side != White {
		t.Errorf("expected white king on e1, got %v %v", got.Side, got.Kind)
	}
	if got := c.Grid[7][3]; got.Kind != Queen || got.Side != Black {
		t.Errorf("expected black queen on d8, got %v %v", got.Side, got.Kind)
	}
}

func TestFromBoardCheckFlag(t *testing.T) {
	// Black just played Qh4+, White to move and in check.
	board := dragontoothmg.ParseFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	c, err := FromBoard(&board)
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}
	if !c.InCheck {
		t.Errorf("expected side to move to be in check")
	}
}

func TestValidateKingCount(t *testing.T) {
	var c Census
	c.Grid[0][4] = Square{Kind: King, Side: White}
	c.Grid[0][6] = Square{Kind: King, Side: White}
	c.Grid[7][4] = Square{Kind: King, Side: Black}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error for two white kings")
	}
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvariantError, got %T", err)
	}
	if ie.Invariant != "king count" {
		t.Errorf("expected king count invariant, got %q", ie.Invariant)
	}
}

func TestValidatePawnOnBackRank(t *testing.T) {
	var c Census
	c.Grid[0][4] = Square{Kind: King, Side: White}
	c.Grid[7][4] = Square{Kind: King, Side: Black}
	c.Grid[7][0] = Square{Kind: Pawn, Side: White}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error for pawn on back rank")
	}
	if !strings.Contains(err.Error(), "pawn") {
		t.Errorf("error should name the pawn invariant: %v", err)
	}
}

func TestSquareName(t *testing.T) {
	if got := SquareName(0, 0); got != "a1" {
		t.Errorf("expected a1, got %s", got)
	}
	if got := SquareName(7, 7); got != "h8" {
		t.Errorf("expected h8, got %s", got)
	}
}

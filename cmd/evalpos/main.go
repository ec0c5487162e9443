// Evaluates a single position and prints the term-by-term breakdown.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"

	"chess-insight/census"
	"chess-insight/eval"
	"chess-insight/score"
)

func main() {
	fen := flag.String("fen", dragontoothmg.Startpos, "FEN string (defaults to initial position)")
	asJSON := flag.Bool("json", false, "Print the evaluation as JSON")
	flag.Parse()

	board := dragontoothmg.ParseFen(*fen)
	c, err := census.FromBoard(&board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "census error: %v\n", err)
		os.Exit(2)
	}
	ev, err := eval.Evaluate(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)
		os.Exit(2)
	}

	if *asJSON {
		out, _ := json.MarshalIndent(ev, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("phase:          %s\n", ev.Phase)
	fmt.Printf("material:       %d\n", ev.Material)
	fmt.Printf("pawn structure: %d\n", ev.PawnStructure)
	fmt.Printf("king safety:    %d\n", ev.KingSafety)
	fmt.Printf("piece activity: %d\n", ev.PieceActivity)
	fmt.Printf("center control: %d\n", ev.CenterControl)
	fmt.Printf("development:    %d\n", ev.Development)
	fmt.Printf("space:          %d\n", ev.Space)
	fmt.Printf("threats:        %d\n", ev.Threats)
	fmt.Printf("total:          %d cp\n", ev.Total)
	fmt.Printf("win chance:     %.1f%%\n", score.WinProbability(float64(ev.Total)))
}

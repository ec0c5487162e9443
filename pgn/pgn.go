// Package pgn loads PGN movetext into dragontoothmg move lists. Only
// what game analysis needs is parsed: tag pairs are kept as strings and
// SAN tokens are resolved against the legal moves of the running board.
package pgn

import (
	"bufio"
	"io"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-insight/census"
)

type Game struct {
	Tags  map[string]string
	Moves []dragontoothmg.Move
}

// Load reads every game in a PGN stream. Unparseable tokens are
// skipped, matching how lenient PGN readers behave on annotations.
func Load(r io.Reader) ([]Game, error) {
	var games []Game
	var board dragontoothmg.Board
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, "[Event ") || len(games) == 0 {
			games = append(games, Game{Tags: map[string]string{}})
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		}
		if strings.HasPrefix(line, "[") {
			if key, value, ok := parseTag(line); ok {
				games[len(games)-1].Tags[key] = value
			}
			continue
		}
		game := &games[len(games)-1]
		tokens := strings.FieldsFunc(line, func(ch rune) bool {
			return ch == '.' || ch == ' '
		})
		for _, tk := range tokens {
			if tk == "1-0" || tk == "0-1" || tk == "1/2-1/2" || tk == "*" {
				break
			}
			if !canBeMove(tk) {
				continue
			}
			mv, ok := resolveSAN(&board, tk)
			if !ok {
				continue
			}
			board.Apply(mv)
			game.Moves = append(game.Moves, mv)
		}
	}
	return games, scanner.Err()
}

func parseTag(line string) (key, value string, ok bool) {
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	open := strings.IndexByte(line, '"')
	end := strings.LastIndexByte(line, '"')
	if open < 0 || end <= open {
		return "", "", false
	}
	return strings.TrimSpace(line[:open]), line[open+1 : end], true
}

func canBeMove(s string) bool {
	return -1 == strings.IndexFunc(s, func(ch rune) bool {
		return !strings.ContainsRune("12345678abcdefghNBRQKOx=-+#!?", ch)
	})
}

var promotionKinds = map[byte]dragontoothmg.Piece{
	'Q': dragontoothmg.Queen, 'R': dragontoothmg.Rook,
	'B': dragontoothmg.Bishop, 'N': dragontoothmg.Knight,
}

var pieceLetters = map[byte]census.Kind{
	'N': census.Knight, 'B': census.Bishop, 'R': census.Rook,
	'Q': census.Queen, 'K': census.King,
}

// resolveSAN finds the unique legal move a SAN token describes.
func resolveSAN(board *dragontoothmg.Board, san string) (dragontoothmg.Move, bool) {
	san = strings.TrimRight(san, "+#!?")
	if san == "" {
		return 0, false
	}
	legal := board.GenerateLegalMoves()

	if san == "O-O" || san == "O-O-O" {
		targetFile := 6
		if san == "O-O-O" {
			targetFile = 2
		}
		for _, mv := range legal {
			kind, _ := moverKindAt(board, mv.From())
			if kind == census.King && int(mv.To()&7) == targetFile && absInt(int(mv.To()&7)-int(mv.From()&7)) == 2 {
				return mv, true
			}
		}
		return 0, false
	}

	var promotion dragontoothmg.Piece
	if i := strings.IndexByte(san, '='); i >= 0 && i+1 < len(san) {
		promotion = promotionKinds[san[i+1]]
		san = san[:i]
	}
	if san == "" {
		return 0, false
	}

	kind := census.Pawn
	if k, ok := pieceLetters[san[0]]; ok {
		kind = k
		san = san[1:]
	}
	san = strings.ReplaceAll(san, "x", "")
	if len(san) < 2 {
		return 0, false
	}
	dest := san[len(san)-2:]
	if dest[0] < 'a' || dest[0] > 'h' || dest[1] < '1' || dest[1] > '8' {
		return 0, false
	}
	destSq := uint8(dest[1]-'1')*8 + uint8(dest[0]-'a')
	disambig := san[:len(san)-2]

	for _, mv := range legal {
		fromKind, ok := moverKindAt(board, mv.From())
		if !ok || fromKind != kind || mv.To() != destSq {
			continue
		}
		if promotion != 0 && mv.Promote() != promotion {
			continue
		}
		if promotion == 0 && mv.Promote() != 0 {
			continue
		}
		if !matchesDisambiguation(disambig, mv.From()) {
			continue
		}
		// A pawn move without a file letter is a push, never a capture.
		if kind == census.Pawn && disambig == "" && mv.From()&7 != mv.To()&7 {
			continue
		}
		return mv, true
	}
	return 0, false
}

func matchesDisambiguation(disambig string, from uint8) bool {
	for i := 0; i < len(disambig); i++ {
		ch := disambig[i]
		switch {
		case ch >= 'a' && ch <= 'h':
			if int(from&7) != int(ch-'a') {
				return false
			}
		case ch >= '1' && ch <= '8':
			if int(from>>3) != int(ch-'1') {
				return false
			}
		}
	}
	return true
}

func moverKindAt(board *dragontoothmg.Board, square uint8) (census.Kind, bool) {
	if board.Wtomove {
		return census.KindAt(square, &board.White)
	}
	return census.KindAt(square, &board.Black)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

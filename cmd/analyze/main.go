// Analyzes PGN games and prints per-game accuracy reports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"chess-insight/analysis"
	"chess-insight/pgn"
)

type config struct {
	Workers int    `mapstructure:"ANALYZE_WORKERS"`
	Output  string `mapstructure:"ANALYZE_OUTPUT"`
}

func loadConfig(path string) (*config, error) {
	viper.SetConfigFile(path)
	viper.SetDefault("ANALYZE_WORKERS", 0)
	viper.SetDefault("ANALYZE_OUTPUT", "text")
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file just means defaults.
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, err
		}
	}
	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	cfgPath := flag.String("config", ".env", "Path to the env-style config file")
	flag.Parse()

	logger := newLogger()
	defer logger.Sync()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}
	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-config file] game.pgn [more.pgn ...]")
		os.Exit(2)
	}

	var games []pgn.Game
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			logger.Fatalw("failed to open PGN file", "path", path, "error", err)
		}
		loaded, err := pgn.Load(f)
		f.Close()
		if err != nil {
			logger.Fatalw("failed to parse PGN file", "path", path, "error", err)
		}
		games = append(games, loaded...)
	}
	logger.Infow("loaded games", "files", len(files), "games", len(games))

	moveLists := make([][]dragontoothmg.Move, len(games))
	for i := range games {
		moveLists[i] = games[i].Moves
	}
	reports, err := analysis.AnalyzeGames(context.Background(), moveLists, cfg.Workers)
	if err != nil {
		logger.Fatalw("analysis failed", "error", err)
	}

	if cfg.Output == "json" {
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			logger.Fatalw("failed to encode reports", "error", err)
		}
		fmt.Println(string(out))
		return
	}
	printText(games, reports)
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func printText(games []pgn.Game, reports []*analysis.GameReport) {
	type row struct {
		index int
		label string
	}
	rows := make([]row, len(reports))
	for i := range reports {
		rows[i] = row{index: i, label: gameLabel(games[i], i)}
	}
	// Most accurate games first.
	slices.SortStableFunc(rows, func(a, b row) int {
		aa, bb := averageAccuracy(reports[a.index]), averageAccuracy(reports[b.index])
		switch {
		case aa > bb:
			return -1
		case aa < bb:
			return 1
		default:
			return 0
		}
	})
	for _, r := range rows {
		s := reports[r.index].Score
		fmt.Printf("%s\n", r.label)
		fmt.Printf("  white: accuracy %.1f%%  cp loss %d  mistakes %d  blunders %d\n",
			s.White.Accuracy, s.White.CpLoss, s.White.Mistakes, s.White.Blunders)
		fmt.Printf("  black: accuracy %.1f%%  cp loss %d  mistakes %d  blunders %d\n",
			s.Black.Accuracy, s.Black.CpLoss, s.Black.Mistakes, s.Black.Blunders)
		fmt.Printf("  complexity %d  sharpness %d  rating %d/%d (%s)\n",
			s.Complexity, s.Sharpness, s.Rating.White, s.Rating.Black, s.Rating.Category)
	}
}

func gameLabel(g pgn.Game, index int) string {
	white, black := g.Tags["White"], g.Tags["Black"]
	if white == "" && black == "" {
		return fmt.Sprintf("game %d", index+1)
	}
	return fmt.Sprintf("game %d: %s - %s", index+1, white, black)
}

func averageAccuracy(r *analysis.GameReport) float64 {
	return (r.Score.White.Accuracy + r.Score.Black.Accuracy) / 2
}

package analysis

import (
	"context"
	"fmt"
	"runtime"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"
)

// AnalyzeGames analyzes many games concurrently, at most workers at a
// time (workers <= 0 means one per CPU). Games are independent, so the
// only ordering that matters is inside each move list. Results come
// back in input order.
func AnalyzeGames(ctx context.Context, games [][]dragontoothmg.Move, workers int) ([]*GameReport, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	reports := make([]*GameReport, len(games))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range games {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			report, err := AnalyzeGame(games[i])
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

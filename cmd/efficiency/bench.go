package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_ukeire/game"
	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/trainer"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type benchResult struct {
	shanten int
	best    int // 最佳打法的得分
}

// benchHands deals n hands from seeds seed..seed+n-1 and ranks their discards
// with at most workers hands in flight.
func benchHands(ctx context.Context, n, workers int, seed int64, rules mahjong.Rules) ([]benchResult, error) {
	results := make([]benchResult, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			state := game.NewState(1, true, rand.New(rand.NewSource(seed+int64(i))))
			a := trainer.Analyze(state.Hands[0], rules)
			results[i] = benchResult{shanten: a.Shanten}
			if len(a.Discards) > 0 {
				results[i].best = a.Discards[0].Score
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runBench(ctx context.Context, w io.Writer, n, workers int, seed int64, rules mahjong.Rules) error {
	start := time.Now()
	results, err := benchHands(ctx, n, workers, seed, rules)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Log.Debugf("bench %d hands with %d workers in %v", n, workers, elapsed)

	counts := make(map[int]int)
	scores := make(map[int]int)
	for _, r := range results {
		counts[r.shanten]++
		scores[r.shanten] += r.best
	}

	fmt.Fprintf(w, "%d hands, %d workers, %v\n", n, workers, elapsed.Round(time.Millisecond))
	for shanten := -1; shanten <= mahjong.MaxShanten; shanten++ {
		if counts[shanten] == 0 {
			continue
		}
		color.New(shantenColor(shanten)).Fprintf(w, "shanten %2d", shanten)
		fmt.Fprintf(w, ": %5d hands, average best score %.1f\n", counts[shanten], float64(scores[shanten])/float64(counts[shanten]))
	}
	return nil
}

package logic

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/tennis-predictor/internal/models"
)

// TuneOptions describes the hyper-parameter grid and validation window.
type TuneOptions struct {
	GridK      []float64
	GridScale  []float64
	GridAlpha  []float64
	ValidFrom  int // first validation year, inclusive
	ValidTo    int // last validation year, inclusive
	Workers    int
	OnEvaluate func(TuneResult)
}

// DefaultTuneOptions mirrors the grid the published parameters were chosen from.
func DefaultTuneOptions() TuneOptions {
	return TuneOptions{
		GridK:     []float64{16, 24, 32, 48},
		GridScale: []float64{0.003, 0.004, 0.005, 0.006},
		GridAlpha: []float64{0.1, 0.2, 0.3, 0.4},
		ValidFrom: 2021,
		ValidTo:   2023,
	}
}

// TuneResult is one evaluated grid point.
type TuneResult struct {
	Config  EloConfig
	Metrics Metrics
}

// Tune replays the full history for every grid point and keeps the configuration
// with the lowest symmetric log loss on the validation years.
func Tune(ctx context.Context, matches []models.Match, opts TuneOptions) (TuneResult, error) {
	if len(opts.GridK) == 0 || len(opts.GridScale) == 0 || len(opts.GridAlpha) == 0 {
		return TuneResult{}, fmt.Errorf("tune: empty parameter grid")
	}

	var grid []EloConfig
	for _, k := range opts.GridK {
		for _, scale := range opts.GridScale {
			for _, alpha := range opts.GridAlpha {
				cfg := DefaultEloConfig()
				cfg.K, cfg.Scale, cfg.Alpha = k, scale, alpha
				grid = append(grid, cfg)
			}
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]TuneResult, len(grid))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cfg := range grid {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, scored := ReplayMatches(matches, cfg)

			var valid []ScoredMatch
			for _, s := range scored {
				if y := s.Year(); y >= opts.ValidFrom && y <= opts.ValidTo {
					valid = append(valid, s)
				}
			}
			if len(valid) == 0 {
				return fmt.Errorf("tune: no matches between %d and %d", opts.ValidFrom, opts.ValidTo)
			}

			res := TuneResult{Config: cfg, Metrics: Evaluate(valid)}
			results[i] = res
			if opts.OnEvaluate != nil {
				mu.Lock()
				opts.OnEvaluate(res)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TuneResult{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Metrics.LogLoss < best.Metrics.LogLoss {
			best = r
		}
	}
	return best, nil
}

// Command tune grid-searches the surface Elo parameters on the CSV dataset
// and writes the best line to the params file read by the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/store"
)

var (
	dataDir   = flag.String("data", "data", "Dataset directory holding tennis_atp/ and tennis_wta/")
	out       = flag.String("out", "models/elo_best.txt", "Params file to write")
	workers   = flag.Int("workers", 0, "Parallel grid evaluations (0 = GOMAXPROCS)")
	allDraws  = flag.Bool("all-draws", false, "Keep qualifying and non-tour matches")
	validFrom = flag.Int("valid-from", 2021, "First validation year")
	validTo   = flag.Int("valid-to", 2023, "Last validation year")
	evaluate  = flag.Bool("evaluate", false, "Score the existing params file over the whole history instead of tuning")
)

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	matches, err := store.NewDataset(*dataDir).Matches(ctx)
	if err != nil {
		log.Fatalw("Failed to load matches", "dataDir", *dataDir, "error", err)
	}
	if !*allDraws {
		matches = logic.FilterMainDraw(matches)
	}
	log.Infow("Loaded matches", "count", len(matches), "duration", time.Since(start))

	if *evaluate {
		cfg, err := logic.LoadParams(*out)
		if err != nil {
			log.Fatalw("Failed to read params", "path", *out, "error", err)
		}
		_, scored := logic.ReplayMatches(matches, cfg)
		m := logic.Evaluate(scored)
		fmt.Printf("log_loss=%.6f brier=%.6f accuracy=%.4f samples=%d\n", m.LogLoss, m.Brier, m.Accuracy, m.Samples)
		return
	}

	opts := logic.DefaultTuneOptions()
	opts.Workers = *workers
	opts.ValidFrom, opts.ValidTo = *validFrom, *validTo
	opts.OnEvaluate = func(r logic.TuneResult) {
		log.Infow("Evaluated", "K", r.Config.K, "k", r.Config.Scale, "alpha", r.Config.Alpha, "val_logloss", r.Metrics.LogLoss)
	}

	best, err := logic.Tune(ctx, matches, opts)
	if err != nil {
		log.Fatalw("Tuning failed", "error", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalw("Failed to create params directory", "error", err)
	}
	if err := logic.SaveParams(*out, best); err != nil {
		log.Fatalw("Failed to write params", "path", *out, "error", err)
	}

	fmt.Print(logic.FormatParams(best))
	log.Infow("Best parameters saved", "path", *out,
		"brier", best.Metrics.Brier, "accuracy", best.Metrics.Accuracy, "duration", time.Since(start))
}

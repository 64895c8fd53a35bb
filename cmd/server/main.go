package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/config"
	"github.com/courtside/tennis-predictor/internal/handlers"
	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/store"
	"github.com/courtside/tennis-predictor/internal/web"
	"github.com/courtside/tennis-predictor/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset := store.NewDataset(cfg.DataDir)
	checks := map[string]handlers.Check{}

	var (
		nameSources []logic.PlayerNameSource
		namesCache  logic.NamesCache
		matchSource logic.MatchSource = dataset
		matchSink   worker.MatchSink
	)

	// Optional backends: a failed connection disables the backend instead of the server.
	if cfg.PostgresURL != "" {
		pg, err := store.OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			log.Warnw("Postgres disabled", "error", err)
		} else {
			defer pg.Close()
			players := store.NewPlayerStore(pg)
			if err := players.Migrate(ctx); err != nil {
				log.Warnw("Postgres migration failed", "error", err)
			}
			nameSources = append(nameSources, players)
			checks["postgres"] = pg.Ping
		}
	}
	nameSources = append(nameSources, dataset)

	if cfg.ClickHouseURL != "" {
		ch, err := store.OpenClickHouse(ctx, cfg.ClickHouseURL)
		if err != nil {
			log.Warnw("ClickHouse disabled", "error", err)
		} else {
			defer ch.Close()
			matches := store.NewMatchStore(ch)
			if err := matches.Migrate(ctx); err != nil {
				log.Warnw("ClickHouse migration failed", "error", err)
			}
			if n, err := matches.Count(ctx); err == nil && n > 0 {
				matchSource = matches
			} else {
				log.Infow("ClickHouse has no match history, rating from CSV dataset", "dataDir", cfg.DataDir)
			}
			matchSink = matches
			checks["clickhouse"] = ch.Ping
		}
	}

	if cfg.RedisURL != "" {
		rc, err := store.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Warnw("Redis disabled", "error", err)
		} else {
			defer rc.Close()
			namesCache = store.NewNamesCache(rc, cfg.NamesCacheTTL)
			checks["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
		}
	}

	eloCfg := logic.DefaultEloConfig()
	if tuned, err := logic.LoadParams(cfg.ParamsFile); err != nil {
		log.Infow("Using default Elo parameters", "paramsFile", cfg.ParamsFile, "reason", err)
	} else {
		eloCfg = tuned
	}

	start := time.Now()
	engine, err := logic.BuildEngine(ctx, matchSource, eloCfg, cfg.MainDrawOnly)
	if err != nil {
		log.Warnw("No match history, predictions use the static rating table", "error", err)
		engine = logic.NewSurfaceElo(eloCfg)
	}
	log.Infow("Rating engine ready",
		"matches", engine.Matches(),
		"players", engine.Players(),
		"K", eloCfg.K, "k", eloCfg.Scale, "alpha", eloCfg.Alpha,
		"duration", time.Since(start),
	)

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Sink:          matchSink,
		Ratings:       engine,
		Logger:        logger,
	})
	// The pool outlives the signal context so in-flight requests can still enqueue.
	pool.Start(context.Background())

	h := handlers.New(handlers.Config{
		WorkerPool:  pool,
		Logger:      logger,
		Checks:      checks,
		IngestToken: cfg.IngestToken,
		Page:        web.PageOptions{},
		Players:     logic.NewPlayerService(namesCache, logger, nameSources...),
		Prediction:  logic.NewPredictionService(engine, logic.StaticRatings{}, logger),
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Router(handlers.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
			StaticDir:      cfg.StaticDir,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infow("Server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
	pool.Stop()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Package worker implements the buffered worker pool for match-result ingestion.
// Submitted results are queued, persisted in batches and then applied to the
// live rating engine, so HTTP handlers never wait on ClickHouse.
package worker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/models"
)

// Prometheus metrics
var (
	matchesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_matches_ingested_total",
		Help: "Total number of match results accepted into the queue",
	})

	matchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_matches_processed_total",
		Help: "Total number of match results applied by workers",
	})

	matchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_matches_failed_total",
		Help: "Total number of match results that failed to persist",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tennis_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tennis_batch_insert_duration_seconds",
		Help:    "Duration of match batch inserts",
		Buckets: prometheus.DefBuckets,
	})

	matchesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_matches_load_shed_total",
		Help: "Total number of match results dropped due to load shedding",
	})
)

// MatchSink persists a batch of matches.
type MatchSink interface {
	InsertMatches(ctx context.Context, matches []models.Match) error
}

// RatingUpdater applies a single result to the live ratings.
type RatingUpdater interface {
	ProcessMatch(a, b, surface string, y int) (delta, pA float64)
}

// Job represents a unit of work for the worker pool
type Job struct {
	ID        uuid.UUID
	Match     *models.Match
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Sink          MatchSink // optional; without it results only update ratings
	Ratings       RatingUpdater
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async match processing
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
	// ratingsMu serialises rating updates across workers
	ratingsMu sync.Mutex
}

// NewPool creates a new worker pool. With a RatingUpdater configured the
// pool runs a single worker, so results reach the engine in submission order.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	if cfg.Ratings != nil && cfg.WorkerCount > 1 {
		cfg.Logger.Sugar().Warnw("Rating updates need ordered replay, using one worker",
			"requested", cfg.WorkerCount)
		cfg.WorkerCount = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	// Start queue depth reporter
	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the worker pool, flushing queued matches
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a match to the queue. It never blocks: when the queue is full
// or the pool is stopping the match is dropped and false is returned.
func (p *Pool) Enqueue(match *models.Match) bool {
	job := Job{
		ID:        uuid.New(),
		Match:     match,
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue match (pool stopped)", "error", r)
		}
	}()

	if p.ctx.Err() != nil {
		p.logger.Warn("Worker pool context canceled, dropping match")
		matchesLoadShed.Inc()
		return false
	}

	select {
	case p.jobQueue <- job:
		matchesIngested.Inc()
		return true
	default:
		p.logger.Warnw("Worker queue full, dropping match", "playerA", match.PlayerA, "playerB", match.PlayerB)
		matchesLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debugw("Worker started", "worker", id)

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			matchesFailed.Add(float64(len(batch)))
		} else {
			p.logger.Infow("Batch processed", "worker", id, "batchSize", len(batch), "duration", time.Since(start))
			matchesProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			// Drain what is already queued so accepted results are not lost
			for {
				select {
				case job, ok := <-p.jobQueue:
					if !ok {
						flush()
						return
					}
					batch = append(batch, job)
					if len(batch) >= p.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// processBatch persists a batch and, only if that succeeds, applies it to the ratings
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 {
		return nil
	}

	matches := make([]models.Match, len(batch))
	for i, job := range batch {
		matches[i] = *job.Match
	}
	// results arriving out of order within a batch are applied chronologically
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})

	if p.config.Sink != nil {
		if err := p.config.Sink.InsertMatches(context.Background(), matches); err != nil {
			return err
		}
	}

	if p.config.Ratings != nil {
		p.ratingsMu.Lock()
		for _, m := range matches {
			p.config.Ratings.ProcessMatch(m.PlayerA, m.PlayerB, m.Surface, m.Y)
		}
		p.ratingsMu.Unlock()
	}
	return nil
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

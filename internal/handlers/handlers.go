package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/models"
	"github.com/courtside/tennis-predictor/internal/web"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the match ingestion worker pool
type IngestQueue interface {
	Enqueue(match *models.Match) bool
	QueueDepth() int
}

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type Config struct {
	WorkerPool IngestQueue
	Logger     *zap.Logger
	// Checks are run by /ready, keyed by dependency name
	Checks map[string]Check
	// IngestToken guards match ingestion. Empty disables the endpoint.
	IngestToken string
	Page        web.PageOptions
	// Services
	Players    logic.PlayerService
	Prediction logic.PredictionService
}

type Handler struct {
	pool        IngestQueue
	logger      *zap.SugaredLogger
	validate    *validator.Validate
	checks      map[string]Check
	ingestToken string
	page        web.PageOptions
	started     time.Time
	players     logic.PlayerService
	prediction  logic.PredictionService
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		pool:        cfg.WorkerPool,
		logger:      cfg.Logger.Sugar(),
		validate:    validator.New(),
		checks:      cfg.Checks,
		ingestToken: cfg.IngestToken,
		page:        cfg.Page,
		started:     time.Now(),
		players:     cfg.Players,
		prediction:  cfg.Prediction,
	}
}

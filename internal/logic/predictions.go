package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/models"
)

// ErrNoEngine is returned when no model is available to answer predictions.
var ErrNoEngine = errors.New("prediction engine not available")

// ErrSamePlayer is returned when both sides of a prediction name the same player.
var ErrSamePlayer = errors.New("players must differ")

var predictionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tennis_predictions_total",
	Help: "Total number of predictions served",
}, []string{"surface", "source"})

type predictionService struct {
	engine   *SurfaceElo
	fallback WinModel
	logger   *zap.SugaredLogger
}

// NewPredictionService predicts with the Elo engine once it has seen at least
// one match and with fallback before that. Either may be nil.
func NewPredictionService(engine *SurfaceElo, fallback WinModel, logger *zap.Logger) PredictionService {
	return &predictionService{engine: engine, fallback: fallback, logger: logger.Sugar()}
}

func (s *predictionService) model() (WinModel, string) {
	if s.engine != nil && s.engine.Matches() > 0 {
		return s.engine, "elo"
	}
	if s.fallback != nil {
		return s.fallback, "static"
	}
	return nil, "none"
}

func (s *predictionService) Source() string {
	_, source := s.model()
	return source
}

func (s *predictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	model, source := s.model()
	if model == nil {
		return nil, ErrNoEngine
	}
	p1 := strings.TrimSpace(req.Player1)
	p2 := strings.TrimSpace(req.Player2)
	if p1 == "" || p2 == "" {
		return nil, fmt.Errorf("predict: both players are required")
	}
	if p1 == p2 {
		return nil, ErrSamePlayer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prob := model.WinProbability(p1, p2, req.Surface.MatchSurface())

	res := &models.PredictionResult{
		ID:      uuid.New().String(),
		Player1: p1,
		Player2: p2,
		Surface: req.Surface,
	}
	if prob > 0.5 {
		res.Winner = p1
		res.Confidence = round3(prob)
	} else {
		res.Winner = p2
		res.Confidence = round3(1 - prob)
	}

	predictionsServed.WithLabelValues(string(req.Surface), source).Inc()
	s.logger.Debugw("Prediction served", "id", res.ID, "player1", p1, "player2", p2,
		"surface", req.Surface, "source", source, "winner", res.Winner, "confidence", res.Confidence)
	return res, nil
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// BuildEngine replays the match history into a fresh engine.
func BuildEngine(ctx context.Context, src MatchSource, cfg EloConfig, mainDrawOnly bool) (*SurfaceElo, error) {
	matches, err := src.Matches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	if mainDrawOnly {
		matches = FilterMainDraw(matches)
	}
	engine, _ := ReplayMatches(matches, cfg)
	return engine, nil
}

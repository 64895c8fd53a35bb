package logic

import (
	"context"

	"github.com/courtside/tennis-predictor/internal/models"
)

// PredictionService answers head-to-head predictions.
type PredictionService interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
	// Source names the model currently backing predictions ("elo", "static" or "none").
	Source() string
}

// PlayerService serves the autocomplete name list.
type PlayerService interface {
	GetPlayerNames(ctx context.Context) ([]string, error)
}

// PlayerNameSource is one backing store for player names.
type PlayerNameSource interface {
	PlayerNames(ctx context.Context) ([]string, error)
}

// NamesCache stores the resolved name list between requests.
type NamesCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, names []string) error
}

// MatchSource provides the match history the rating engine is built from.
type MatchSource interface {
	Matches(ctx context.Context) ([]models.Match, error)
}

// WinModel gives the probability that a beats b on a match-history surface.
type WinModel interface {
	WinProbability(a, b, surface string) float64
}

package handlers

import (
	"context"

	"github.com/courtside/tennis-predictor/internal/models"
)

// MockIngestQueue implements IngestQueue for testing
type MockIngestQueue struct {
	EnqueueFunc func(match *models.Match) bool
	Enqueued    []*models.Match
	Depth       int
}

func (m *MockIngestQueue) Enqueue(match *models.Match) bool {
	if m.EnqueueFunc != nil && !m.EnqueueFunc(match) {
		return false
	}
	m.Enqueued = append(m.Enqueued, match)
	return true
}

func (m *MockIngestQueue) QueueDepth() int { return m.Depth }

// MockPlayerService
type MockPlayerService struct {
	GetPlayerNamesFunc func(ctx context.Context) ([]string, error)
}

func (m *MockPlayerService) GetPlayerNames(ctx context.Context) ([]string, error) {
	if m.GetPlayerNamesFunc != nil {
		return m.GetPlayerNamesFunc(ctx)
	}
	return []string{"Novak Djokovic", "Rafael Nadal", "Roger Federer"}, nil
}

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
	SourceValue string
	Requests    []models.PredictionRequest
}

func (m *MockPredictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	m.Requests = append(m.Requests, req)
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.PredictionResult{
		ID:         "mock-id",
		Winner:     req.Player1,
		Player1:    req.Player1,
		Player2:    req.Player2,
		Surface:    req.Surface,
		Confidence: 0.6,
	}, nil
}

func (m *MockPredictionService) Source() string {
	if m.SourceValue == "" {
		return "elo"
	}
	return m.SourceValue
}

package models

// PredictionRequest is the body of POST /api/predict.
type PredictionRequest struct {
	Player1 string  `json:"player1" validate:"required"`
	Player2 string  `json:"player2" validate:"required"`
	Surface Surface `json:"surface" validate:"required,oneof=grass hard clay"`
}

// PredictionResult is returned by POST /api/predict. Clients only rely on Winner.
type PredictionResult struct {
	ID         string  `json:"id,omitempty"`
	Winner     string  `json:"winner"`
	Player1    string  `json:"player1,omitempty"`
	Player2    string  `json:"player2,omitempty"`
	Surface    Surface `json:"surface,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

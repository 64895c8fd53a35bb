// Package ui holds the page controllers of the predictor: the player name
// store, the two autocomplete fields, the surface selector and the predict
// button. Controllers talk to the page only through the view interfaces
// below, so they run the same against the browser DOM and against fakes.
package ui

import (
	"context"

	"github.com/courtside/tennis-predictor/internal/models"
)

// Styled is any element whose CSS classes the controllers toggle.
type Styled interface {
	SetClass(name string, on bool)
}

// Input is a text field.
type Input interface {
	Styled
	Value() string
	SetValue(v string)
	// Contains reports whether target is the field itself or one of its children.
	Contains(target any) bool
}

// Panel is the suggestion list below an input.
type Panel interface {
	// Show replaces the rows with items; pick is called with the clicked row.
	Show(items []string, pick func(name string))
	Hide()
	Contains(target any) bool
}

// Button is a clickable control with a text label.
type Button interface {
	Styled
	SetLabel(label string)
	SetEnabled(enabled bool)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// NamesSource loads the player name list.
type NamesSource interface {
	PlayerNames(ctx context.Context) ([]string, error)
}

// Predictor requests a prediction from the backend.
type Predictor interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
}

package ui

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/models"
)

// Labels and messages shown by the predict button.
const (
	PredictLabel    = "Predict"
	PredictingLabel = "Predicting..."
	WinnerClass     = "winner"

	MsgSelectBoth      = "Please select both players"
	MsgSelectDifferent = "Please select two different players"
	MsgPredictFailed   = "Error making prediction"
)

// PredictController validates the two players and highlights the predicted winner.
type PredictController struct {
	state     *State
	player1   Input
	player2   Input
	button    Button
	alerts    Alerter
	predictor Predictor
	logger    *zap.SugaredLogger
}

type PredictConfig struct {
	State     *State
	Player1   Input
	Player2   Input
	Button    Button
	Alerts    Alerter
	Predictor Predictor
	Logger    *zap.Logger
}

func NewPredictController(cfg PredictConfig) *PredictController {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &PredictController{
		state:     cfg.State,
		player1:   cfg.Player1,
		player2:   cfg.Player2,
		button:    cfg.Button,
		alerts:    cfg.Alerts,
		predictor: cfg.Predictor,
		logger:    cfg.Logger.Sugar(),
	}
}

// Submit is the click handler of the predict button. It blocks for the
// duration of the request.
func (c *PredictController) Submit(ctx context.Context) {
	p1 := strings.TrimSpace(c.player1.Value())
	p2 := strings.TrimSpace(c.player2.Value())

	if p1 == "" || p2 == "" {
		c.alerts.Alert(MsgSelectBoth)
		return
	}
	if p1 == p2 {
		c.alerts.Alert(MsgSelectDifferent)
		return
	}

	c.player1.SetClass(WinnerClass, false)
	c.player2.SetClass(WinnerClass, false)

	c.button.SetLabel(PredictingLabel)
	c.button.SetEnabled(false)
	defer func() {
		c.button.SetLabel(PredictLabel)
		c.button.SetEnabled(true)
	}()

	result, err := c.predictor.Predict(ctx, models.PredictionRequest{
		Player1: p1,
		Player2: p2,
		Surface: c.state.Surface(),
	})
	if err != nil {
		c.logger.Errorw("Prediction error", "player1", p1, "player2", p2, "error", err)
		c.alerts.Alert(MsgPredictFailed)
		return
	}

	// Any winner other than player1 highlights player2.
	if result.Winner == p1 {
		c.player1.SetClass(WinnerClass, true)
	} else {
		c.player2.SetClass(WinnerClass, true)
	}
}

package ui

import (
	"context"

	"go.uber.org/zap"
)

// Page is the set of elements the app binds to.
type Page struct {
	Player1      Input
	Player2      Input
	Suggestions1 Panel
	Suggestions2 Panel
	SurfaceBtn   Button
	PredictBtn   Button
	CourtOutline Styled
	Title        Styled
	Alerts       Alerter
}

// App wires the controllers of one page load.
type App struct {
	State     *State
	Complete1 *Autocomplete
	Complete2 *Autocomplete
	Surface   *SurfaceSelector
	Predict   *PredictController
	page      Page
	names     NamesSource
	predictor Predictor
	logger    *zap.Logger
}

func NewApp(page Page, names NamesSource, predictor Predictor, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{page: page, names: names, predictor: predictor, logger: logger}
}

// Start loads the names, then builds the controllers and paints the initial
// surface. Event registration is left to the caller.
func (a *App) Start(ctx context.Context) {
	store := NewNameStore(a.logger)
	store.Load(ctx, a.names)

	a.State = NewState(store)
	a.Complete1 = NewAutocomplete(a.page.Player1, a.page.Suggestions1, store)
	a.Complete2 = NewAutocomplete(a.page.Player2, a.page.Suggestions2, store)
	a.Surface = NewSurfaceSelector(a.State, a.page.SurfaceBtn, a.page.CourtOutline, a.page.Title)
	a.Predict = NewPredictController(PredictConfig{
		State:     a.State,
		Player1:   a.page.Player1,
		Player2:   a.page.Player2,
		Button:    a.page.PredictBtn,
		Alerts:    a.page.Alerts,
		Predictor: a.predictor,
		Logger:    a.logger,
	})
	a.Surface.Render()
}

// HandleDocumentClick forwards a page-wide click to both autocompletes.
func (a *App) HandleDocumentClick(target any) {
	a.Complete1.HandleDocumentClick(target)
	a.Complete2.HandleDocumentClick(target)
}

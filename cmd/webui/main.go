//go:build js && wasm

// Command webui is the browser controller of the predictor page, built with
// GOOS=js GOARCH=wasm and served as /static/main.wasm.
package main

import (
	"context"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/client"
	"github.com/courtside/tennis-predictor/internal/ui"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	player1, player2 := byID("player1"), byID("player2")
	surfaceBtn, predictBtn := query(".btn-surface"), query(".btn-predict")

	page := ui.Page{
		Player1:      player1,
		Player2:      player2,
		Suggestions1: newPanel("suggestions1"),
		Suggestions2: newPanel("suggestions2"),
		SurfaceBtn:   surfaceBtn,
		PredictBtn:   predictBtn,
		CourtOutline: query(".court-outline"),
		Title:        query(".title"),
		Alerts:       alerter{},
	}

	api := client.New(client.Config{
		BaseURL: js.Global().Get("location").Get("origin").String(),
	})
	app := ui.NewApp(page, api, api, logger)

	ctx := context.Background()
	// Runs before any listener exists, so blocking on the names request is fine.
	app.Start(ctx)

	player1.on("input", func(this js.Value, args []js.Value) any {
		app.Complete1.HandleInput()
		return nil
	})
	player2.on("input", func(this js.Value, args []js.Value) any {
		app.Complete2.HandleInput()
		return nil
	})
	element{v: js.Global().Get("document")}.on("click", func(this js.Value, args []js.Value) any {
		app.HandleDocumentClick(args[0].Get("target"))
		return nil
	})
	surfaceBtn.on("click", func(this js.Value, args []js.Value) any {
		app.Surface.Advance()
		return nil
	})
	predictBtn.on("click", func(this js.Value, args []js.Value) any {
		// Callbacks must not block on the network.
		go app.Predict.Submit(ctx)
		return nil
	})

	select {}
}

// Package web renders the predictor page and ships its stylesheet.
package web

import (
	"context"
	"embed"
	"io"

	"github.com/a-h/templ"

	"github.com/courtside/tennis-predictor/internal/models"
)

//go:embed static/styles.css
var Static embed.FS

// PageOptions configures the index page.
type PageOptions struct {
	// WasmPath is where the browser controller is served from.
	WasmPath string
	// Surface is painted before the controller starts.
	Surface models.Surface
}

// Index is the single page of the app. Element ids and classes are the ones
// the browser controller binds to.
func Index(opts PageOptions) templ.Component {
	if opts.WasmPath == "" {
		opts.WasmPath = "/static/main.wasm"
	}
	if !opts.Surface.Valid() {
		opts.Surface = models.DefaultSurface
	}
	class := opts.Surface.Class()

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Tennis Match Predictor</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <h1 class="title `+class+`">Tennis Match Predictor</h1>
      <div class="court-outline `+class+`">
        <div class="player-field">
          <input id="player1" type="text" placeholder="Player 1" autocomplete="off"/>
          <div id="suggestions1" class="suggestions"></div>
        </div>
        <span class="versus">vs</span>
        <div class="player-field">
          <input id="player2" type="text" placeholder="Player 2" autocomplete="off"/>
          <div id="suggestions2" class="suggestions"></div>
        </div>
      </div>
      <div class="actions">
        <button type="button" class="btn-surface `+class+`">`+templ.EscapeString(opts.Surface.Label())+`</button>
        <button type="button" class="btn-predict">Predict</button>
      </div>
    </main>

    <script src="/static/wasm_exec.js"></script>
    <script>
      const go = new Go();
      WebAssembly.instantiateStreaming(fetch("`+templ.EscapeString(opts.WasmPath)+`"), go.importObject)
        .then((result) => go.run(result.instance))
        .catch((err) => console.error("Error loading predictor:", err));
    </script>
  </body>
</html>`)
		return err
	})
}

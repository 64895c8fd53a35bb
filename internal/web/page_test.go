package web

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tennis-predictor/internal/models"
)

func render(t *testing.T, opts PageOptions) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Index(opts).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestIndex_Elements(t *testing.T) {
	doc := render(t, PageOptions{})

	for _, sel := range []string{"#player1", "#player2", "#suggestions1", "#suggestions2", ".btn-surface", ".btn-predict", ".court-outline", ".title"} {
		assert.Equal(t, 1, doc.Find(sel).Length(), "expected exactly one %s", sel)
	}
	assert.Equal(t, "Predict", doc.Find(".btn-predict").Text())
	assert.Equal(t, "Grass", doc.Find(".btn-surface").Text())
	assert.True(t, doc.Find(".court-outline").HasClass("surface-grass"))
	assert.Contains(t, doc.Find("script").Last().Text(), "/static/main.wasm")
}

func TestIndex_Surface(t *testing.T) {
	doc := render(t, PageOptions{Surface: models.SurfaceClay, WasmPath: "/assets/app.wasm"})

	assert.Equal(t, "Clay", doc.Find(".btn-surface").Text())
	assert.True(t, doc.Find(".title").HasClass("surface-clay"))
	assert.False(t, doc.Find(".title").HasClass("surface-grass"))
	assert.Contains(t, doc.Find("script").Last().Text(), "/assets/app.wasm")
}

func TestStaticStylesheet(t *testing.T) {
	css, err := Static.ReadFile("static/styles.css")
	require.NoError(t, err)
	for _, s := range models.Surfaces {
		assert.Contains(t, string(css), "."+s.Class())
	}
	assert.Contains(t, string(css), ".winner")
}

package handlers

import (
	"net/http"

	"github.com/courtside/tennis-predictor/internal/web"
)

// Index serves the predictor page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Index(h.page).Render(r.Context(), w); err != nil {
		h.logger.Errorw("Failed to render index page", "error", err)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/courtside/tennis-predictor/internal/models"
	"github.com/courtside/tennis-predictor/internal/store"
)

// IngestMatches handles POST /api/v1/matches
// @Summary Ingest Match Results
// @Description Accepts a JSON array or newline-separated JSON match results
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security IngestToken
// @Param body body []models.Match true "Matches"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /v1/matches [post]
func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	var raws []json.RawMessage
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid JSON array")
			return
		}
	} else {
		for _, line := range strings.Split(string(trimmed), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				raws = append(raws, json.RawMessage(line))
			}
		}
	}

	processed, rejected := 0, 0
	for i, raw := range raws {
		// results without y are read winner-first, like the CSV history
		match := models.Match{Y: 1}
		if err := json.Unmarshal(raw, &match); err != nil {
			h.logger.Warnw("Failed to unmarshal match in batch", "error", err, "index", i)
			rejected++
			continue
		}
		normalizeMatch(&match)

		if err := h.validate.Struct(&match); err != nil {
			h.logger.Warnw("Validation failed for match", "error", err, "index", i)
			rejected++
			continue
		}

		if !h.pool.Enqueue(&match) {
			h.logger.Warn("Worker pool queue full, dropping remaining matches in batch")
			break
		}
		processed++
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]interface{}{
		"status":    "accepted",
		"processed": processed,
		"rejected":  rejected,
	})
}

// normalizeMatch brings a submitted result into the shape of the CSV history.
func normalizeMatch(m *models.Match) {
	m.PlayerA = store.NormalizeName(m.PlayerA)
	m.PlayerB = store.NormalizeName(m.PlayerB)
	if s, err := models.ParseSurface(m.Surface); err == nil {
		m.Surface = s.MatchSurface()
	} else {
		m.Surface = store.NormalizeSurface(m.Surface)
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}
}

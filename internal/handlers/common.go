package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check all configured dependencies
	checks := make(map[string]bool, len(h.checks)+1)
	for name, check := range h.checks {
		err := check(ctx)
		if err != nil {
			h.logger.Warnw("Readiness check failed", "dependency", name, "error", err)
		}
		checks[name] = err == nil
	}
	checks["model"] = h.prediction != nil && h.prediction.Source() != "none"

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	body := map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	}
	if h.prediction != nil {
		body["model"] = h.prediction.Source()
	}
	if h.pool != nil {
		body["queueDepth"] = h.pool.QueueDepth()
	}
	h.jsonResponse(w, status, body)
}

// IngestAuthMiddleware validates the shared ingestion token
func (h *Handler) IngestAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.ingestToken == "" {
			h.errorResponse(w, http.StatusServiceUnavailable, "Match ingestion is disabled")
			return
		}

		token := r.Header.Get("X-Ingest-Token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}

		if token == "" {
			h.errorResponse(w, http.StatusUnauthorized, "Missing ingest token")
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.ingestToken)) != 1 {
			h.logger.Warnw("Rejected ingest token", "remote", r.RemoteAddr)
			h.errorResponse(w, http.StatusUnauthorized, "Invalid ingest token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

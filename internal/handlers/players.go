package handlers

import "net/http"

// GetPlayerNames handles GET /api/players/names
// @Summary List Player Names
// @Description Sorted list of player names for autocomplete
// @Tags Players
// @Produce json
// @Success 200 {array} string
// @Router /players/names [get]
func (h *Handler) GetPlayerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.players.GetPlayerNames(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load player names", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load players")
		return
	}
	if names == nil {
		names = []string{}
	}

	h.jsonResponse(w, http.StatusOK, names)
}

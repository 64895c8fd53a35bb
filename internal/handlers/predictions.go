package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/courtside/tennis-predictor/internal/logic"
	"github.com/courtside/tennis-predictor/internal/models"
)

// Predict handles POST /api/predict
// @Summary Predict Match Winner
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.PredictionRequest true "Players and surface"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Model unavailable"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Player1 = strings.TrimSpace(req.Player1)
	req.Player2 = strings.TrimSpace(req.Player2)
	req.Surface = models.Surface(strings.ToLower(strings.TrimSpace(string(req.Surface))))

	if err := h.validate.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	res, err := h.prediction.Predict(r.Context(), req)
	switch {
	case errors.Is(err, logic.ErrSamePlayer):
		h.errorResponse(w, http.StatusBadRequest, "player1 and player2 must differ")
		return
	case err != nil:
		h.logger.Errorw("Prediction failed", "error", err, "player1", req.Player1, "player2", req.Player2, "surface", req.Surface)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to make prediction")
		return
	}

	h.jsonResponse(w, http.StatusOK, res)
}

// validationMessage turns the first failed rule into a client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "nefield":
		return field + " must differ from " + strings.ToLower(fe.Param())
	default:
		return field + " is invalid"
	}
}

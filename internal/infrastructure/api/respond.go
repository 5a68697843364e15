package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"course-order-export/internal/domain"

	"github.com/rs/zerolog"
)

const notAuthenticatedMessage = "Not authenticated. Please reinstall the app."

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto the JSON error response
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var fetchErr *domain.UpstreamFetchError

	switch {
	case errors.Is(err, domain.ErrMissingParameter):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required parameters"})
	case errors.Is(err, domain.ErrInvalidParameter):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: notAuthenticatedMessage})
	case errors.As(err, &fetchErr):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fetchErr.Error()})
	default:
		logger.Error().Err(err).Msg("Unhandled request error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

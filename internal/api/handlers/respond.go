package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

type errResponse struct {
	Error string `json:"error"`
}

// writeError maps a service error onto its HTTP status and stable message.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.Status(err), errResponse{Error: apperr.Message(err)})
}

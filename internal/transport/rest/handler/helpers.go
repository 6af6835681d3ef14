package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"learnlens/internal/model"
)

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Messages
// pass through verbatim so the client can show which section or step
// failed.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var oracleErr *model.OracleError
	var configErr *model.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &configErr):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &oracleErr):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

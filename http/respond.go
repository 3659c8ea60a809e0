package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"finance-engine/service"
	"finance-engine/solver"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the calculation error taxonomy onto HTTP statuses:
// malformed requests are 400, mathematically unanswerable ones are 422.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrLengthMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrDomain),
		errors.Is(err, solver.ErrNonConvergence),
		errors.Is(err, solver.ErrSingularDerivative):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

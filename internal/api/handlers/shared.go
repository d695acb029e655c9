// Package handlers provides HTTP handlers for the investment tracking API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/1Cealus/InvestmentTracker/internal/api/response"
	"github.com/1Cealus/InvestmentTracker/internal/apperrors"
	"github.com/1Cealus/InvestmentTracker/internal/validation"
)

// parseJSON decodes the request body into a value of type T.
func parseJSON[T any](r *http.Request) (T, error) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// respondServiceError translates service errors into HTTP responses.
// Validation failures carry their field map as details; everything
// unexpected becomes an opaque 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvestmentNotFound):
		response.RespondError(w, http.StatusNotFound, "Investment not found", nil)
	case errors.Is(err, apperrors.ErrInvalidID):
		response.RespondError(w, http.StatusBadRequest, "invalid ID format", nil)
	case errors.Is(err, apperrors.ErrUsernameTaken):
		response.RespondError(w, http.StatusBadRequest, "Username is already taken", nil)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.RespondError(w, http.StatusUnauthorized, "Incorrect username or password", nil)
	case errors.Is(err, apperrors.ErrEmptyImport):
		response.RespondError(w, http.StatusBadRequest, "No data to import.", nil)
	case errors.Is(err, apperrors.ErrFailedToRetrieveInvestments):
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve investments", nil)
	case errors.Is(err, apperrors.ErrFailedToRetrieveInvestment):
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve investment", nil)
	case errors.Is(err, apperrors.ErrFailedToRetrieveStats):
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve statistics", nil)
	default:
		response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

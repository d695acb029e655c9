package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/1Cealus/InvestmentTracker/internal/api/middleware"
	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/api/response"
	"github.com/1Cealus/InvestmentTracker/internal/service"
	"github.com/1Cealus/InvestmentTracker/internal/validation"
)

// InvestmentHandler handles investment-related HTTP requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// ImportResponse represents the result of a batch import
type ImportResponse struct {
	Message       string `json:"message"`
	ImportedCount int    `json:"importedCount"`
}

// List returns all investments owned by the authenticated user,
// newest timestamp first.
//
// Endpoint: GET /api/investments
// Response: 200 OK with a list of investments (empty list when none)
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	investments, err := h.investmentService.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// Get returns a single investment by ID. An ID owned by another user is
// reported as 404, the same as a missing one.
//
// Endpoint: GET /api/investments/{id}
func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	investment, err := h.investmentService.GetByID(r.Context(), id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// Create records a new investment for the authenticated user.
//
// Endpoint: POST /api/investments
// Response: 201 Created with the stored investment
// Error: 400 Bad Request with per-field details when validation fails
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	req, err := parseJSON[request.InvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	investment, err := h.investmentService.Create(r.Context(), req, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// Import records a batch of investments in a single transaction. One invalid
// item rejects the entire batch.
//
// Endpoint: POST /api/investments/import
// Response: 201 Created with ImportResponse
// Error: 400 Bad Request for an empty batch or any invalid item
func (h *InvestmentHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	reqs, err := parseJSON[[]request.InvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	imported, err := h.investmentService.ImportBatch(r.Context(), reqs, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, ImportResponse{
		Message:       fmt.Sprintf("%d investments imported successfully.", len(imported)),
		ImportedCount: len(imported),
	})
}

// Update overwrites name, date and amount of an owned investment.
//
// Endpoint: PUT /api/investments/{id}
// Response: 200 OK with the updated investment
func (h *InvestmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	req, err := parseJSON[request.InvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	investment, err := h.investmentService.Update(r.Context(), id, req, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// Delete removes an owned investment.
//
// Endpoint: DELETE /api/investments/{id}
// Response: 204 No Content on deletion, 404 when the ID does not resolve
// to an owned investment
func (h *InvestmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	deleted, err := h.investmentService.Delete(r.Context(), id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !deleted {
		response.RespondError(w, http.StatusNotFound, "Investment not found", nil)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// DeleteAll removes every investment owned by the authenticated user.
// Idempotent.
//
// Endpoint: DELETE /api/investments
// Response: 204 No Content
func (h *InvestmentHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if err := h.investmentService.DeleteAll(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Stats returns aggregate figures over the user's investments: total amount,
// average amount, count and the date of the most recently recorded entry.
//
// Endpoint: GET /api/investments/stats
func (h *InvestmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	stats, err := h.investmentService.Stats(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stats)
}

// Search returns the user's investments whose name contains the given
// substring, case-insensitively.
//
// Endpoint: GET /api/investments/search?name=...
func (h *InvestmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	investments, err := h.investmentService.SearchByName(r.Context(), userID, r.URL.Query().Get("name"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// DateRange returns the user's investments whose date falls inside the
// inclusive [startDate, endDate] range.
//
// Endpoint: GET /api/investments/date-range?startDate=...&endDate=...
// Error: 400 Bad Request when either date is missing, malformed, or the
// range is inverted
func (h *InvestmentHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	query := r.URL.Query()
	investments, err := h.investmentService.ByDateRange(r.Context(), userID, query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

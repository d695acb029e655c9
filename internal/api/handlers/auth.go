package handlers

import (
	"net/http"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/api/response"
	"github.com/1Cealus/InvestmentTracker/internal/service"
)

// AuthHandler handles account registration and login HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// MessageResponse represents a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new account from a username/password pair.
//
// Endpoint: POST /api/auth/register
// Response: 200 OK with MessageResponse
// Error: 400 Bad Request when validation fails or the username is taken
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AuthRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// Login verifies credentials and issues a bearer token.
//
// Endpoint: POST /api/auth/login
// Response: 200 OK with TokenResponse
// Error: 401 Unauthorized for an unknown username or wrong password
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AuthRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, TokenResponse{Token: token})
}

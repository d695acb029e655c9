package validation

import (
	"strings"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
)

// ValidateAuthRequest validates a registration or login body.
// Both username and password are required.
func ValidateAuthRequest(req request.AuthRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Username) == "" {
		errors["username"] = "username is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

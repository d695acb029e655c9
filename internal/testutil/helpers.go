package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/1Cealus/InvestmentTracker/internal/repository"
	"github.com/1Cealus/InvestmentTracker/internal/service"
)

// TestJWTSecret is the signing secret used by services built through this
// package.
const TestJWTSecret = "test-secret"

// MakeUsername returns a unique username with the given prefix.
func MakeUsername(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)

	return service.NewInvestmentService(
		investmentRepo,
	)
}

func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)

	return service.NewAuthService(
		userRepo,
		TestJWTSecret,
		time.Hour,
	)
}

package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/validation"
)

func dec(t *testing.T, value string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("Invalid decimal literal %q: %v", value, err)
	}
	return &d
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	return verr.Fields
}

// TestValidateInvestment tests the create/import item rules.
//
// WHY: The amount rule applies to the effective amount, so a request with
// only quantity and purchasePrice is valid while one with neither source of
// an amount is not.
func TestValidateInvestment(t *testing.T) {
	t.Run("accepts a minimal valid request", func(t *testing.T) {
		err := validation.ValidateInvestment(request.InvestmentRequest{
			Name:   "Apple Inc.",
			Date:   "2024-03-01",
			Amount: dec(t, "1500"),
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts quantity and price in place of amount", func(t *testing.T) {
		err := validation.ValidateInvestment(request.InvestmentRequest{
			Name:          "Apple Inc.",
			Date:          "2024-03-01",
			Quantity:      dec(t, "10"),
			PurchasePrice: dec(t, "150.00"),
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		fields := fieldErrors(t, validation.ValidateInvestment(request.InvestmentRequest{
			Name: "   ",
			Date: "03/01/2024",
		}))

		for _, field := range []string{"name", "date", "amount"} {
			if _, ok := fields[field]; !ok {
				t.Errorf("Expected %q error, got %v", field, fields)
			}
		}
	})

	t.Run("rejects negative quantity and price", func(t *testing.T) {
		fields := fieldErrors(t, validation.ValidateInvestment(request.InvestmentRequest{
			Name:          "Apple Inc.",
			Date:          "2024-03-01",
			Amount:        dec(t, "100"),
			Quantity:      dec(t, "-1"),
			PurchasePrice: dec(t, "-2"),
		}))

		if _, ok := fields["quantity"]; !ok {
			t.Errorf("Expected quantity error, got %v", fields)
		}
		if _, ok := fields["purchasePrice"]; !ok {
			t.Errorf("Expected purchasePrice error, got %v", fields)
		}
	})

	t.Run("rejects a malformed timestamp", func(t *testing.T) {
		fields := fieldErrors(t, validation.ValidateInvestment(request.InvestmentRequest{
			Name:      "Apple Inc.",
			Date:      "2024-03-01",
			Amount:    dec(t, "100"),
			Timestamp: "2024-03-01 10:30:00", // space, not T
		}))

		if _, ok := fields["timestamp"]; !ok {
			t.Errorf("Expected timestamp error, got %v", fields)
		}
	})

	t.Run("rejects notes beyond 1024 characters", func(t *testing.T) {
		fields := fieldErrors(t, validation.ValidateInvestment(request.InvestmentRequest{
			Name:   "Apple Inc.",
			Date:   "2024-03-01",
			Amount: dec(t, "100"),
			Notes:  strings.Repeat("x", 1025),
		}))

		if _, ok := fields["notes"]; !ok {
			t.Errorf("Expected notes error, got %v", fields)
		}
	})
}

// TestValidateInvestmentUpdate tests the update rules.
//
// WHY: Updates never derive the amount, so quantity and purchasePrice cannot
// substitute for it here.
func TestValidateInvestmentUpdate(t *testing.T) {
	t.Run("requires an explicit amount", func(t *testing.T) {
		fields := fieldErrors(t, validation.ValidateInvestmentUpdate(request.InvestmentRequest{
			Name:          "Apple Inc.",
			Date:          "2024-03-01",
			Quantity:      dec(t, "10"),
			PurchasePrice: dec(t, "150.00"),
		}))

		if _, ok := fields["amount"]; !ok {
			t.Errorf("Expected amount error, got %v", fields)
		}
	})

	t.Run("accepts a complete update", func(t *testing.T) {
		err := validation.ValidateInvestmentUpdate(request.InvestmentRequest{
			Name:   "Apple Inc.",
			Date:   "2024-03-01",
			Amount: dec(t, "1400"),
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

// TestValidateDateRange tests range-bound parsing.
func TestValidateDateRange(t *testing.T) {
	t.Run("parses both bounds", func(t *testing.T) {
		start, end, err := validation.ValidateDateRange("2024-01-01", "2024-06-30")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if start.After(end) {
			t.Errorf("Expected start before end, got %v > %v", start, end)
		}
	})

	t.Run("reports both missing bounds", func(t *testing.T) {
		_, _, err := validation.ValidateDateRange("", "")
		fields := fieldErrors(t, err)

		if _, ok := fields["startDate"]; !ok {
			t.Errorf("Expected startDate error, got %v", fields)
		}
		if _, ok := fields["endDate"]; !ok {
			t.Errorf("Expected endDate error, got %v", fields)
		}
	})
}

// TestParseID tests numeric identifier parsing.
func TestParseID(t *testing.T) {
	if id, err := validation.ParseID("42"); err != nil || id != 42 {
		t.Errorf("ParseID(\"42\") = %d, %v; expected 42, nil", id, err)
	}
	for _, raw := range []string{"abc", "0", "-7", "1.5", ""} {
		if _, err := validation.ParseID(raw); err == nil {
			t.Errorf("ParseID(%q) expected an error", raw)
		}
	}
}

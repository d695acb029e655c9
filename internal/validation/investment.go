package validation

import (
	"strings"
	"time"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/model"
)

const maxNotesLength = 1024

// ValidateInvestment validates an investment create/import item.
//
// Required:
//   - name: non-empty after trimming
//   - date: YYYY-MM-DD
//   - amount: greater than 0 after derivation, i.e. either the supplied
//     amount or quantity × purchasePrice when both are present
//
// Optional fields (validated if provided):
//   - quantity, purchasePrice: must not be negative
//   - timestamp: YYYY-MM-DDTHH:MM:SS
//   - notes: at most 1024 characters
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateInvestment(req request.InvestmentRequest) error {
	errors := make(map[string]string)

	validateNameAndDate(req, errors)

	if amount := req.EffectiveAmount(); amount == nil || !amount.IsPositive() {
		errors["amount"] = "amount must be greater than 0"
	}

	if req.Quantity != nil && req.Quantity.IsNegative() {
		errors["quantity"] = "quantity must not be negative"
	}
	if req.PurchasePrice != nil && req.PurchasePrice.IsNegative() {
		errors["purchasePrice"] = "purchasePrice must not be negative"
	}

	validateTimestamp(req.Timestamp, errors)

	if len(req.Notes) > maxNotesLength {
		errors["notes"] = "notes must be at most 1024 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateInvestmentUpdate validates an investment update.
// Update overwrites name, date and amount from the request and never
// re-derives amount from quantity and purchasePrice, so the supplied amount
// itself must be present and positive.
func ValidateInvestmentUpdate(req request.InvestmentRequest) error {
	errors := make(map[string]string)

	validateNameAndDate(req, errors)

	if req.Amount == nil || !req.Amount.IsPositive() {
		errors["amount"] = "amount must be greater than 0"
	}

	validateTimestamp(req.Timestamp, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateDateRange parses and validates the inclusive date-range bounds.
func ValidateDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	errors := make(map[string]string)

	start := parseDate(startDate, "startDate", errors)
	end := parseDate(endDate, "endDate", errors)

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, &Error{Fields: errors}
	}

	return start, end, nil
}

func validateNameAndDate(req request.InvestmentRequest, errors map[string]string) {
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse(model.DateFormat, req.Date); err != nil {
		errors["date"] = err.Error()
	}
}

func validateTimestamp(timestamp string, errors map[string]string) {
	if timestamp == "" {
		return
	}
	if _, err := time.Parse(model.TimestampFormat, timestamp); err != nil {
		errors["timestamp"] = err.Error()
	}
}

func parseDate(value, field string, errors map[string]string) time.Time {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
		return time.Time{}
	}
	t, err := time.Parse(model.DateFormat, value)
	if err != nil {
		errors[field] = err.Error()
		return time.Time{}
	}
	return t
}

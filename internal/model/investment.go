package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire formats for date and timestamp fields. Dates carry no time
// component; timestamps are second precision.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05"
)

// Investment represents a single user-asserted investment transaction.
// Used internally for persistence and calculations.
//
// Date is the user-meaningful transaction date; Timestamp is the record
// instant, defaulted at creation and preserved across updates.
type Investment struct {
	ID            int64
	UserID        int64
	Name          string
	Date          time.Time
	Amount        decimal.Decimal
	Category      *string
	Symbol        *string
	Quantity      *decimal.Decimal
	PurchasePrice *decimal.Decimal
	Notes         *string
	Timestamp     time.Time
}

// InvestmentResponse represents an investment in its external wire shape.
// Dates are YYYY-MM-DD, timestamps YYYY-MM-DDTHH:MM:SS, and all decimal
// fields serialize through shopspring/decimal, never binary floating point.
type InvestmentResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Date          string           `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Timestamp     string           `json:"timestamp"`
	Category      string           `json:"category,omitempty"`
	Symbol        string           `json:"symbol,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// NewInvestmentResponse converts a stored investment to its wire shape.
func NewInvestmentResponse(inv *Investment) InvestmentResponse {
	resp := InvestmentResponse{
		ID:            inv.ID,
		Name:          inv.Name,
		Date:          inv.Date.Format(DateFormat),
		Amount:        inv.Amount,
		Timestamp:     inv.Timestamp.Format(TimestampFormat),
		Quantity:      inv.Quantity,
		PurchasePrice: inv.PurchasePrice,
	}
	if inv.Category != nil {
		resp.Category = *inv.Category
	}
	if inv.Symbol != nil {
		resp.Symbol = *inv.Symbol
	}
	if inv.Notes != nil {
		resp.Notes = *inv.Notes
	}
	return resp
}

// Stats holds the aggregate figures for one user's investments.
// TotalAmount and AverageAmount are zero for an empty set; LatestDate is
// omitted entirely when no investments exist.
type Stats struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
	TotalCount    int64           `json:"totalCount"`
	LatestDate    string          `json:"latestDate,omitempty"`
}

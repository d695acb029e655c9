package request

import "github.com/shopspring/decimal"

// InvestmentRequest is the external representation accepted by the create,
// update and import endpoints. Dates are YYYY-MM-DD strings, timestamps
// YYYY-MM-DDTHH:MM:SS; decimal fields accept numeric literals or strings.
type InvestmentRequest struct {
	Name          string           `json:"name"`
	Date          string           `json:"date"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
	Category      string           `json:"category,omitempty"`
	Symbol        string           `json:"symbol,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// EffectiveAmount returns the amount that would be stored for this request:
// quantity × purchasePrice whenever both are supplied (overriding any
// caller-provided amount), otherwise the caller amount, which may be nil.
// The multiplication is exact decimal arithmetic, no rounding.
func (r InvestmentRequest) EffectiveAmount() *decimal.Decimal {
	if r.Quantity != nil && r.PurchasePrice != nil {
		derived := r.Quantity.Mul(*r.PurchasePrice)
		return &derived
	}
	return r.Amount
}

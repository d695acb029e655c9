package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1Cealus/InvestmentTracker/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().
//	    WithUsername("alice").
//	    Build(t, db)
type UserBuilder struct {
	Username     string
	PasswordHash string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		Username: MakeUsername("testuser"),
		// bcrypt hash of "password123"; tests that exercise the login path
		// register through the service instead of using this constant.
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username.
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

// WithPasswordHash sets a custom stored password hash.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// Build inserts the user and returns the stored entity with its assigned ID.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) *model.User {
	t.Helper()

	result, err := db.Exec(
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		b.Username, b.PasswordHash,
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test user ID: %v", err)
	}

	return &model.User{
		ID:           id,
		Username:     b.Username,
		PasswordHash: b.PasswordHash,
	}
}

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	investment := testutil.NewInvestment(user.ID).
//	    WithName("Apple Inc.").
//	    WithAmount("1500").
//	    WithDate("2024-03-01").
//	    Build(t, db)
type InvestmentBuilder struct {
	UserID        int64
	Name          string
	Date          string
	Amount        decimal.Decimal
	Category      *string
	Symbol        *string
	Notes         *string
	Quantity      *decimal.Decimal
	PurchasePrice *decimal.Decimal
	Timestamp     string
}

// NewInvestment creates an InvestmentBuilder with sensible defaults,
// owned by the given user.
func NewInvestment(userID int64) *InvestmentBuilder {
	return &InvestmentBuilder{
		UserID:    userID,
		Name:      "Test Investment",
		Date:      "2024-01-15",
		Amount:    decimal.NewFromInt(1000),
		Timestamp: time.Now().UTC().Format(model.TimestampFormat),
	}
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.Name = name
	return b
}

// WithDate sets a custom transaction date (YYYY-MM-DD).
func (b *InvestmentBuilder) WithDate(date string) *InvestmentBuilder {
	b.Date = date
	return b
}

// WithAmount sets a custom amount from its decimal string form.
func (b *InvestmentBuilder) WithAmount(amount string) *InvestmentBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// WithCategory sets a custom category.
func (b *InvestmentBuilder) WithCategory(category string) *InvestmentBuilder {
	b.Category = &category
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *InvestmentBuilder) WithSymbol(symbol string) *InvestmentBuilder {
	b.Symbol = &symbol
	return b
}

// WithNotes sets custom notes.
func (b *InvestmentBuilder) WithNotes(notes string) *InvestmentBuilder {
	b.Notes = &notes
	return b
}

// WithQuantity sets a custom quantity from its decimal string form.
func (b *InvestmentBuilder) WithQuantity(quantity string) *InvestmentBuilder {
	q := decimal.RequireFromString(quantity)
	b.Quantity = &q
	return b
}

// WithPurchasePrice sets a custom purchase price from its decimal string form.
func (b *InvestmentBuilder) WithPurchasePrice(price string) *InvestmentBuilder {
	p := decimal.RequireFromString(price)
	b.PurchasePrice = &p
	return b
}

// WithTimestamp sets a custom recording timestamp (YYYY-MM-DDTHH:MM:SS).
func (b *InvestmentBuilder) WithTimestamp(timestamp string) *InvestmentBuilder {
	b.Timestamp = timestamp
	return b
}

// Build inserts the investment and returns the stored entity with its
// assigned ID.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) *model.Investment {
	t.Helper()

	var quantity, purchasePrice any
	if b.Quantity != nil {
		quantity = b.Quantity.String()
	}
	if b.PurchasePrice != nil {
		purchasePrice = b.PurchasePrice.String()
	}

	result, err := db.Exec(
		`INSERT INTO investments (user_id, name, date, amount, category, symbol, quantity, purchase_price, notes, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.UserID, b.Name, b.Date, b.Amount.String(),
		nullable(b.Category), nullable(b.Symbol),
		quantity, purchasePrice,
		nullable(b.Notes), b.Timestamp,
	)
	if err != nil {
		t.Fatalf("Failed to insert test investment: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test investment ID: %v", err)
	}

	date, err := time.Parse(model.DateFormat, b.Date)
	if err != nil {
		t.Fatalf("Invalid test investment date %q: %v", b.Date, err)
	}
	timestamp, err := time.Parse(model.TimestampFormat, b.Timestamp)
	if err != nil {
		t.Fatalf("Invalid test investment timestamp %q: %v", b.Timestamp, err)
	}

	return &model.Investment{
		ID:            id,
		UserID:        b.UserID,
		Name:          b.Name,
		Date:          date,
		Amount:        b.Amount,
		Category:      b.Category,
		Symbol:        b.Symbol,
		Notes:         b.Notes,
		Quantity:      b.Quantity,
		PurchasePrice: b.PurchasePrice,
		Timestamp:     timestamp,
	}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1Cealus/InvestmentTracker/internal/apperrors"
	"github.com/1Cealus/InvestmentTracker/internal/model"
)

// InvestmentRepository provides data access methods for the investments table.
// It handles persistence, ownership-scoped lookups and the aggregate queries
// backing the statistics endpoint. All aggregates (SUM, AVG, COUNT, latest
// date) are delegated to SQLite rather than computed in application memory.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, user_id, name, date, amount, category, symbol, quantity, purchase_price, notes, timestamp`

// withTx runs fn inside a single database transaction, rolling back on any
// error. Every mutating operation goes through here so that one service call
// maps to one transaction boundary.
func (r *InvestmentRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertInvestment(ctx context.Context, tx *sql.Tx, inv *model.Investment) error {
	query := `
		INSERT INTO investments (user_id, name, date, amount, category, symbol, quantity, purchase_price, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		inv.UserID,
		inv.Name,
		inv.Date.Format(model.DateFormat),
		inv.Amount.String(),
		nullString(inv.Category),
		nullString(inv.Symbol),
		nullDecimal(inv.Quantity),
		nullDecimal(inv.PurchasePrice),
		nullString(inv.Notes),
		inv.Timestamp.Format(model.TimestampFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted investment ID: %w", err)
	}
	inv.ID = id

	return nil
}

// Insert persists a single investment and assigns the generated ID.
func (r *InvestmentRepository) Insert(ctx context.Context, inv *model.Investment) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		return insertInvestment(ctx, tx, inv)
	})
}

// InsertBatch persists all investments within one transaction. Either every
// item is inserted or none are; IDs are assigned in input order.
func (r *InvestmentRepository) InsertBatch(ctx context.Context, invs []*model.Investment) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, inv := range invs {
			if err := insertInvestment(ctx, tx, inv); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByUser retrieves all investments owned by the user, newest timestamp first.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments table: %w", err)
	}
	defer rows.Close()

	return collectInvestments(rows)
}

// FindByIDForUser retrieves a single investment by ID, scoped to the given
// user. A missing row and a row owned by someone else both return
// apperrors.ErrInvestmentNotFound; the two cases are deliberately merged so
// existence is never leaked to non-owners.
func (r *InvestmentRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE id = ? AND user_id = ?
	`

	inv, err := scanInvestment(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan investments table results: %w", err)
	}

	return inv, nil
}

// Update overwrites all stored fields of an investment from the given entity.
// The WHERE clause repeats the ownership predicate so a concurrently deleted
// or re-owned row surfaces as not found.
func (r *InvestmentRepository) Update(ctx context.Context, inv *model.Investment) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE investments
			SET name = ?, date = ?, amount = ?, category = ?, symbol = ?, quantity = ?, purchase_price = ?, notes = ?, timestamp = ?
			WHERE id = ? AND user_id = ?
		`

		result, err := tx.ExecContext(ctx, query,
			inv.Name,
			inv.Date.Format(model.DateFormat),
			inv.Amount.String(),
			nullString(inv.Category),
			nullString(inv.Symbol),
			nullDecimal(inv.Quantity),
			nullDecimal(inv.PurchasePrice),
			nullString(inv.Notes),
			inv.Timestamp.Format(model.TimestampFormat),
			inv.ID,
			inv.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update investment: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return apperrors.ErrInvestmentNotFound
		}
		return nil
	})
}

// DeleteByIDForUser removes an investment if it exists and is owned by the
// user. Returns whether a row was deleted; absence is not an error.
func (r *InvestmentRepository) DeleteByIDForUser(ctx context.Context, id, userID int64) (bool, error) {
	var deleted bool
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM investments WHERE id = ? AND user_id = ?`, id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete investment: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		deleted = affected > 0
		return nil
	})
	return deleted, err
}

// DeleteAllForUser removes every investment owned by the user. Idempotent.
func (r *InvestmentRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM investments WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("failed to delete investments: %w", err)
		}
		return nil
	})
}

// TotalAmount returns the sum of all amounts for the user, zero when the
// user has no investments.
func (r *InvestmentRepository) TotalAmount(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return r.scanAggregate(ctx, `SELECT COALESCE(SUM(amount), 0) FROM investments WHERE user_id = ?`, userID)
}

// AverageAmount returns the average amount for the user, zero when the user
// has no investments (never NULL or NaN).
func (r *InvestmentRepository) AverageAmount(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return r.scanAggregate(ctx, `SELECT COALESCE(AVG(amount), 0) FROM investments WHERE user_id = ?`, userID)
}

func (r *InvestmentRepository) scanAggregate(ctx context.Context, query string, userID int64) (decimal.Decimal, error) {
	var raw string
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query aggregate: %w", err)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse aggregate value %q: %w", raw, err)
	}
	return value, nil
}

// CountForUser returns the number of investments owned by the user.
func (r *InvestmentRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM investments WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count investments: %w", err)
	}
	return count, nil
}

// LatestDate returns the transaction date of the most recently recorded
// investment (newest timestamp), or the empty string when the user has none.
func (r *InvestmentRepository) LatestDate(ctx context.Context, userID int64) (string, error) {
	query := `
		SELECT date
		FROM investments
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`

	var date string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&date)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest investment date: %w", err)
	}
	return date, nil
}

// SearchByName retrieves the user's investments whose name contains the given
// substring, case-insensitively.
func (r *InvestmentRepository) SearchByName(ctx context.Context, userID int64, name string) ([]model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = ? AND LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments table: %w", err)
	}
	defer rows.Close()

	return collectInvestments(rows)
}

// FindByDateRange retrieves the user's investments with a transaction date
// between startDate and endDate, inclusive on both ends.
func (r *InvestmentRepository) FindByDateRange(ctx context.Context, userID int64, startDate, endDate time.Time) ([]model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, startDate.Format(model.DateFormat), endDate.Format(model.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to query investments table: %w", err)
	}
	defer rows.Close()

	return collectInvestments(rows)
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row scanner) (*model.Investment, error) {
	var (
		inv           model.Investment
		dateStr       string
		timestampStr  string
		amountStr     string
		category      sql.NullString
		symbol        sql.NullString
		quantity      sql.NullString
		purchasePrice sql.NullString
		notes         sql.NullString
	)

	err := row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.Name,
		&dateStr,
		&amountStr,
		&category,
		&symbol,
		&quantity,
		&purchasePrice,
		&notes,
		&timestampStr,
	)
	if err != nil {
		return nil, err
	}

	if inv.Date, err = ParseTime(dateStr); err != nil {
		return nil, err
	}
	if inv.Timestamp, err = ParseTime(timestampStr); err != nil {
		return nil, err
	}
	if inv.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}

	if category.Valid {
		inv.Category = &category.String
	}
	if symbol.Valid {
		inv.Symbol = &symbol.String
	}
	if notes.Valid {
		inv.Notes = &notes.String
	}
	if quantity.Valid {
		q, err := decimal.NewFromString(quantity.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse quantity %q: %w", quantity.String, err)
		}
		inv.Quantity = &q
	}
	if purchasePrice.Valid {
		p, err := decimal.NewFromString(purchasePrice.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse purchase price %q: %w", purchasePrice.String, err)
		}
		inv.PurchasePrice = &p
	}

	return &inv, nil
}

func collectInvestments(rows *sql.Rows) ([]model.Investment, error) {
	investments := []model.Investment{}

	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investments table results: %w", err)
		}
		investments = append(investments, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investments table: %w", err)
	}

	return investments, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

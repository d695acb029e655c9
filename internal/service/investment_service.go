package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/1Cealus/InvestmentTracker/internal/api/request"
	"github.com/1Cealus/InvestmentTracker/internal/apperrors"
	"github.com/1Cealus/InvestmentTracker/internal/model"
	"github.com/1Cealus/InvestmentTracker/internal/repository"
	"github.com/1Cealus/InvestmentTracker/internal/validation"
)

// InvestmentService enforces the business rules around investment records:
// per-item validation, ownership scoping, the quantity×price amount
// derivation at the conversion boundary, and the aggregate statistics.
//
// Every identifier-addressed operation goes through the repository's
// ownership-scoped lookup, so an ID that exists but belongs to another user
// is reported exactly like a missing one.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService with the provided repository dependency.
func NewInvestmentService(investmentRepo *repository.InvestmentRepository) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
	}
}

// List retrieves all investments owned by the user, newest timestamp first.
// Returns an empty slice when the user has none.
func (s *InvestmentService) List(ctx context.Context, userID int64) ([]model.InvestmentResponse, error) {
	investments, err := s.investmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestments, err)
	}
	return toResponses(investments), nil
}

// GetByID retrieves a single investment if it exists and is owned by the user;
// otherwise apperrors.ErrInvestmentNotFound.
func (s *InvestmentService) GetByID(ctx context.Context, id, userID int64) (*model.InvestmentResponse, error) {
	inv, err := s.investmentRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestment, err)
	}

	resp := model.NewInvestmentResponse(inv)
	return &resp, nil
}

// Create validates the request, converts it to an entity (deriving amount
// from quantity × purchasePrice when both are supplied) and persists it.
// The stored timestamp defaults to now unless the caller supplied one.
func (s *InvestmentService) Create(ctx context.Context, req request.InvestmentRequest, userID int64) (*model.InvestmentResponse, error) {
	if err := validation.ValidateInvestment(req); err != nil {
		return nil, err
	}

	inv, err := toInvestment(req, userID)
	if err != nil {
		return nil, err
	}

	if err := s.investmentRepo.Insert(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	resp := model.NewInvestmentResponse(inv)
	return &resp, nil
}

// ImportBatch creates multiple investments in one transaction. Every item is
// validated before anything is persisted; one invalid item rejects the whole
// batch. An empty batch is a caller error. Returns the persisted
// representations in input order.
func (s *InvestmentService) ImportBatch(ctx context.Context, reqs []request.InvestmentRequest, userID int64) ([]model.InvestmentResponse, error) {
	if len(reqs) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	for i, req := range reqs {
		if err := validation.ValidateInvestment(req); err != nil {
			return nil, prefixItemError(i, err)
		}
	}

	investments := make([]*model.Investment, 0, len(reqs))
	for _, req := range reqs {
		inv, err := toInvestment(req, userID)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}

	if err := s.investmentRepo.InsertBatch(ctx, investments); err != nil {
		return nil, fmt.Errorf("failed to import investments: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(investments),
	}).Info("investments imported")

	responses := make([]model.InvestmentResponse, len(investments))
	for i, inv := range investments {
		responses[i] = model.NewInvestmentResponse(inv)
	}
	return responses, nil
}

// Update overwrites name, date and amount of an owned investment. The stored
// timestamp is replaced only when the request supplies one; the remaining
// fields are retained from the existing record. Amount is taken from the
// request as-is: the quantity×price derivation applies only at the
// create/import conversion boundary, never here.
func (s *InvestmentService) Update(ctx context.Context, id int64, req request.InvestmentRequest, userID int64) (*model.InvestmentResponse, error) {
	if err := validation.ValidateInvestmentUpdate(req); err != nil {
		return nil, err
	}

	existing, err := s.investmentRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	existing.Name = req.Name
	existing.Date = date
	existing.Amount = *req.Amount
	if req.Timestamp != "" {
		timestamp, err := time.Parse(model.TimestampFormat, req.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
		existing.Timestamp = timestamp
	}

	if err := s.investmentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	resp := model.NewInvestmentResponse(existing)
	return &resp, nil
}

// Delete removes an investment if it exists and is owned by the user.
// Returns whether a deletion occurred; a missing or non-owned ID is not an error.
func (s *InvestmentService) Delete(ctx context.Context, id, userID int64) (bool, error) {
	return s.investmentRepo.DeleteByIDForUser(ctx, id, userID)
}

// DeleteAll removes every investment owned by the user. Idempotent.
func (s *InvestmentService) DeleteAll(ctx context.Context, userID int64) error {
	return s.investmentRepo.DeleteAllForUser(ctx, userID)
}

// Stats returns the aggregate figures for the user's investments. Sum and
// average resolve to zero for an empty set; the latest date is absent.
func (s *InvestmentService) Stats(ctx context.Context, userID int64) (*model.Stats, error) {
	total, err := s.investmentRepo.TotalAmount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveStats, err)
	}

	average, err := s.investmentRepo.AverageAmount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveStats, err)
	}

	count, err := s.investmentRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveStats, err)
	}

	latestDate, err := s.investmentRepo.LatestDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveStats, err)
	}

	return &model.Stats{
		TotalAmount:   total,
		AverageAmount: average,
		TotalCount:    count,
		LatestDate:    latestDate,
	}, nil
}

// SearchByName retrieves the user's investments whose name contains the
// given substring, case-insensitively.
func (s *InvestmentService) SearchByName(ctx context.Context, userID int64, name string) ([]model.InvestmentResponse, error) {
	investments, err := s.investmentRepo.SearchByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestments, err)
	}
	return toResponses(investments), nil
}

// ByDateRange retrieves the user's investments with a date inside the
// inclusive [startDate, endDate] range.
func (s *InvestmentService) ByDateRange(ctx context.Context, userID int64, startDate, endDate string) ([]model.InvestmentResponse, error) {
	start, end, err := validation.ValidateDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	investments, err := s.investmentRepo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestments, err)
	}
	return toResponses(investments), nil
}

// toInvestment converts the external representation to a stored entity.
// This is the only place the quantity×price amount derivation happens; the
// update path edits an already-loaded entity and bypasses it on purpose.
func toInvestment(req request.InvestmentRequest, userID int64) (*model.Investment, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		if timestamp, err = time.Parse(model.TimestampFormat, req.Timestamp); err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	amount := req.EffectiveAmount()
	if amount == nil {
		return nil, &validation.Error{Fields: map[string]string{"amount": "amount must be greater than 0"}}
	}

	inv := &model.Investment{
		UserID:        userID,
		Name:          req.Name,
		Date:          date,
		Amount:        *amount,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		Timestamp:     timestamp,
	}
	if req.Category != "" {
		category := req.Category
		inv.Category = &category
	}
	if req.Symbol != "" {
		symbol := req.Symbol
		inv.Symbol = &symbol
	}
	if req.Notes != "" {
		notes := req.Notes
		inv.Notes = &notes
	}

	return inv, nil
}

func toResponses(investments []model.Investment) []model.InvestmentResponse {
	responses := make([]model.InvestmentResponse, len(investments))
	for i := range investments {
		responses[i] = model.NewInvestmentResponse(&investments[i])
	}
	return responses
}

func prefixItemError(index int, err error) error {
	verr, ok := err.(*validation.Error)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verr.Fields))
	for field, msg := range verr.Fields {
		fields[fmt.Sprintf("items[%d].%s", index, field)] = msg
	}
	return &validation.Error{Fields: fields}
}

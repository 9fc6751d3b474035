package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

const expenseListLimit = 50

// expenseService implements ExpenseService.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      zerolog.Logger
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo repository.ExpenseRepository, logger zerolog.Logger) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		logger:      logger.With().Str("service", "expense").Logger(),
	}
}

// RecordExpense validates and inserts a new expense.
func (s *expenseService) RecordExpense(ctx context.Context, req *model.ExpenseRequest) (*model.Expense, error) {
	if req == nil || strings.TrimSpace(req.Description) == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidExpense, "Expense description is required")
	}
	if req.Amount <= 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidExpense, "Expense amount must be greater than zero")
	}
	if !model.ValidExpenseCategory(req.Category) {
		return nil, model.NewDomainError(model.ErrCodeInvalidExpense, "Unknown expense category")
	}
	switch req.PaymentMethod {
	case model.ExpensePaymentCash, model.ExpensePaymentTransfer, model.ExpensePaymentDebit:
	default:
		return nil, model.NewDomainError(model.ErrCodeInvalidExpense, "Payment method must be Cash, Transfer or Debit")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidExpense, "Date must be in YYYY-MM-DD format")
	}

	exp := &model.Expense{
		Date:          date,
		Category:      req.Category,
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := s.expenseRepo.Create(ctx, exp)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("expense_id", created.ID).
		Str("category", created.Category).
		Float64("amount", created.Amount).
		Msg("expense recorded")
	return created, nil
}

// ListExpenses retrieves the most recent expenses.
func (s *expenseService) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.expenseRepo.ListRecent(ctx, expenseListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// PurgeExpenses removes the whole expense history.
func (s *expenseService) PurgeExpenses(ctx context.Context) error {
	if err := s.expenseRepo.PurgeAll(ctx); err != nil {
		return fmt.Errorf("failed to purge expenses: %w", err)
	}
	s.logger.Warn().Msg("expense history purged")
	return nil
}

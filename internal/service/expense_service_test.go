package service

import (
	"context"
	"testing"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, exp *model.Expense) (*model.Expense, error) {
	args := m.Called(ctx, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListRecent(ctx context.Context, limit int) ([]model.Expense, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) PurgeAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestExpenseService_RecordExpense(t *testing.T) {
	ctx := context.Background()
	expenseRepo := new(MockExpenseRepository)
	svc := NewExpenseService(expenseRepo, zerolog.Nop())

	wantDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	expenseRepo.On("Create", ctx, mock.MatchedBy(func(exp *model.Expense) bool {
		return exp.Date.Equal(wantDate) &&
			exp.Category == model.ExpenseIngredients &&
			exp.Description == "Milk restock" &&
			exp.Amount == 54000 &&
			exp.PaymentMethod == model.ExpensePaymentTransfer
	})).Return(&model.Expense{
		ID: 1, Date: wantDate, Category: model.ExpenseIngredients,
		Description: "Milk restock", Amount: 54000, PaymentMethod: model.ExpensePaymentTransfer,
	}, nil)

	created, err := svc.RecordExpense(ctx, &model.ExpenseRequest{
		Date:          "2026-08-30",
		Category:      model.ExpenseIngredients,
		Description:   "  Milk restock  ",
		Amount:        54000,
		PaymentMethod: model.ExpensePaymentTransfer,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	expenseRepo.AssertExpectations(t)
}

func TestExpenseService_RecordExpense_Invalid(t *testing.T) {
	ctx := context.Background()

	valid := model.ExpenseRequest{
		Date:          "2026-08-30",
		Category:      model.ExpenseOperational,
		Description:   "Electricity",
		Amount:        250000,
		PaymentMethod: model.ExpensePaymentCash,
	}

	tests := []struct {
		name   string
		mutate func(*model.ExpenseRequest)
	}{
		{"Blank description", func(r *model.ExpenseRequest) { r.Description = " " }},
		{"Zero amount", func(r *model.ExpenseRequest) { r.Amount = 0 }},
		{"Negative amount", func(r *model.ExpenseRequest) { r.Amount = -10 }},
		{"Unknown category", func(r *model.ExpenseRequest) { r.Category = "Bribes" }},
		{"QRIS not accepted for expenses", func(r *model.ExpenseRequest) { r.PaymentMethod = "QRIS" }},
		{"Bad date", func(r *model.ExpenseRequest) { r.Date = "30-08-2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenseRepo := new(MockExpenseRepository)
			svc := NewExpenseService(expenseRepo, zerolog.Nop())

			req := valid
			tt.mutate(&req)

			created, err := svc.RecordExpense(ctx, &req)

			assert.Nil(t, created)
			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeInvalidExpense, domainErr.Code)
			expenseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExpenseService_ListExpenses(t *testing.T) {
	ctx := context.Background()
	expenseRepo := new(MockExpenseRepository)
	svc := NewExpenseService(expenseRepo, zerolog.Nop())

	expenses := []model.Expense{{ID: 1, Category: model.ExpenseWages, Amount: 1500000}}
	expenseRepo.On("ListRecent", ctx, expenseListLimit).Return(expenses, nil)

	got, err := svc.ListExpenses(ctx)

	require.NoError(t, err)
	assert.Equal(t, expenses, got)
}

func TestExpenseService_PurgeExpenses(t *testing.T) {
	ctx := context.Background()
	expenseRepo := new(MockExpenseRepository)
	svc := NewExpenseService(expenseRepo, zerolog.Nop())

	expenseRepo.On("PurgeAll", ctx).Return(nil)

	require.NoError(t, svc.PurgeExpenses(ctx))
	expenseRepo.AssertExpectations(t)
}

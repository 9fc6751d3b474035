package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleService is a mock implementation of SaleService.
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) ProcessSale(ctx context.Context, req *model.SaleRequest) (*model.SaleResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SaleResult), args.Error(1)
}

func (m *MockSaleService) VoidTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockSaleService) GetTransaction(ctx context.Context, transactionID int64) (*model.Transaction, []model.TransactionItem, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Transaction), args.Get(1).([]model.TransactionItem), args.Error(2)
}

func (m *MockSaleService) PurgeTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEmployeeService is a mock implementation of EmployeeService.
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Authenticate(ctx context.Context, name, password string) (*model.Employee, error) {
	args := m.Called(ctx, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req *model.EmployeeRequest) (*model.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, id int64, req *model.EmployeeRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func TestSaleHandler_Create_Success(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	result := &model.SaleResult{
		Success:       true,
		Message:       "transaction completed",
		TransactionID: 42,
		Total:         48000,
		Change:        2000,
	}
	mockSales.On("ProcessSale", mock.Anything, mock.MatchedBy(func(req *model.SaleRequest) bool {
		return req.Cart["Latte"] == 3 && req.PaymentMethod == model.PaymentCash
	})).Return(result, nil)

	body, _ := json.Marshal(model.SaleRequest{
		Cart:          map[string]int{"Latte": 3},
		PaymentMethod: model.PaymentCash,
		EmployeeID:    1,
		CashReceived:  50000,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got model.SaleResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, int64(42), got.TransactionID)
	assert.Equal(t, 2000.0, got.Change)
}

func TestSaleHandler_Create_InsufficientStock(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	rejected := &model.SaleResult{
		Success: false,
		Message: "insufficient stock: Coffee Beans for Latte (need 54 gram, have 40 gram)",
	}
	mockSales.On("ProcessSale", mock.Anything, mock.Anything).Return(rejected, nil)

	body, _ := json.Marshal(model.SaleRequest{
		Cart:          map[string]int{"Latte": 3},
		PaymentMethod: model.PaymentCash,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var got model.SaleResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.False(t, got.Success)
	assert.Contains(t, got.Message, "Coffee Beans for Latte")
}

func TestSaleHandler_Create_ValidationError(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	mockSales.On("ProcessSale", mock.Anything, mock.Anything).Return(nil, model.ErrEmptyCart)

	body, _ := json.Marshal(model.SaleRequest{Cart: map[string]int{}})
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, model.ErrCodeEmptyCart, got.Error)
}

func TestSaleHandler_Create_InvalidBody(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSales.AssertNotCalled(t, "ProcessSale", mock.Anything, mock.Anything)
}

func TestSaleHandler_Create_InfrastructureError(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	mockSales.On("ProcessSale", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	body, _ := json.Marshal(model.SaleRequest{
		Cart:          map[string]int{"Latte": 1},
		PaymentMethod: model.PaymentCash,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var got model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, model.ErrCodeInternalError, got.Error)
	// Infrastructure detail must not leak to the client.
	assert.NotContains(t, got.Message, "connection refused")
}

func TestSaleHandler_Void(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/transactions/42",
			mockError:      nil,
			expectService:  true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Unknown transaction",
			path:           "/api/transactions/99",
			mockError:      model.ErrTransactionNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			path:           "/api/transactions/abc",
			expectService:  false,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSales := new(MockSaleService)
			h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

			if tt.expectService {
				mockSales.On("VoidTransaction", mock.Anything, mock.AnythingOfType("int64")).Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			h.Void(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				mockSales.AssertNotCalled(t, "VoidTransaction", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSaleHandler_Receipt(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	mockEmployees := new(MockEmployeeService)
	h := NewSaleHandler(mockSales, mockEmployees, logger)

	trx := &model.Transaction{ID: 42, TotalAmount: 48000, PaymentMethod: model.PaymentCash, CashReceived: 50000, EmployeeID: 1}
	items := []model.TransactionItem{
		{TransactionID: 42, ProductID: 1, ProductName: "Latte", Quantity: 3, PricePerUnit: 16000},
	}
	mockSales.On("GetTransaction", mock.Anything, int64(42)).Return(trx, items, nil)
	mockEmployees.On("GetEmployee", mock.Anything, int64(1)).Return(&model.Employee{ID: 1, Name: "operator"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/42/receipt", nil)
	w := httptest.NewRecorder()

	h.Receipt(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Latte")
	assert.Contains(t, w.Body.String(), "Rp 48,000")
	assert.Contains(t, w.Body.String(), "Rp 50,000")
	assert.Contains(t, w.Body.String(), "Rp 2,000")
	assert.Contains(t, w.Body.String(), "operator")
}

func TestSaleHandler_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	mockSales.On("GetTransaction", mock.Anything, int64(99)).Return(nil, nil, model.ErrTransactionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/99", nil)
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaleHandler_Purge(t *testing.T) {
	logger := zerolog.Nop()

	mockSales := new(MockSaleService)
	h := NewSaleHandler(mockSales, new(MockEmployeeService), logger)

	mockSales.On("PurgeTransactions", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/transactions", nil)
	w := httptest.NewRecorder()

	h.Purge(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSales.AssertExpectations(t)
}

package model

import (
	"fmt"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidPayment      = "INVALID_PAYMENT_METHOD"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeIngredientNotFound  = "INGREDIENT_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeEmployeeNotFound    = "EMPLOYEE_NOT_FOUND"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeInactiveAccount     = "INACTIVE_ACCOUNT"
	ErrCodeAlreadyCheckedIn    = "ALREADY_CHECKED_IN"
	ErrCodeNotCheckedIn        = "NOT_CHECKED_IN"
	ErrCodeInvalidExpense      = "INVALID_EXPENSE"
	ErrCodeDuplicateName       = "DUPLICATE_NAME"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation carrying a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPayment      = NewDomainError(ErrCodeInvalidPayment, "Payment method must be Cash, QRIS or Debit")
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrIngredientNotFound  = NewDomainError(ErrCodeIngredientNotFound, "Ingredient not found")
	ErrTransactionNotFound = NewDomainError(ErrCodeTransactionNotFound, "Transaction not found")
	ErrEmployeeNotFound    = NewDomainError(ErrCodeEmployeeNotFound, "Employee not found")
	ErrInvalidCredentials  = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrInactiveAccount     = NewDomainError(ErrCodeInactiveAccount, "Account is inactive")
	ErrAlreadyCheckedIn    = NewDomainError(ErrCodeAlreadyCheckedIn, "Already checked in today")
	ErrNotCheckedIn        = NewDomainError(ErrCodeNotCheckedIn, "No open check-in found for today")
	ErrDuplicateName       = NewDomainError(ErrCodeDuplicateName, "Name already exists")
)

// StockShortage describes one insufficient ingredient for one product.
type StockShortage struct {
	IngredientName string  `json:"ingredientName"`
	ProductName    string  `json:"productName"`
	Unit           string  `json:"unit"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
}

func (s StockShortage) String() string {
	return fmt.Sprintf("%s for %s (need %g %s, have %g %s)",
		s.IngredientName, s.ProductName, s.Required, s.Unit, s.Available, s.Unit)
}

// InsufficientStockError aggregates every shortage found by the sufficiency
// pre-check so the caller sees all violating pairs in one message.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = s.String()
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

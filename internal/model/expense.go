package model

import "time"

// Expense categories.
const (
	ExpenseIngredients = "Ingredients"
	ExpenseWages       = "Wages"
	ExpenseOperational = "Operational"
	ExpenseMarketing   = "Marketing"
	ExpenseOther       = "Other"
)

// ValidExpenseCategory reports whether c is a known expense category.
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseIngredients, ExpenseWages, ExpenseOperational, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}

// Expense payment methods. Expenses allow bank transfers, sales do not.
const (
	ExpensePaymentCash     = "Cash"
	ExpensePaymentTransfer = "Transfer"
	ExpensePaymentDebit    = "Debit"
)

// Expense represents a recorded business outgoing.
type Expense struct {
	ID            int64     `json:"id" db:"id"`
	Date          time.Time `json:"date" db:"date"`
	Category      string    `json:"category" db:"category"`
	Description   string    `json:"description" db:"description"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
}

// ExpenseRequest represents the payload for recording an expense.
type ExpenseRequest struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

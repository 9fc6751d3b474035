package model

import "time"

// Payment methods accepted at the register.
const (
	PaymentCash  = "Cash"
	PaymentQRIS  = "QRIS"
	PaymentDebit = "Debit"
)

// ValidPaymentMethod reports whether m is an accepted sale payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentDebit:
		return true
	}
	return false
}

// Transaction represents a committed sale. Immutable once created, except
// for full deletion via the void flow.
type Transaction struct {
	ID              int64     `json:"id" db:"id"`
	TransactionDate time.Time `json:"transactionDate" db:"transaction_date"`
	TotalAmount     float64   `json:"totalAmount" db:"total_amount"`
	PaymentMethod   string    `json:"paymentMethod" db:"payment_method"`
	CashReceived    float64   `json:"cashReceived" db:"cash_received"`
	EmployeeID      int64     `json:"employeeId" db:"employee_id"`
}

// TransactionItem is one line of a transaction. PricePerUnit is captured at
// sale time and never changes afterwards, regardless of later product price
// edits.
type TransactionItem struct {
	ID            int64   `json:"id" db:"id"`
	TransactionID int64   `json:"transactionId" db:"transaction_id"`
	ProductID     int64   `json:"productId" db:"product_id"`
	ProductName   string  `json:"productName,omitempty" db:"-"`
	Quantity      int     `json:"quantity" db:"quantity"`
	PricePerUnit  float64 `json:"pricePerUnit" db:"price_per_unit"`
}

// SaleRequest is one checkout interaction: the cart maps product names to
// requested quantities and lives only for the duration of the call.
type SaleRequest struct {
	Cart          map[string]int `json:"cart"`
	PaymentMethod string         `json:"paymentMethod"`
	EmployeeID    int64          `json:"employeeId"`
	CashReceived  float64        `json:"cashReceived"`
}

// SaleResult reports the outcome of a checkout. Success is false for
// business rejections such as insufficient stock; Message then describes
// every violation at once.
type SaleResult struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	TransactionID int64             `json:"transactionId,omitempty"`
	Total         float64           `json:"total"`
	Change        float64           `json:"change"`
	Items         []TransactionItem `json:"items,omitempty"`
}

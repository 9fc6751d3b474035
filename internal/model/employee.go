package model

// Employee roles.
const (
	RoleAdmin    = "Admin"
	RoleOperator = "Operator"
)

// Wage periods.
const (
	WageHourly  = "hourly"
	WageDaily   = "daily"
	WageMonthly = "monthly"
)

// Employee represents a staff account. PasswordHash is a bcrypt hash and is
// never serialised in responses.
type Employee struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Role         string  `json:"role" db:"role"`
	WageAmount   float64 `json:"wageAmount" db:"wage_amount"`
	WagePeriod   string  `json:"wagePeriod" db:"wage_period"`
	IsActive     bool    `json:"isActive" db:"is_active"`
	PasswordHash string  `json:"-" db:"password_hash"`
}

// EmployeeRequest represents the payload for creating or updating an
// employee. Password is required on create and optional on update; when
// empty on update the stored hash is kept.
type EmployeeRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Password   string  `json:"password,omitempty"`
	WageAmount float64 `json:"wageAmount"`
	WagePeriod string  `json:"wagePeriod"`
	IsActive   bool    `json:"isActive"`
}

// LoginRequest represents the payload for employee authentication.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

package service

import (
	"context"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
)

// SaleService defines the checkout and void operations.
type SaleService interface {
	// ProcessSale validates and commits a cart into a transaction plus
	// stock deductions, atomically. Business rejections (insufficient
	// stock) come back as an unsuccessful SaleResult with a nil error.
	ProcessSale(ctx context.Context, req *model.SaleRequest) (*model.SaleResult, error)

	// VoidTransaction reverses a committed transaction, restoring the
	// ingredient stock its line items consumed and removing the
	// transaction and its items.
	VoidTransaction(ctx context.Context, transactionID int64) error

	// GetTransaction retrieves a committed transaction with its items.
	GetTransaction(ctx context.Context, transactionID int64) (*model.Transaction, []model.TransactionItem, error)

	// PurgeTransactions removes the whole transaction history.
	PurgeTransactions(ctx context.Context) error
}

// CatalogService defines product and recipe management operations.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *model.ProductRequest) error

	// GetRecipe retrieves the recipe entries for a product.
	GetRecipe(ctx context.Context, productID int64) ([]model.RecipeEntry, error)

	// SetRecipeEntry inserts or replaces one (product, ingredient) entry.
	SetRecipeEntry(ctx context.Context, productID int64, req *model.RecipeEntryRequest) error

	// RemoveRecipeEntry deletes one (product, ingredient) entry.
	RemoveRecipeEntry(ctx context.Context, productID, ingredientID int64) error

	// CostOfGoods computes the ingredient cost (HPP) to produce one unit
	// of the product from current catalog state.
	CostOfGoods(ctx context.Context, productID int64) (float64, error)
}

// InventoryService defines ingredient management operations.
type InventoryService interface {
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*model.Ingredient, error)
	CreateIngredient(ctx context.Context, req *model.IngredientRequest) (*model.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, req *model.IngredientRequest) error
}

// EmployeeService defines staff account operations.
type EmployeeService interface {
	// Authenticate verifies credentials against the stored bcrypt hash and
	// returns the employee on success.
	Authenticate(ctx context.Context, name, password string) (*model.Employee, error)

	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	CreateEmployee(ctx context.Context, req *model.EmployeeRequest) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, req *model.EmployeeRequest) error
}

// AttendanceService defines shift check-in/out operations.
type AttendanceService interface {
	// CheckIn opens a shift for the employee; at most one open shift per day.
	CheckIn(ctx context.Context, employeeID int64) (*model.Attendance, error)

	// CheckOut closes the employee's open shift for today.
	CheckOut(ctx context.Context, employeeID int64) error

	// History retrieves the employee's recent shifts.
	History(ctx context.Context, employeeID int64) ([]model.Attendance, error)

	// PurgeAttendance removes the whole attendance history.
	PurgeAttendance(ctx context.Context) error
}

// ExpenseService defines expense tracking operations.
type ExpenseService interface {
	RecordExpense(ctx context.Context, req *model.ExpenseRequest) (*model.Expense, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	PurgeExpenses(ctx context.Context) error
}

// ReportService defines the read-only reporting views.
type ReportService interface {
	Summary(ctx context.Context, start, end time.Time) (*model.FinancialSummary, error)
	DailyRevenue(ctx context.Context, start, end time.Time) ([]model.DailyRevenue, error)
	TopProducts(ctx context.Context, start, end time.Time) ([]model.ProductSales, error)
	ExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.ExpenseCategoryTotal, error)
	ProductMargins(ctx context.Context) ([]model.ProductMargin, error)
}

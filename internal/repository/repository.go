package repository

import (
	"context"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns it with its assigned ID.
	Create(ctx context.Context, name string, price float64) (*model.Product, error)

	// Update modifies an existing product's name and price.
	Update(ctx context.Context, id int64, name string, price float64) error
}

// IngredientRepository defines the interface for ingredient data access operations.
type IngredientRepository interface {
	// GetAll retrieves all ingredients ordered by name.
	GetAll(ctx context.Context) ([]model.Ingredient, error)

	// GetByID retrieves a single ingredient by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Ingredient, error)

	// Create inserts a new ingredient and returns it with its assigned ID.
	Create(ctx context.Context, ing *model.Ingredient) (*model.Ingredient, error)

	// Update modifies an existing ingredient.
	Update(ctx context.Context, ing *model.Ingredient) error
}

// RecipeRepository defines the interface for recipe data access operations.
type RecipeRepository interface {
	// GetByProduct retrieves all recipe entries for one product.
	GetByProduct(ctx context.Context, productID int64) ([]model.RecipeEntry, error)

	// Upsert inserts or replaces the entry for a (product, ingredient) pair.
	Upsert(ctx context.Context, entry model.RecipeEntry) error

	// Delete removes the entry for a (product, ingredient) pair.
	Delete(ctx context.Context, productID, ingredientID int64) error

	// CostOfGoods computes the ingredient cost to produce one unit of the
	// product from the current catalog state.
	CostOfGoods(ctx context.Context, productID int64) (float64, error)
}

// TransactionRepository defines the data access operations used by the sale
// engine and the void flow. All write methods run within the provided
// database transaction so a sale either fully applies or fully rolls back.
type TransactionRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetProductsByName resolves product names to products within the
	// transaction, keyed by name. Missing names are simply absent.
	GetProductsByName(ctx context.Context, tx pgx.Tx, names []string) (map[string]model.Product, error)

	// GetRecipeRequirements reads the recipe entries for the given products
	// joined with current ingredient stock, locking the touched ingredient
	// rows so concurrent sales over the same ingredients serialize.
	GetRecipeRequirements(ctx context.Context, tx pgx.Tx, productIDs []int64) ([]model.RecipeRequirement, error)

	// CreateTransaction inserts a transaction row and fills in its ID.
	CreateTransaction(ctx context.Context, tx pgx.Tx, trx *model.Transaction) error

	// CreateTransactionItems inserts the line items of a transaction.
	CreateTransactionItems(ctx context.Context, tx pgx.Tx, items []model.TransactionItem) error

	// AdjustStock applies signed stock deltas to ingredients.
	AdjustStock(ctx context.Context, tx pgx.Tx, adjustments []model.StockAdjustment) error

	// GetByIDTx retrieves a transaction and its items within the
	// transaction. Returns nil when the transaction does not exist.
	GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Transaction, []model.TransactionItem, error)

	// GetByID retrieves a transaction and its items, with product names
	// resolved for display.
	GetByID(ctx context.Context, id int64) (*model.Transaction, []model.TransactionItem, error)

	// DeleteTransaction removes a transaction's items and then the
	// transaction row itself.
	DeleteTransaction(ctx context.Context, tx pgx.Tx, id int64) error

	// PurgeAll removes every transaction and line item.
	PurgeAll(ctx context.Context) error
}

// EmployeeRepository defines the interface for employee data access operations.
type EmployeeRepository interface {
	// GetAll retrieves all employees ordered by name.
	GetAll(ctx context.Context) ([]model.Employee, error)

	// GetByID retrieves a single employee by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Employee, error)

	// GetByName retrieves a single employee by unique name. Returns nil when absent.
	GetByName(ctx context.Context, name string) (*model.Employee, error)

	// Create inserts a new employee and returns it with its assigned ID.
	Create(ctx context.Context, emp *model.Employee) (*model.Employee, error)

	// Update modifies an existing employee. An empty PasswordHash keeps the
	// stored hash.
	Update(ctx context.Context, emp *model.Employee) error
}

// AttendanceRepository defines the interface for attendance data access operations.
type AttendanceRepository interface {
	// LastForRange retrieves the employee's most recent attendance record
	// with a check-in inside [from, to). Returns nil when absent.
	LastForRange(ctx context.Context, employeeID int64, from, to time.Time) (*model.Attendance, error)

	// CheckIn inserts a new open attendance record.
	CheckIn(ctx context.Context, employeeID int64, at time.Time) (*model.Attendance, error)

	// CheckOut closes an attendance record.
	CheckOut(ctx context.Context, id int64, at time.Time) error

	// History retrieves the employee's most recent records.
	History(ctx context.Context, employeeID int64, limit int) ([]model.Attendance, error)

	// PurgeAll removes every attendance record.
	PurgeAll(ctx context.Context) error
}

// ExpenseRepository defines the interface for expense data access operations.
type ExpenseRepository interface {
	// Create inserts a new expense and returns it with its assigned ID.
	Create(ctx context.Context, exp *model.Expense) (*model.Expense, error)

	// ListRecent retrieves the most recent expenses.
	ListRecent(ctx context.Context, limit int) ([]model.Expense, error)

	// PurgeAll removes every expense.
	PurgeAll(ctx context.Context) error
}

// ReportRepository defines the read-only aggregation queries behind the
// reporting pages.
type ReportRepository interface {
	// RevenueBetween sums quantity x price_per_unit over line items of
	// transactions in the range.
	RevenueBetween(ctx context.Context, start, end time.Time) (float64, error)

	// ExpenseTotalBetween sums expense amounts in the range.
	ExpenseTotalBetween(ctx context.Context, start, end time.Time) (float64, error)

	// DailyRevenue returns per-day revenue points for the range.
	DailyRevenue(ctx context.Context, start, end time.Time) ([]model.DailyRevenue, error)

	// TopProducts returns the best-selling products by quantity.
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]model.ProductSales, error)

	// ExpensesByCategory returns expense totals grouped by category.
	ExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.ExpenseCategoryTotal, error)

	// ProductMargins returns price, cost of goods and margin per product.
	ProductMargins(ctx context.Context) ([]model.ProductMargin, error)
}

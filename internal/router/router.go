package router

import (
	"net/http"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/handler"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Sale       *handler.SaleHandler
	Product    *handler.ProductHandler
	Ingredient *handler.IngredientHandler
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Expense    *handler.ExpenseHandler
	Report     *handler.ReportHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/login", h.Employee.Login)

	// Sale and transaction routes
	saleRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Sale.Create(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
	mux.HandleFunc("/api/sales", saleRouteHandler)
	mux.HandleFunc("/api/sales/", saleRouteHandler)

	mux.HandleFunc("/api/transactions/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/transactions/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/receipt"):
			h.Sale.Receipt(w, r)
		case r.Method == http.MethodGet:
			h.Sale.GetByID(w, r)
		case r.Method == http.MethodDelete:
			h.Sale.Void(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product catalog and recipe routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products" || r.URL.Path == "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				h.Product.List(w, r)
			case http.MethodPost:
				h.Product.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch {
		case strings.Contains(r.URL.Path, "/recipe/") && r.Method == http.MethodDelete:
			h.Product.RemoveRecipeEntry(w, r)
		case strings.HasSuffix(r.URL.Path, "/recipe") && r.Method == http.MethodGet:
			h.Product.GetRecipe(w, r)
		case strings.HasSuffix(r.URL.Path, "/recipe") && r.Method == http.MethodPut:
			h.Product.SetRecipeEntry(w, r)
		case strings.HasSuffix(r.URL.Path, "/cost") && r.Method == http.MethodGet:
			h.Product.CostOfGoods(w, r)
		case r.Method == http.MethodGet:
			h.Product.GetByID(w, r)
		case r.Method == http.MethodPut:
			h.Product.Update(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Ingredient inventory routes
	ingredientRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/ingredients" || r.URL.Path == "/api/ingredients/" {
			switch r.Method {
			case http.MethodGet:
				h.Ingredient.List(w, r)
			case http.MethodPost:
				h.Ingredient.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.Ingredient.GetByID(w, r)
		case http.MethodPut:
			h.Ingredient.Update(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/ingredients", ingredientRouteHandler)
	mux.HandleFunc("/api/ingredients/", ingredientRouteHandler)

	// Employee routes
	employeeRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/employees" || r.URL.Path == "/api/employees/" {
			switch r.Method {
			case http.MethodGet:
				h.Employee.List(w, r)
			case http.MethodPost:
				h.Employee.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if r.Method == http.MethodPut {
			h.Employee.Update(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
	mux.HandleFunc("/api/employees", employeeRouteHandler)
	mux.HandleFunc("/api/employees/", employeeRouteHandler)

	// Attendance routes
	mux.HandleFunc("/api/attendance/check-in", h.Attendance.CheckIn)
	mux.HandleFunc("/api/attendance/check-out", h.Attendance.CheckOut)
	mux.HandleFunc("/api/attendance/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/attendance/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.Attendance.History(w, r)
	})

	// Expense routes
	expenseRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Expense.List(w, r)
		case http.MethodPost:
			h.Expense.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/expenses", expenseRouteHandler)
	mux.HandleFunc("/api/expenses/", expenseRouteHandler)

	// Report routes
	mux.HandleFunc("/api/reports/summary", h.Report.Summary)
	mux.HandleFunc("/api/reports/daily-revenue", h.Report.DailyRevenue)
	mux.HandleFunc("/api/reports/top-products", h.Report.TopProducts)
	mux.HandleFunc("/api/reports/expenses-by-category", h.Report.ExpensesByCategory)
	mux.HandleFunc("/api/reports/product-margins", h.Report.ProductMargins)

	// Destructive history resets
	mux.HandleFunc("/api/admin/transactions", h.Sale.Purge)
	mux.HandleFunc("/api/admin/attendance", h.Attendance.Purge)
	mux.HandleFunc("/api/admin/expenses", h.Expense.Purge)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var root http.Handler = mux
	root = middleware.APIKeyAuth(apiKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.RequestID(root)
	root = middleware.Recovery(logger)(root)

	return root
}

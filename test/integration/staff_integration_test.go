package integration

import (
	"context"
	"testing"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffAndReporting_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()

	employeeRepo := repository.NewEmployeeRepository(testDB.Pool, logger)
	attendanceRepo := repository.NewAttendanceRepository(testDB.Pool, logger)
	expenseRepo := repository.NewExpenseRepository(testDB.Pool, logger)
	reportRepo := repository.NewReportRepository(testDB.Pool, logger)
	trxRepo := repository.NewTransactionRepository(testDB.Pool, logger)

	employeeService := service.NewEmployeeService(employeeRepo, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, logger)
	expenseService := service.NewExpenseService(expenseRepo, logger)
	reportService := service.NewReportService(reportRepo, logger)
	saleService := service.NewSaleService(trxRepo, logger)

	ctx := context.Background()

	t.Run("Seeded admin account authenticates", func(t *testing.T) {
		emp, err := employeeService.Authenticate(ctx, "admin", "admin")

		require.NoError(t, err)
		assert.Equal(t, "admin", emp.Name)
		assert.Equal(t, model.RoleAdmin, emp.Role)
		assert.True(t, emp.IsActive)
	})

	t.Run("Created employee can log in with the given password", func(t *testing.T) {
		_, err := employeeService.CreateEmployee(ctx, &model.EmployeeRequest{
			Name:       "Budi",
			Role:       model.RoleOperator,
			Password:   "rahasia123",
			WageAmount: 15000,
			WagePeriod: model.WageHourly,
			IsActive:   true,
		})
		require.NoError(t, err)

		emp, err := employeeService.Authenticate(ctx, "BUDI", "rahasia123")
		require.NoError(t, err)
		assert.Equal(t, "budi", emp.Name)

		_, err = employeeService.Authenticate(ctx, "budi", "wrong")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("Attendance round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		record, err := attendanceService.CheckIn(ctx, adminID)
		require.NoError(t, err)
		assert.Equal(t, adminID, record.EmployeeID)
		assert.Nil(t, record.CheckOut)

		_, err = attendanceService.CheckIn(ctx, adminID)
		assert.ErrorIs(t, err, model.ErrAlreadyCheckedIn)

		require.NoError(t, attendanceService.CheckOut(ctx, adminID))

		err = attendanceService.CheckOut(ctx, adminID)
		assert.ErrorIs(t, err, model.ErrNotCheckedIn)

		history, err := attendanceService.History(ctx, adminID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.NotNil(t, history[0].CheckOut)
	})

	t.Run("Financial summary nets sales against expenses", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Latte": 2, "Americano": 1},
			PaymentMethod: model.PaymentCash,
			EmployeeID:    adminID,
			CashReceived:  50000,
		})
		require.NoError(t, err)
		require.True(t, result.Success)

		today := time.Now().Format("2006-01-02")
		_, err = expenseService.RecordExpense(ctx, &model.ExpenseRequest{
			Date:          today,
			Category:      model.ExpenseIngredients,
			Description:   "milk restock",
			Amount:        18000,
			PaymentMethod: model.ExpensePaymentTransfer,
		})
		require.NoError(t, err)

		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 0, 1)

		summary, err := reportService.Summary(ctx, start, end)
		require.NoError(t, err)
		assert.InDelta(t, 45000, summary.TotalRevenue, 1e-9)
		assert.InDelta(t, 18000, summary.TotalExpense, 1e-9)
		assert.InDelta(t, 27000, summary.NetProfit, 1e-9)

		top, err := reportService.TopProducts(ctx, start, end)
		require.NoError(t, err)
		require.NotEmpty(t, top)
		assert.Equal(t, "Latte", top[0].ProductName)
		assert.Equal(t, 2, top[0].QuantitySold)

		daily, err := reportService.DailyRevenue(ctx, start, end)
		require.NoError(t, err)
		require.Len(t, daily, 1)
		assert.InDelta(t, 45000, daily[0].Revenue, 1e-9)

		byCategory, err := reportService.ExpensesByCategory(ctx, start, end)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, model.ExpenseIngredients, byCategory[0].Category)
		assert.InDelta(t, 18000, byCategory[0].Amount, 1e-9)
	})

	t.Run("Product margins reflect recipe costs", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		margins, err := reportService.ProductMargins(ctx)
		require.NoError(t, err)
		require.Len(t, margins, 2)

		byName := make(map[string]model.ProductMargin, len(margins))
		for _, m := range margins {
			byName[m.ProductName] = m
		}

		// Latte: 0.2 liter milk at 18,000 plus 18g beans at 120.
		latte := byName["Latte"]
		assert.InDelta(t, 5760, latte.CostOfGoods, 1e-9)
		assert.InDelta(t, 16000-5760, latte.Margin, 1e-9)

		americano := byName["Americano"]
		assert.InDelta(t, 2160, americano.CostOfGoods, 1e-9)
	})

	t.Run("Duplicate employee name is rejected", func(t *testing.T) {
		_, err := employeeService.CreateEmployee(ctx, &model.EmployeeRequest{
			Name:       "Admin",
			Role:       model.RoleAdmin,
			Password:   "whatever1",
			WagePeriod: model.WageMonthly,
			IsActive:   true,
		})
		assert.ErrorIs(t, err, model.ErrDuplicateName)
	})
}

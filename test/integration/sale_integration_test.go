package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	trxRepo := repository.NewTransactionRepository(testDB.Pool, logger)
	saleService := service.NewSaleService(trxRepo, logger)

	ctx := context.Background()

	t.Run("Sale deducts ingredient stock atomically", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		_, ingredientIDs := SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Latte": 3},
			PaymentMethod: model.PaymentCash,
			EmployeeID:    adminID,
			CashReceived:  50000,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Success)
		assert.Equal(t, 48000.0, result.Total)
		assert.Equal(t, 2000.0, result.Change)
		require.Len(t, result.Items, 1)
		assert.Equal(t, 16000.0, result.Items[0].PricePerUnit)

		// 3 lattes: 0.6 liter of milk and 54g of beans.
		assert.InDelta(t, 4.4, IngredientStock(t, testDB.Pool, ingredientIDs["Milk"]), 1e-9)
		assert.InDelta(t, 46, IngredientStock(t, testDB.Pool, ingredientIDs["Coffee Beans"]), 1e-9)

		trx, items, err := saleService.GetTransaction(ctx, result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentCash, trx.PaymentMethod)
		assert.Equal(t, 50000.0, trx.CashReceived)
		assert.Equal(t, adminID, trx.EmployeeID)
		require.Len(t, items, 1)
		assert.Equal(t, "Latte", items[0].ProductName)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("Insufficient stock rejects the whole cart with no side effects", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		_, ingredientIDs := SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		// 6 coffees need 108g of beans; only 100g are on hand.
		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Latte": 3, "Americano": 3},
			PaymentMethod: model.PaymentQRIS,
			EmployeeID:    adminID,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "insufficient stock")
		assert.Contains(t, result.Message, "Coffee Beans")

		// Nothing was written: no transaction rows and untouched stock.
		var count int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count))
		assert.Zero(t, count)
		assert.InDelta(t, 5, IngredientStock(t, testDB.Pool, ingredientIDs["Milk"]), 1e-9)
		assert.InDelta(t, 100, IngredientStock(t, testDB.Pool, ingredientIDs["Coffee Beans"]), 1e-9)
	})

	t.Run("Concurrent sales over one ingredient cannot jointly overdraw it", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		_, ingredientIDs := SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		// 100g of beans cover one three-latte order (54g), not two.
		results := make([]*model.SaleResult, 2)
		errs := make([]error, 2)

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = saleService.ProcessSale(ctx, &model.SaleRequest{
					Cart:          map[string]int{"Latte": 3},
					PaymentMethod: model.PaymentQRIS,
					EmployeeID:    adminID,
				})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for i := 0; i < 2; i++ {
			require.NoError(t, errs[i])
			require.NotNil(t, results[i])
			if results[i].Success {
				succeeded++
			} else {
				assert.Contains(t, results[i].Message, "insufficient stock")
			}
		}
		assert.Equal(t, 1, succeeded)

		// Exactly one order's worth was deducted and stock never went negative.
		assert.InDelta(t, 46, IngredientStock(t, testDB.Pool, ingredientIDs["Coffee Beans"]), 1e-9)
		assert.InDelta(t, 4.4, IngredientStock(t, testDB.Pool, ingredientIDs["Milk"]), 1e-9)
	})

	t.Run("Void restores the exact quantities the sale consumed", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		_, ingredientIDs := SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Latte": 2, "Americano": 1},
			PaymentMethod: model.PaymentDebit,
			EmployeeID:    adminID,
		})
		require.NoError(t, err)
		require.True(t, result.Success)

		require.NoError(t, saleService.VoidTransaction(ctx, result.TransactionID))

		assert.InDelta(t, 5, IngredientStock(t, testDB.Pool, ingredientIDs["Milk"]), 1e-9)
		assert.InDelta(t, 100, IngredientStock(t, testDB.Pool, ingredientIDs["Coffee Beans"]), 1e-9)

		_, _, err = saleService.GetTransaction(ctx, result.TransactionID)
		assert.ErrorIs(t, err, model.ErrTransactionNotFound)
	})

	t.Run("Void of unknown transaction is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		err := saleService.VoidTransaction(ctx, 123456)
		assert.ErrorIs(t, err, model.ErrTransactionNotFound)
	})

	t.Run("Price captured at sale time survives product price edits", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		productIDs, _ := SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Latte": 1},
			PaymentMethod: model.PaymentCash,
			EmployeeID:    adminID,
		})
		require.NoError(t, err)
		require.True(t, result.Success)

		_, err = testDB.Pool.Exec(ctx, "UPDATE products SET price = 20000 WHERE id = $1", productIDs["Latte"])
		require.NoError(t, err)

		_, items, err := saleService.GetTransaction(ctx, result.TransactionID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 16000.0, items[0].PricePerUnit)
	})

	t.Run("Unknown product in cart", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)
		adminID := AdminID(t, testDB.Pool)

		result, err := saleService.ProcessSale(ctx, &model.SaleRequest{
			Cart:          map[string]int{"Flat White": 1},
			PaymentMethod: model.PaymentCash,
			EmployeeID:    adminID,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

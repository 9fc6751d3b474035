package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

// saleService implements SaleService. It is stateless between calls; the
// cart lives only inside the SaleRequest for the duration of one checkout.
type saleService struct {
	trxRepo repository.TransactionRepository
	logger  zerolog.Logger
}

// NewSaleService creates a new sale service.
func NewSaleService(trxRepo repository.TransactionRepository, logger zerolog.Logger) SaleService {
	return &saleService{
		trxRepo: trxRepo,
		logger:  logger.With().Str("service", "sale").Logger(),
	}
}

// ProcessSale converts a cart into a committed transaction plus stock
// deductions as a single all-or-nothing unit. The sufficiency check and the
// deduction run inside one database transaction with the touched ingredient
// rows locked, so concurrent sales cannot jointly overdraw stock.
func (s *saleService) ProcessSale(ctx context.Context, req *model.SaleRequest) (*model.SaleResult, error) {
	if err := s.validateSaleRequest(req); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(req.Cart))
	for name := range req.Cart {
		names = append(names, name)
	}
	sort.Strings(names)

	tx, err := s.trxRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Resolve cart entries to products and current prices.
	products, err := s.trxRepo.GetProductsByName(ctx, tx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}
	for _, name := range names {
		if _, ok := products[name]; !ok {
			err = model.ErrProductNotFound
			s.logger.Warn().Str("product", name).Msg("unknown product in cart")
			return nil, err
		}
	}

	productIDs := make([]int64, 0, len(names))
	for _, name := range names {
		productIDs = append(productIDs, products[name].ID)
	}

	// Lock the touched ingredients and check sufficiency, accumulating
	// every shortage rather than stopping at the first.
	requirements, err := s.trxRepo.GetRecipeRequirements(ctx, tx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	deductions := make(map[int64]float64)
	var shortages []model.StockShortage
	for _, r := range requirements {
		qty := req.Cart[r.ProductName]
		required := r.QtyPerUnit * float64(qty)
		if r.Stock-deductions[r.IngredientID] < required {
			shortages = append(shortages, model.StockShortage{
				IngredientName: r.IngredientName,
				ProductName:    r.ProductName,
				Unit:           r.Unit,
				Required:       required,
				Available:      r.Stock - deductions[r.IngredientID],
			})
		}
		deductions[r.IngredientID] += required
	}

	if len(shortages) > 0 {
		insufficiency := &model.InsufficientStockError{Shortages: shortages}
		s.logger.Warn().Int("shortages", len(shortages)).Msg("sale rejected, insufficient stock")
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		return &model.SaleResult{Success: false, Message: insufficiency.Error()}, nil
	}

	// Commit the sale: one transaction row, one line item per cart entry
	// with the price captured now, and one stock decrement per ingredient.
	var total float64
	items := make([]model.TransactionItem, 0, len(names))
	for _, name := range names {
		p := products[name]
		qty := req.Cart[name]
		total += p.Price * float64(qty)
		items = append(items, model.TransactionItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Quantity:     qty,
			PricePerUnit: p.Price,
		})
	}

	// Cash tendered is persisted so a later receipt reprint can render the
	// Cash/Change lines; non-cash payments store zero.
	var cashReceived, change float64
	if req.PaymentMethod == model.PaymentCash && req.CashReceived > 0 {
		cashReceived = req.CashReceived
		change = req.CashReceived - total
	}

	trx := &model.Transaction{
		TransactionDate: time.Now(),
		TotalAmount:     total,
		PaymentMethod:   req.PaymentMethod,
		CashReceived:    cashReceived,
		EmployeeID:      req.EmployeeID,
	}

	if err = s.trxRepo.CreateTransaction(ctx, tx, trx); err != nil {
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	for i := range items {
		items[i].TransactionID = trx.ID
	}

	if err = s.trxRepo.CreateTransactionItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	adjustments := make([]model.StockAdjustment, 0, len(deductions))
	for id, required := range deductions {
		adjustments = append(adjustments, model.StockAdjustment{IngredientID: id, Delta: -required})
	}
	sort.Slice(adjustments, func(i, j int) bool {
		return adjustments[i].IngredientID < adjustments[j].IngredientID
	})

	if err = s.trxRepo.AdjustStock(ctx, tx, adjustments); err != nil {
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("transaction_id", trx.ID).Msg("failed to commit sale")
		return nil, fmt.Errorf("failed to process sale: %w", err)
	}

	s.logger.Info().
		Int64("transaction_id", trx.ID).
		Float64("total", total).
		Str("payment_method", req.PaymentMethod).
		Int("item_count", len(items)).
		Msg("sale committed")

	return &model.SaleResult{
		Success:       true,
		Message:       "transaction completed",
		TransactionID: trx.ID,
		Total:         total,
		Change:        change,
		Items:         items,
	}, nil
}

// VoidTransaction reverses a committed transaction: every ingredient
// quantity its line items consumed is added back to stock, then the line
// items and the transaction row are removed, all in one database
// transaction. Any transaction id is accepted, not only the most recent
// sale; voiding old history retroactively changes report output.
func (s *saleService) VoidTransaction(ctx context.Context, transactionID int64) error {
	tx, err := s.trxRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to void transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	trx, items, err := s.trxRepo.GetByIDTx(ctx, tx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to void transaction: %w", err)
	}
	if trx == nil {
		err = model.ErrTransactionNotFound
		s.logger.Warn().Int64("transaction_id", transactionID).Msg("void of unknown transaction rejected")
		return err
	}

	productIDs := make([]int64, 0, len(items))
	quantities := make(map[int64]int, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	requirements, err := s.trxRepo.GetRecipeRequirements(ctx, tx, productIDs)
	if err != nil {
		return fmt.Errorf("failed to void transaction: %w", err)
	}

	restored := make(map[int64]float64)
	for _, r := range requirements {
		restored[r.IngredientID] += r.QtyPerUnit * float64(quantities[r.ProductID])
	}

	adjustments := make([]model.StockAdjustment, 0, len(restored))
	for id, qty := range restored {
		adjustments = append(adjustments, model.StockAdjustment{IngredientID: id, Delta: qty})
	}
	sort.Slice(adjustments, func(i, j int) bool {
		return adjustments[i].IngredientID < adjustments[j].IngredientID
	})

	if err = s.trxRepo.AdjustStock(ctx, tx, adjustments); err != nil {
		return fmt.Errorf("failed to void transaction: %w", err)
	}

	if err = s.trxRepo.DeleteTransaction(ctx, tx, transactionID); err != nil {
		return fmt.Errorf("failed to void transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("transaction_id", transactionID).Msg("failed to commit void")
		return fmt.Errorf("failed to void transaction: %w", err)
	}

	s.logger.Warn().
		Int64("transaction_id", transactionID).
		Time("transaction_date", trx.TransactionDate).
		Int("item_count", len(items)).
		Msg("transaction voided, stock restored and history altered")

	return nil
}

// GetTransaction retrieves a committed transaction with its items.
func (s *saleService) GetTransaction(ctx context.Context, transactionID int64) (*model.Transaction, []model.TransactionItem, error) {
	trx, items, err := s.trxRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if trx == nil {
		return nil, nil, model.ErrTransactionNotFound
	}
	return trx, items, nil
}

// PurgeTransactions removes the whole transaction history.
func (s *saleService) PurgeTransactions(ctx context.Context) error {
	if err := s.trxRepo.PurgeAll(ctx); err != nil {
		return fmt.Errorf("failed to purge transactions: %w", err)
	}
	s.logger.Warn().Msg("transaction history purged")
	return nil
}

// validateSaleRequest validates the checkout payload before any
// persistence attempt.
func (s *saleService) validateSaleRequest(req *model.SaleRequest) error {
	if req == nil || len(req.Cart) == 0 {
		return model.ErrEmptyCart
	}

	for name, qty := range req.Cart {
		if name == "" {
			return model.ErrProductNotFound
		}
		if qty <= 0 {
			s.logger.Warn().Str("product", name).Int("quantity", qty).Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return model.ErrInvalidPayment
	}

	return nil
}

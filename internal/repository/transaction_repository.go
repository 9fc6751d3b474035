package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// transactionRepository implements the TransactionRepository interface using PostgreSQL.
type transactionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool, logger zerolog.Logger) TransactionRepository {
	return &transactionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "transaction").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *transactionRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetProductsByName resolves product names to products within the transaction.
func (r *transactionRepository) GetProductsByName(ctx context.Context, tx pgx.Tx, names []string) (map[string]model.Product, error) {
	if len(names) == 0 {
		return map[string]model.Product{}, nil
	}

	query := `
		SELECT id, name, price
		FROM products
		WHERE name = ANY($1)
	`

	rows, err := tx.Query(ctx, query, names)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(names)).Msg("failed to query products by name")
		return nil, fmt.Errorf("failed to query products by name: %w", err)
	}
	defer rows.Close()

	products := make(map[string]model.Product, len(names))
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products[p.Name] = p
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetRecipeRequirements reads recipe entries joined with current stock for
// the given products. The FOR UPDATE OF i clause locks the touched
// ingredient rows for the remainder of the transaction, so two concurrent
// sales over the same ingredient cannot both pass the sufficiency check and
// jointly overdraw it. Ordering by ingredient id keeps lock acquisition
// deterministic across sales.
func (r *transactionRepository) GetRecipeRequirements(ctx context.Context, tx pgx.Tx, productIDs []int64) ([]model.RecipeRequirement, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT rc.product_id, p.name, rc.ingredient_id, i.name, i.unit, rc.qty_per_unit, i.stock
		FROM recipes rc
		JOIN products p ON p.id = rc.product_id
		JOIN ingredients i ON i.id = rc.ingredient_id
		WHERE rc.product_id = ANY($1)
		ORDER BY rc.ingredient_id, rc.product_id
		FOR UPDATE OF i
	`

	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("product_count", len(productIDs)).Msg("failed to query recipe requirements")
		return nil, fmt.Errorf("failed to query recipe requirements: %w", err)
	}
	defer rows.Close()

	var reqs []model.RecipeRequirement
	for rows.Next() {
		var req model.RecipeRequirement
		err := rows.Scan(&req.ProductID, &req.ProductName, &req.IngredientID,
			&req.IngredientName, &req.Unit, &req.QtyPerUnit, &req.Stock)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan recipe requirement row")
			return nil, fmt.Errorf("failed to scan recipe requirement: %w", err)
		}
		reqs = append(reqs, req)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating recipe requirement rows")
		return nil, fmt.Errorf("error iterating recipe requirements: %w", err)
	}

	return reqs, nil
}

// CreateTransaction inserts a transaction row within the provided transaction.
func (r *transactionRepository) CreateTransaction(ctx context.Context, tx pgx.Tx, trx *model.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_date, total_amount, payment_method, cash_received, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		trx.TransactionDate, trx.TotalAmount, trx.PaymentMethod, trx.CashReceived, trx.EmployeeID,
	).Scan(&trx.ID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create transaction")
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	r.logger.Debug().Int64("transaction_id", trx.ID).Msg("transaction created")
	return nil
}

// CreateTransactionItems inserts multiple line items within the provided transaction.
func (r *transactionRepository) CreateTransactionItems(ctx context.Context, tx pgx.Tx, items []model.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO transaction_items (transaction_id, product_id, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.TransactionID, item.ProductID, item.Quantity, item.PricePerUnit)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("transaction_id", items[i].TransactionID).
				Int64("product_id", items[i].ProductID).
				Msg("failed to create transaction item")
			return fmt.Errorf("failed to create transaction item: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(items)).Msg("transaction items created")
	return nil
}

// AdjustStock applies signed stock deltas within the provided transaction.
func (r *transactionRepository) AdjustStock(ctx context.Context, tx pgx.Tx, adjustments []model.StockAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	query := `
		UPDATE ingredients
		SET stock = stock + $2
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for _, adj := range adjustments {
		batch.Queue(query, adj.IngredientID, adj.Delta)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(adjustments); i++ {
		tag, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("ingredient_id", adjustments[i].IngredientID).
				Float64("delta", adjustments[i].Delta).
				Msg("failed to adjust stock")
			return fmt.Errorf("failed to adjust stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("failed to adjust stock: ingredient %d not found", adjustments[i].IngredientID)
		}
	}

	r.logger.Debug().Int("count", len(adjustments)).Msg("ingredient stock adjusted")
	return nil
}

// GetByIDTx retrieves a transaction and its items within the provided transaction.
func (r *transactionRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Transaction, []model.TransactionItem, error) {
	return r.getByID(ctx, tx, id)
}

// GetByID retrieves a transaction and its items using the pool.
func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, []model.TransactionItem, error) {
	return r.getByID(ctx, r.pool, id)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *transactionRepository) getByID(ctx context.Context, q querier, id int64) (*model.Transaction, []model.TransactionItem, error) {
	trxQuery := `
		SELECT id, transaction_date, total_amount, payment_method, cash_received, employee_id
		FROM transactions
		WHERE id = $1
	`

	var trx model.Transaction
	err := q.QueryRow(ctx, trxQuery, id).Scan(
		&trx.ID,
		&trx.TransactionDate,
		&trx.TotalAmount,
		&trx.PaymentMethod,
		&trx.CashReceived,
		&trx.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("transaction_id", id).Msg("transaction not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Int64("transaction_id", id).Msg("failed to query transaction")
		return nil, nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	itemsQuery := `
		SELECT ti.id, ti.transaction_id, ti.product_id, p.name, ti.quantity, ti.price_per_unit
		FROM transaction_items ti
		JOIN products p ON p.id = ti.product_id
		WHERE ti.transaction_id = $1
		ORDER BY ti.id
	`

	rows, err := q.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("transaction_id", id).Msg("failed to query transaction items")
		return nil, nil, fmt.Errorf("failed to query transaction items: %w", err)
	}
	defer rows.Close()

	var items []model.TransactionItem
	for rows.Next() {
		var item model.TransactionItem
		err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.PricePerUnit)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan transaction item row")
			return nil, nil, fmt.Errorf("failed to scan transaction item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating transaction item rows")
		return nil, nil, fmt.Errorf("error iterating transaction items: %w", err)
	}

	return &trx, items, nil
}

// DeleteTransaction removes a transaction's items and then the transaction
// row within the provided transaction.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM transaction_items WHERE transaction_id = $1", id); err != nil {
		r.logger.Error().Err(err).Int64("transaction_id", id).Msg("failed to delete transaction items")
		return fmt.Errorf("failed to delete transaction items: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int64("transaction_id", id).Msg("failed to delete transaction")
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrTransactionNotFound
	}

	r.logger.Debug().Int64("transaction_id", id).Msg("transaction deleted")
	return nil
}

// PurgeAll removes every transaction and line item.
func (r *transactionRepository) PurgeAll(ctx context.Context) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM transaction_items"); err != nil {
		r.logger.Error().Err(err).Msg("failed to purge transaction items")
		return fmt.Errorf("failed to purge transaction items: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM transactions"); err != nil {
		r.logger.Error().Err(err).Msg("failed to purge transactions")
		return fmt.Errorf("failed to purge transactions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit purge: %w", err)
	}

	r.logger.Info().Msg("all transactions purged")
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// expenseRepository implements the ExpenseRepository interface using PostgreSQL.
type expenseRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewExpenseRepository creates a new PostgreSQL-backed expense repository.
func NewExpenseRepository(pool *pgxpool.Pool, logger zerolog.Logger) ExpenseRepository {
	return &expenseRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "expense").Logger(),
	}
}

// Create inserts a new expense and returns it with its assigned ID.
func (r *expenseRepository) Create(ctx context.Context, exp *model.Expense) (*model.Expense, error) {
	query := `
		INSERT INTO expenses (date, category, description, amount, payment_method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	created := *exp
	err := r.pool.QueryRow(ctx, query,
		exp.Date, exp.Category, exp.Description, exp.Amount, exp.PaymentMethod,
	).Scan(&created.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("category", exp.Category).Msg("failed to create expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	r.logger.Debug().Int64("expense_id", created.ID).Msg("expense recorded")
	return &created, nil
}

// ListRecent retrieves the most recent expenses.
func (r *expenseRepository) ListRecent(ctx context.Context, limit int) ([]model.Expense, error) {
	query := `
		SELECT id, date, category, description, amount, payment_method
		FROM expenses
		ORDER BY date DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query expenses")
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var exp model.Expense
		err := rows.Scan(&exp.ID, &exp.Date, &exp.Category, &exp.Description, &exp.Amount, &exp.PaymentMethod)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan expense row")
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating expense rows")
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// PurgeAll removes every expense.
func (r *expenseRepository) PurgeAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM expenses"); err != nil {
		r.logger.Error().Err(err).Msg("failed to purge expenses")
		return fmt.Errorf("failed to purge expenses: %w", err)
	}

	r.logger.Info().Msg("all expenses purged")
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reportRepository implements the ReportRepository interface using PostgreSQL.
// All queries are read-only aggregations over committed history; voided
// transactions no longer exist and therefore never appear.
type reportRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReportRepository creates a new PostgreSQL-backed report repository.
func NewReportRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReportRepository {
	return &reportRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "report").Logger(),
	}
}

// RevenueBetween sums quantity x price_per_unit over line items in the range.
func (r *reportRepository) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(ti.quantity * ti.price_per_unit), 0)
		FROM transactions t
		JOIN transaction_items ti ON ti.transaction_id = t.id
		WHERE t.transaction_date BETWEEN $1 AND $2
	`

	var revenue float64
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&revenue); err != nil {
		r.logger.Error().Err(err).Msg("failed to compute revenue")
		return 0, fmt.Errorf("failed to compute revenue: %w", err)
	}

	return revenue, nil
}

// ExpenseTotalBetween sums expense amounts in the range.
func (r *reportRepository) ExpenseTotalBetween(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date BETWEEN $1 AND $2
	`

	var total float64
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to compute expense total")
		return 0, fmt.Errorf("failed to compute expense total: %w", err)
	}

	return total, nil
}

// DailyRevenue returns per-day revenue points for the range.
func (r *reportRepository) DailyRevenue(ctx context.Context, start, end time.Time) ([]model.DailyRevenue, error) {
	query := `
		SELECT date_trunc('day', t.transaction_date) AS day,
		       SUM(ti.quantity * ti.price_per_unit) AS revenue
		FROM transactions t
		JOIN transaction_items ti ON ti.transaction_id = t.id
		WHERE t.transaction_date BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query daily revenue")
		return nil, fmt.Errorf("failed to query daily revenue: %w", err)
	}
	defer rows.Close()

	var points []model.DailyRevenue
	for rows.Next() {
		var p model.DailyRevenue
		if err := rows.Scan(&p.Day, &p.Revenue); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan daily revenue row")
			return nil, fmt.Errorf("failed to scan daily revenue: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating daily revenue rows")
		return nil, fmt.Errorf("error iterating daily revenue: %w", err)
	}

	return points, nil
}

// TopProducts returns the best-selling products by quantity.
func (r *reportRepository) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]model.ProductSales, error) {
	query := `
		SELECT p.name, SUM(ti.quantity) AS sold
		FROM transactions t
		JOIN transaction_items ti ON ti.transaction_id = t.id
		JOIN products p ON p.id = ti.product_id
		WHERE t.transaction_date BETWEEN $1 AND $2
		GROUP BY p.name
		ORDER BY sold DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top products")
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	var sales []model.ProductSales
	for rows.Next() {
		var s model.ProductSales
		if err := rows.Scan(&s.ProductName, &s.QuantitySold); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top product row")
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top product rows")
		return nil, fmt.Errorf("error iterating top products: %w", err)
	}

	return sales, nil
}

// ExpensesByCategory returns expense totals grouped by category.
func (r *reportRepository) ExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.ExpenseCategoryTotal, error) {
	query := `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE date BETWEEN $1 AND $2
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query expenses by category")
		return nil, fmt.Errorf("failed to query expenses by category: %w", err)
	}
	defer rows.Close()

	var totals []model.ExpenseCategoryTotal
	for rows.Next() {
		var t model.ExpenseCategoryTotal
		if err := rows.Scan(&t.Category, &t.Amount); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan expense category row")
			return nil, fmt.Errorf("failed to scan expense category: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating expense category rows")
		return nil, fmt.Errorf("error iterating expense categories: %w", err)
	}

	return totals, nil
}

// ProductMargins returns price, cost of goods and margin per product. Costs
// reflect the catalog state at query time, not at sale time.
func (r *reportRepository) ProductMargins(ctx context.Context) ([]model.ProductMargin, error) {
	query := `
		SELECT p.id, p.name, p.price,
		       COALESCE(SUM(rc.qty_per_unit * i.cost_per_unit), 0) AS cost
		FROM products p
		LEFT JOIN recipes rc ON rc.product_id = p.id
		LEFT JOIN ingredients i ON i.id = rc.ingredient_id
		GROUP BY p.id, p.name, p.price
		ORDER BY p.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query product margins")
		return nil, fmt.Errorf("failed to query product margins: %w", err)
	}
	defer rows.Close()

	var margins []model.ProductMargin
	for rows.Next() {
		var m model.ProductMargin
		if err := rows.Scan(&m.ProductID, &m.ProductName, &m.Price, &m.CostOfGoods); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product margin row")
			return nil, fmt.Errorf("failed to scan product margin: %w", err)
		}
		m.Margin = m.Price - m.CostOfGoods
		margins = append(margins, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product margin rows")
		return nil, fmt.Errorf("error iterating product margins: %w", err)
	}

	return margins, nil
}

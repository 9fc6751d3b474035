package database

import (
	"context"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// schema is applied idempotently at startup.
const schema = `
	CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		wage_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		wage_period TEXT NOT NULL DEFAULT 'hourly',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
	);

	CREATE TABLE IF NOT EXISTS ingredients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		unit TEXT NOT NULL,
		cost_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
		stock DOUBLE PRECISION NOT NULL DEFAULT 0,
		pack_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		pack_price DOUBLE PRECISION NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS recipes (
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		ingredient_id BIGINT NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
		qty_per_unit DOUBLE PRECISION NOT NULL CHECK (qty_per_unit > 0),
		PRIMARY KEY (product_id, ingredient_id)
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		total_amount DOUBLE PRECISION NOT NULL,
		payment_method TEXT NOT NULL,
		cash_received DOUBLE PRECISION NOT NULL DEFAULT 0,
		employee_id BIGINT NOT NULL REFERENCES employees(id)
	);

	CREATE TABLE IF NOT EXISTS transaction_items (
		id BIGSERIAL PRIMARY KEY,
		transaction_id BIGINT NOT NULL REFERENCES transactions(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price_per_unit DOUBLE PRECISION NOT NULL
	);

	CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		payment_method TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id),
		check_in TIMESTAMPTZ NOT NULL,
		check_out TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_transaction_items_transaction_id ON transaction_items(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(transaction_date);
	CREATE INDEX IF NOT EXISTS idx_attendance_employee_id ON attendance(employee_id);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema is up to date")
	return nil
}

// SeedDefaultAccounts creates the admin/admin and operator/operator accounts
// when the employees table is empty, so a fresh install can be logged into.
func SeedDefaultAccounts(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		name       string
		password   string
		role       string
		wagePeriod string
	}{
		{"admin", "admin", model.RoleAdmin, model.WageMonthly},
		{"operator", "operator", model.RoleOperator, model.WageHourly},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO employees (name, password_hash, role, wage_amount, wage_period, is_active)
			VALUES ($1, $2, $3, 0, $4, TRUE)
		`, a.name, string(hash), a.role, a.wagePeriod)
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", a.name, err)
		}

		logger.Info().Str("account", a.name).Str("role", a.role).Msg("default account created")
	}

	return nil
}

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, connects a pool and
// applies the schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	logger := zerolog.Nop()
	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	if err := database.SeedDefaultAccounts(ctx, pool, logger); err != nil {
		t.Fatalf("failed to seed default accounts: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCatalog inserts a small catalog: two drinks, their ingredients and
// recipes. Returns the product and ingredient IDs keyed by name.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) (map[string]int64, map[string]int64) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name  string
		price float64
	}{
		{"Latte", 16000},
		{"Americano", 13000},
	}

	productIDs := make(map[string]int64)
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id",
			p.name, p.price,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		productIDs[p.name] = id
	}

	ingredients := []struct {
		name        string
		unit        string
		costPerUnit float64
		stock       float64
	}{
		{"Milk", "liter", 18000, 5},
		{"Coffee Beans", "gram", 120, 100},
	}

	ingredientIDs := make(map[string]int64)
	for _, ing := range ingredients {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO ingredients (name, unit, cost_per_unit, stock) VALUES ($1, $2, $3, $4) RETURNING id",
			ing.name, ing.unit, ing.costPerUnit, ing.stock,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed ingredient %s: %v", ing.name, err)
		}
		ingredientIDs[ing.name] = id
	}

	recipes := []struct {
		product    string
		ingredient string
		qtyPerUnit float64
	}{
		{"Latte", "Milk", 0.2},
		{"Latte", "Coffee Beans", 18},
		{"Americano", "Coffee Beans", 18},
	}

	for _, rc := range recipes {
		_, err := pool.Exec(ctx,
			"INSERT INTO recipes (product_id, ingredient_id, qty_per_unit) VALUES ($1, $2, $3)",
			productIDs[rc.product], ingredientIDs[rc.ingredient], rc.qtyPerUnit,
		)
		if err != nil {
			t.Fatalf("failed to seed recipe %s/%s: %v", rc.product, rc.ingredient, err)
		}
	}

	return productIDs, ingredientIDs
}

// IngredientStock reads the current stock level of one ingredient.
func IngredientStock(t *testing.T, pool *pgxpool.Pool, id int64) float64 {
	t.Helper()

	var stock float64
	err := pool.QueryRow(context.Background(),
		"SELECT stock FROM ingredients WHERE id = $1", id,
	).Scan(&stock)
	if err != nil {
		t.Fatalf("failed to read ingredient stock: %v", err)
	}
	return stock
}

// AdminID returns the seeded admin account's ID.
func AdminID(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		"SELECT id FROM employees WHERE name = 'admin'",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to read admin account: %v", err)
	}
	return id
}

// CleanupDB clears catalog and history data, keeping the seeded accounts.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"transaction_items", "transactions", "recipes", "ingredients", "products", "expenses", "attendance"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

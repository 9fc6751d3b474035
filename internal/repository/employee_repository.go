package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// employeeRepository implements the EmployeeRepository interface using PostgreSQL.
type employeeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewEmployeeRepository creates a new PostgreSQL-backed employee repository.
func NewEmployeeRepository(pool *pgxpool.Pool, logger zerolog.Logger) EmployeeRepository {
	return &employeeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "employee").Logger(),
	}
}

const employeeColumns = "id, name, role, wage_amount, wage_period, is_active, password_hash"

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var emp model.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Role, &emp.WageAmount,
		&emp.WagePeriod, &emp.IsActive, &emp.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// GetAll retrieves all employees ordered by name.
func (r *employeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees ORDER BY name"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query employees")
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan employee row")
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating employee rows")
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetByID retrieves a single employee by ID.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"

	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("employee_id", id).Msg("employee not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("employee_id", id).Msg("failed to query employee")
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}

	return emp, nil
}

// GetByName retrieves a single employee by unique name.
func (r *employeeRepository) GetByName(ctx context.Context, name string) (*model.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE name = $1"

	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("name", name).Msg("employee not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("name", name).Msg("failed to query employee")
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}

	return emp, nil
}

// Create inserts a new employee and returns it with its assigned ID.
func (r *employeeRepository) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	query := `
		INSERT INTO employees (name, role, wage_amount, wage_period, is_active, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	created := *emp
	err := r.pool.QueryRow(ctx, query,
		emp.Name, emp.Role, emp.WageAmount, emp.WagePeriod, emp.IsActive, emp.PasswordHash,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("name", emp.Name).Msg("duplicate employee name")
			return nil, model.ErrDuplicateName
		}
		r.logger.Error().Err(err).Str("name", emp.Name).Msg("failed to create employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	r.logger.Debug().Int64("employee_id", created.ID).Str("name", created.Name).Msg("employee created")
	return &created, nil
}

// Update modifies an existing employee. An empty PasswordHash keeps the
// stored hash.
func (r *employeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	var (
		tag pgconn.CommandTag
		err error
	)

	if emp.PasswordHash != "" {
		query := `
			UPDATE employees
			SET name = $2, role = $3, wage_amount = $4, wage_period = $5, is_active = $6, password_hash = $7
			WHERE id = $1
		`
		tag, err = r.pool.Exec(ctx, query,
			emp.ID, emp.Name, emp.Role, emp.WageAmount, emp.WagePeriod, emp.IsActive, emp.PasswordHash)
	} else {
		query := `
			UPDATE employees
			SET name = $2, role = $3, wage_amount = $4, wage_period = $5, is_active = $6
			WHERE id = $1
		`
		tag, err = r.pool.Exec(ctx, query,
			emp.ID, emp.Name, emp.Role, emp.WageAmount, emp.WagePeriod, emp.IsActive)
	}

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		r.logger.Error().Err(err).Int64("employee_id", emp.ID).Msg("failed to update employee")
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}

	return nil
}

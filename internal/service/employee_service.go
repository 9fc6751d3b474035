package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// employeeService implements EmployeeService.
type employeeService struct {
	employeeRepo repository.EmployeeRepository
	logger       zerolog.Logger
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo repository.EmployeeRepository, logger zerolog.Logger) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		logger:       logger.With().Str("service", "employee").Logger(),
	}
}

// Authenticate verifies credentials against the stored bcrypt hash.
// Usernames are case-insensitive; inactive accounts cannot log in.
func (s *employeeService) Authenticate(ctx context.Context, name, password string) (*model.Employee, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || password == "" {
		return nil, model.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if emp == nil {
		s.logger.Warn().Str("name", name).Msg("login attempt for unknown account")
		return nil, model.ErrInvalidCredentials
	}
	if !emp.IsActive {
		s.logger.Warn().Str("name", name).Msg("login attempt for inactive account")
		return nil, model.ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("name", name).Msg("login attempt with wrong password")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Int64("employee_id", emp.ID).Str("name", emp.Name).Msg("employee authenticated")
	return emp, nil
}

// ListEmployees retrieves all employees.
func (s *employeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployee retrieves an employee by ID.
func (s *employeeService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp == nil {
		return nil, model.ErrEmployeeNotFound
	}
	return emp, nil
}

// CreateEmployee validates the request, hashes the password and inserts the
// account. A password is mandatory for new accounts.
func (s *employeeService) CreateEmployee(ctx context.Context, req *model.EmployeeRequest) (*model.Employee, error) {
	if err := validateEmployeeRequest(req, true); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := &model.Employee{
		Name:         strings.ToLower(strings.TrimSpace(req.Name)),
		Role:         req.Role,
		WageAmount:   req.WageAmount,
		WagePeriod:   req.WagePeriod,
		IsActive:     req.IsActive,
		PasswordHash: string(hash),
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", created.ID).Str("name", created.Name).Msg("employee created")
	return created, nil
}

// UpdateEmployee validates the request and updates the account. An empty
// password keeps the stored hash.
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, req *model.EmployeeRequest) error {
	if err := validateEmployeeRequest(req, false); err != nil {
		return err
	}

	emp := &model.Employee{
		ID:         id,
		Name:       strings.ToLower(strings.TrimSpace(req.Name)),
		Role:       req.Role,
		WageAmount: req.WageAmount,
		WagePeriod: req.WagePeriod,
		IsActive:   req.IsActive,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	return s.employeeRepo.Update(ctx, emp)
}

func validateEmployeeRequest(req *model.EmployeeRequest, passwordRequired bool) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Employee name is required")
	}
	if req.Role != model.RoleAdmin && req.Role != model.RoleOperator {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Role must be Admin or Operator")
	}
	switch req.WagePeriod {
	case model.WageHourly, model.WageDaily, model.WageMonthly:
	default:
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Wage period must be hourly, daily or monthly")
	}
	if req.WageAmount < 0 {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Wage amount must not be negative")
	}
	if passwordRequired && req.Password == "" {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Password is required for new employees")
	}
	return nil
}

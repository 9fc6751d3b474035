package service

import (
	"context"
	"testing"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByName(ctx context.Context, name string) (*model.Employee, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestEmployeeService_Authenticate(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	stored := &model.Employee{
		ID:           1,
		Name:         "admin",
		Role:         model.RoleAdmin,
		IsActive:     true,
		PasswordHash: hashPassword(t, "admin"),
	}
	employeeRepo.On("GetByName", ctx, "admin").Return(stored, nil)

	// Usernames are case-insensitive.
	emp, err := svc.Authenticate(ctx, "  Admin ", "admin")

	require.NoError(t, err)
	assert.Equal(t, int64(1), emp.ID)
	assert.Equal(t, model.RoleAdmin, emp.Role)
}

func TestEmployeeService_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	stored := &model.Employee{
		ID: 1, Name: "admin", IsActive: true,
		PasswordHash: hashPassword(t, "admin"),
	}
	employeeRepo.On("GetByName", ctx, "admin").Return(stored, nil)

	emp, err := svc.Authenticate(ctx, "admin", "wrong")

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestEmployeeService_Authenticate_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	employeeRepo.On("GetByName", ctx, "ghost").Return(nil, nil)

	emp, err := svc.Authenticate(ctx, "ghost", "password")

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestEmployeeService_Authenticate_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	stored := &model.Employee{
		ID: 2, Name: "operator", IsActive: false,
		PasswordHash: hashPassword(t, "operator"),
	}
	employeeRepo.On("GetByName", ctx, "operator").Return(stored, nil)

	emp, err := svc.Authenticate(ctx, "operator", "operator")

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, model.ErrInactiveAccount)
}

func TestEmployeeService_Authenticate_BlankCredentials(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	emp, err := svc.Authenticate(ctx, "", "")

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	employeeRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	employeeRepo.On("Create", ctx, mock.MatchedBy(func(emp *model.Employee) bool {
		// Name lowercased and the password stored only as a bcrypt hash.
		return emp.Name == "budi" &&
			emp.Role == model.RoleOperator &&
			emp.PasswordHash != "" &&
			emp.PasswordHash != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("secret123")) == nil
	})).Return(&model.Employee{ID: 3, Name: "budi", Role: model.RoleOperator}, nil)

	created, err := svc.CreateEmployee(ctx, &model.EmployeeRequest{
		Name:       "Budi",
		Role:       model.RoleOperator,
		Password:   "secret123",
		WageAmount: 15000,
		WagePeriod: model.WageHourly,
		IsActive:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_CreateEmployee_Invalid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.EmployeeRequest
	}{
		{"Nil request", nil},
		{"Blank name", &model.EmployeeRequest{Role: model.RoleAdmin, Password: "x", WagePeriod: model.WageDaily}},
		{"Unknown role", &model.EmployeeRequest{Name: "budi", Role: "Owner", Password: "x", WagePeriod: model.WageDaily}},
		{"Unknown wage period", &model.EmployeeRequest{Name: "budi", Role: model.RoleAdmin, Password: "x", WagePeriod: "weekly"}},
		{"Negative wage", &model.EmployeeRequest{Name: "budi", Role: model.RoleAdmin, Password: "x", WagePeriod: model.WageDaily, WageAmount: -1}},
		{"Missing password", &model.EmployeeRequest{Name: "budi", Role: model.RoleAdmin, WagePeriod: model.WageDaily}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employeeRepo := new(MockEmployeeRepository)
			svc := NewEmployeeService(employeeRepo, zerolog.Nop())

			created, err := svc.CreateEmployee(ctx, tt.req)

			assert.Nil(t, created)
			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestEmployeeService_UpdateEmployee_KeepsHashWhenPasswordEmpty(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	employeeRepo.On("Update", ctx, mock.MatchedBy(func(emp *model.Employee) bool {
		return emp.ID == 3 && emp.PasswordHash == ""
	})).Return(nil)

	err := svc.UpdateEmployee(ctx, 3, &model.EmployeeRequest{
		Name:       "budi",
		Role:       model.RoleOperator,
		WageAmount: 16000,
		WagePeriod: model.WageHourly,
		IsActive:   true,
	})

	require.NoError(t, err)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeRepo := new(MockEmployeeRepository)
	svc := NewEmployeeService(employeeRepo, zerolog.Nop())

	employeeRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

	emp, err := svc.GetEmployee(ctx, 99)

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
}

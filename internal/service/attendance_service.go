package service

import (
	"context"
	"fmt"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

const attendanceHistoryLimit = 30

// attendanceService implements AttendanceService.
type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	now            func() time.Time
	logger         zerolog.Logger
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	logger zerolog.Logger,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
		logger:         logger.With().Str("service", "attendance").Logger(),
	}
}

// CheckIn opens a shift for the employee. Rejected when a record already
// exists for today, whether still open or already closed.
func (s *attendanceService) CheckIn(ctx context.Context, employeeID int64) (*model.Attendance, error) {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(s.now())
	last, err := s.attendanceRepo.LastForRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check in: %w", err)
	}
	if last != nil {
		return nil, model.ErrAlreadyCheckedIn
	}

	att, err := s.attendanceRepo.CheckIn(ctx, employeeID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	s.logger.Info().Int64("employee_id", employeeID).Time("check_in", att.CheckIn).Msg("employee checked in")
	return att, nil
}

// CheckOut closes the employee's open shift for today.
func (s *attendanceService) CheckOut(ctx context.Context, employeeID int64) error {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return err
	}

	dayStart, dayEnd := dayBounds(s.now())
	last, err := s.attendanceRepo.LastForRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to check out: %w", err)
	}
	if last == nil || last.CheckOut != nil {
		return model.ErrNotCheckedIn
	}

	if err := s.attendanceRepo.CheckOut(ctx, last.ID, s.now()); err != nil {
		return fmt.Errorf("failed to check out: %w", err)
	}

	s.logger.Info().Int64("employee_id", employeeID).Int64("attendance_id", last.ID).Msg("employee checked out")
	return nil
}

// History retrieves the employee's recent shifts.
func (s *attendanceService) History(ctx context.Context, employeeID int64) ([]model.Attendance, error) {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.History(ctx, employeeID, attendanceHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	return records, nil
}

// PurgeAttendance removes the whole attendance history.
func (s *attendanceService) PurgeAttendance(ctx context.Context) error {
	if err := s.attendanceRepo.PurgeAll(ctx); err != nil {
		return fmt.Errorf("failed to purge attendance: %w", err)
	}
	s.logger.Warn().Msg("attendance history purged")
	return nil
}

func (s *attendanceService) ensureEmployee(ctx context.Context, employeeID int64) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp == nil {
		return model.ErrEmployeeNotFound
	}
	return nil
}

// dayBounds returns the local [midnight, next midnight) window around t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// attendanceRepository implements the AttendanceRepository interface using PostgreSQL.
type attendanceRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAttendanceRepository creates a new PostgreSQL-backed attendance repository.
func NewAttendanceRepository(pool *pgxpool.Pool, logger zerolog.Logger) AttendanceRepository {
	return &attendanceRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "attendance").Logger(),
	}
}

// LastForRange retrieves the employee's most recent attendance record with a
// check-in inside [from, to).
func (r *attendanceRepository) LastForRange(ctx context.Context, employeeID int64, from, to time.Time) (*model.Attendance, error) {
	query := `
		SELECT id, employee_id, check_in, check_out
		FROM attendance
		WHERE employee_id = $1 AND check_in >= $2 AND check_in < $3
		ORDER BY id DESC
		LIMIT 1
	`

	var att model.Attendance
	err := r.pool.QueryRow(ctx, query, employeeID, from, to).
		Scan(&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("failed to query attendance")
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}

	return &att, nil
}

// CheckIn inserts a new open attendance record.
func (r *attendanceRepository) CheckIn(ctx context.Context, employeeID int64, at time.Time) (*model.Attendance, error) {
	query := `
		INSERT INTO attendance (employee_id, check_in)
		VALUES ($1, $2)
		RETURNING id
	`

	att := model.Attendance{EmployeeID: employeeID, CheckIn: at}
	if err := r.pool.QueryRow(ctx, query, employeeID, at).Scan(&att.ID); err != nil {
		r.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("failed to record check-in")
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	r.logger.Debug().Int64("employee_id", employeeID).Int64("attendance_id", att.ID).Msg("check-in recorded")
	return &att, nil
}

// CheckOut closes an attendance record.
func (r *attendanceRepository) CheckOut(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE attendance
		SET check_out = $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		r.logger.Error().Err(err).Int64("attendance_id", id).Msg("failed to record check-out")
		return fmt.Errorf("failed to record check-out: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotCheckedIn
	}

	return nil
}

// History retrieves the employee's most recent attendance records.
func (r *attendanceRepository) History(ctx context.Context, employeeID int64, limit int) ([]model.Attendance, error) {
	query := `
		SELECT id, employee_id, check_in, check_out
		FROM attendance
		WHERE employee_id = $1
		ORDER BY check_in DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, employeeID, limit)
	if err != nil {
		r.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("failed to query attendance history")
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var att model.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan attendance row")
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating attendance rows")
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// PurgeAll removes every attendance record.
func (r *attendanceRepository) PurgeAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM attendance"); err != nil {
		r.logger.Error().Err(err).Msg("failed to purge attendance")
		return fmt.Errorf("failed to purge attendance: %w", err)
	}

	r.logger.Info().Msg("all attendance records purged")
	return nil
}

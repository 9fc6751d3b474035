package model

import "time"

// Attendance represents one work shift. CheckOut is nil while the shift is
// still open.
type Attendance struct {
	ID         int64      `json:"id" db:"id"`
	EmployeeID int64      `json:"employeeId" db:"employee_id"`
	CheckIn    time.Time  `json:"checkIn" db:"check_in"`
	CheckOut   *time.Time `json:"checkOut,omitempty" db:"check_out"`
}

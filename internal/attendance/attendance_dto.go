package attendance

import (
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"
)

// CheckRequest is the body of check-in and check-out. Both fields are
// optional: employee_id defaults to the caller, timestamp to now.
type CheckRequest struct {
	EmployeeID string     `json:"employee_id" binding:"omitempty,uuid"`
	Timestamp  *time.Time `json:"timestamp"`
}

type AttendanceResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	AttendanceDate string     `json:"attendance_date"`
	CheckInTime    time.Time  `json:"check_in_time"`
	CheckOutTime   *time.Time `json:"check_out_time,omitempty"`
	TotalHours     *float64   `json:"total_hours"`
	Status         string     `json:"status"`
}

type StatusResponse struct {
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	CheckedIn  bool                `json:"checked_in"`
	Record     *AttendanceResponse `json:"record,omitempty"`
}

func mapToResponse(r AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:             r.ID.String(),
		EmployeeID:     r.EmployeeID.String(),
		AttendanceDate: timeutil.FormatDate(r.AttendanceDate),
		CheckInTime:    r.CheckInTime,
		CheckOutTime:   r.CheckOutTime,
		TotalHours:     r.TotalHours,
		Status:         r.Status,
	}
}

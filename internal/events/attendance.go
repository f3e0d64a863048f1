package events

import "time"

const (
	AttendanceLifecycleTopic = "hr.attendance.lifecycle.v1"

	EventTypeAttendanceCheckedIn  = "attendance_checked_in"
	EventTypeAttendanceCheckedOut = "attendance_checked_out"
)

type AttendanceEvent struct {
	EventType      string     `json:"event_type"`
	RecordID       string     `json:"record_id"`
	EmployeeID     string     `json:"employee_id"`
	AttendanceDate string     `json:"attendance_date"`
	CheckInTime    time.Time  `json:"check_in_time"`
	CheckOutTime   *time.Time `json:"check_out_time,omitempty"`
	TotalHours     *float64   `json:"total_hours,omitempty"`
	ActorID        string     `json:"actor_id,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

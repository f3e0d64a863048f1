package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusIncomplete = "incomplete"
)

// AttendanceRecord is one check-in/check-out cycle. The unique index on
// (employee_id, attendance_date) makes check-in atomic: one cycle per
// employee per day.
type AttendanceRecord struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	CheckInTime    time.Time  `gorm:"column:check_in_time;type:timestamptz;not null"`
	CheckOutTime   *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	TotalHours     *float64   `gorm:"column:total_hours;type:numeric(6,2)"`
	Status         string     `gorm:"column:status;type:varchar(20);not null"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

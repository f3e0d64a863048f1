package timeentry

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is one wall-clock work session used for payroll. HourlyRate is
// captured at clock-in, so later rate changes never alter DailyWage.
type TimeEntry struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_time_entry_employee_date,priority:1"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255);not null"`
	EntryDate    string    `gorm:"column:entry_date;type:varchar(10);not null;uniqueIndex:uq_time_entry_employee_date,priority:2"`
	ClockIn      string    `gorm:"column:clock_in;type:varchar(5);not null"`
	ClockOut     *string   `gorm:"column:clock_out;type:varchar(5)"`
	TotalHours   *float64  `gorm:"column:total_hours;type:numeric(6,2)"`
	HourlyRate   float64   `gorm:"column:hourly_rate;type:numeric(10,2);not null"`
	DailyWage    *float64  `gorm:"column:daily_wage;type:numeric(12,2)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

type EmployeeSettings struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	HourlyRate float64   `gorm:"column:hourly_rate;type:numeric(10,2);not null;check:chk_employee_settings_rate,hourly_rate > 0"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (EmployeeSettings) TableName() string {
	return "employee_settings"
}

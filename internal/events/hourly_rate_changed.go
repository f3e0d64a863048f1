package events

import "time"

const (
	PayrollSettingsTopic       = "hr.payroll.settings.v1"
	EventTypeHourlyRateChanged = "hourly_rate_changed"
)

// HourlyRateChangedEvent records a new rate. Entries already clocked keep the
// rate they captured.
type HourlyRateChangedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	OldRate    *float64  `json:"old_rate,omitempty"`
	NewRate    float64   `json:"new_rate"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

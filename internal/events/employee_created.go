package events

import "time"

const (
	EmployeeLifecycleTopic   = "hr.employee.lifecycle.v1"
	EventTypeEmployeeCreated = "employee_created"
)

// EmployeeCreatedEvent is published by the employee directory when a new
// employee is added.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name,omitempty"`
	Department string    `json:"department,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

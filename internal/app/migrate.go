package app

import (
	"fmt"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables and indexes the services rely on.
// The unique indexes on attendance and time entries are what make check-in
// and clock-in race safe.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&auth.User{},
		&attendance.AttendanceRecord{},
		&timeentry.TimeEntry{},
		&timeentry.EmployeeSettings{},
		&kafka.OutboxEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

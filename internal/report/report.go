// Package report folds attendance records into administrative summaries. It
// holds no state and performs no I/O.
package report

import (
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"
)

const (
	StatusAbsent     = "absent"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusIncomplete = "incomplete"
)

type Employee struct {
	ID         string
	FullName   string
	Department string
	Position   string
}

// Record is one attendance cycle. Date is the calendar day as midnight UTC.
type Record struct {
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     string
}

// Clock fixes the reporting instant. Today is the calendar day of Now in the
// service time zone.
type Clock struct {
	Now   time.Time
	Today time.Time
}

type EmployeeOverview struct {
	EmployeeID   string     `json:"employee_id"`
	FullName     string     `json:"full_name"`
	Department   string     `json:"department,omitempty"`
	Position     string     `json:"position,omitempty"`
	Status       string     `json:"status"`
	TodayHours   float64    `json:"today_hours"`
	WeekHours    float64    `json:"week_hours"`
	LastCheckIn  *time.Time `json:"last_check_in,omitempty"`
	LastCheckOut *time.Time `json:"last_check_out,omitempty"`
}

type Overview struct {
	Date        string             `json:"date"`
	WindowStart string             `json:"window_start"`
	Employees   []EmployeeOverview `json:"employees"`
}

type Summary struct {
	Date              string  `json:"date"`
	TotalEmployees    int     `json:"total_employees"`
	CheckedInCount    int     `json:"checked_in_count"`
	CheckedOutCount   int     `json:"checked_out_count"`
	IncompleteCount   int     `json:"incomplete_count"`
	AbsentCount       int     `json:"absent_count"`
	TotalHoursToday   float64 `json:"total_hours_today"`
	AverageHoursToday float64 `json:"average_hours_today"`
}

// BuildOverview reports, per employee, the status and hours on day, the hours
// over the trailing window ending on day, and the latest check-in/out in the
// window. Records of employees not listed are ignored.
func BuildOverview(employees []Employee, records []Record, day time.Time, clock Clock) Overview {
	from, to := timeutil.TrailingWindow(day)
	byEmployee := groupByEmployee(records)

	rows := make([]EmployeeOverview, 0, len(employees))
	for _, e := range employees {
		row := EmployeeOverview{
			EmployeeID: e.ID,
			FullName:   e.FullName,
			Department: e.Department,
			Position:   e.Position,
			Status:     StatusAbsent,
		}

		var week float64
		for _, r := range byEmployee[e.ID] {
			if r.Date.Before(from) || r.Date.After(to) {
				continue
			}
			h := hoursOf(r, clock)
			week += h

			if timeutil.SameDay(r.Date, day) {
				row.Status = r.Status
				row.TodayHours = timeutil.Round2(h)
			}
			if row.LastCheckIn == nil || r.CheckIn.After(*row.LastCheckIn) {
				in := r.CheckIn
				row.LastCheckIn = &in
			}
			if r.CheckOut != nil && (row.LastCheckOut == nil || r.CheckOut.After(*row.LastCheckOut)) {
				out := *r.CheckOut
				row.LastCheckOut = &out
			}
		}
		row.WeekHours = timeutil.Round2(week)
		rows = append(rows, row)
	}

	return Overview{
		Date:        timeutil.FormatDate(day),
		WindowStart: timeutil.FormatDate(from),
		Employees:   rows,
	}
}

// Summarize aggregates day over the listed employees. The average only counts
// employees with a completed or in-progress session and is 0 when there are
// none.
func Summarize(employees []Employee, records []Record, day time.Time, clock Clock) Summary {
	s := Summary{
		Date:           timeutil.FormatDate(day),
		TotalEmployees: len(employees),
	}

	known := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		known[e.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(employees))
	worked := 0
	for _, r := range records {
		if _, ok := known[r.EmployeeID]; !ok || !timeutil.SameDay(r.Date, day) {
			continue
		}
		if _, dup := seen[r.EmployeeID]; dup {
			continue
		}
		seen[r.EmployeeID] = struct{}{}

		switch r.Status {
		case StatusCheckedIn:
			s.CheckedInCount++
			// an open cycle of a past day has no elapsed hours to average
			if timeutil.SameDay(r.Date, clock.Today) {
				worked++
			}
		case StatusCheckedOut:
			s.CheckedOutCount++
			worked++
		case StatusIncomplete:
			s.IncompleteCount++
			continue
		default:
			continue
		}
		s.TotalHoursToday += hoursOf(r, clock)
	}

	s.AbsentCount = s.TotalEmployees - len(seen)
	s.TotalHoursToday = timeutil.Round2(s.TotalHoursToday)
	if worked > 0 {
		s.AverageHoursToday = timeutil.Round2(s.TotalHoursToday / float64(worked))
	}
	return s
}

// hoursOf is the stored total for a finished cycle and the elapsed time for a
// cycle still open today. Open cycles of other days count as zero.
func hoursOf(r Record, clock Clock) float64 {
	switch r.Status {
	case StatusCheckedOut:
		if r.TotalHours != nil {
			return *r.TotalHours
		}
		if r.CheckOut != nil {
			return timeutil.Hours(r.CheckOut.Sub(r.CheckIn))
		}
		return 0
	case StatusCheckedIn:
		if !timeutil.SameDay(r.Date, clock.Today) || clock.Now.Before(r.CheckIn) {
			return 0
		}
		return timeutil.Hours(clock.Now.Sub(r.CheckIn))
	default:
		return 0
	}
}

func groupByEmployee(records []Record) map[string][]Record {
	out := make(map[string][]Record)
	for _, r := range records {
		out[r.EmployeeID] = append(out[r.EmployeeID], r)
	}
	return out
}

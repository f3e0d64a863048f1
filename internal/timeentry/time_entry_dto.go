package timeentry

import "time"

// ClockRequest is the body of clock-in and clock-out. Empty fields default to
// the caller, today and the current wall-clock time.
type ClockRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type SetHourlyRateRequest struct {
	HourlyRate float64 `json:"hourly_rate" binding:"required,gt=0"`
}

type TimeEntryResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	TotalHours   *float64 `json:"total_hours"`
	HourlyRate   float64  `json:"hourly_rate"`
	DailyWage    *float64 `json:"daily_wage"`
}

type StatusResponse struct {
	EmployeeID string             `json:"employee_id"`
	Date       string             `json:"date"`
	ClockedIn  bool               `json:"clocked_in"`
	Entry      *TimeEntryResponse `json:"entry,omitempty"`
}

type SettingsResponse struct {
	EmployeeID string  `json:"employee_id"`
	HourlyRate float64 `json:"hourly_rate"`
	UpdatedAt  string  `json:"updated_at"`
}

func mapToResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           e.ID.String(),
		EmployeeID:   e.EmployeeID.String(),
		EmployeeName: e.EmployeeName,
		Date:         e.EntryDate,
		ClockIn:      e.ClockIn,
		ClockOut:     e.ClockOut,
		TotalHours:   e.TotalHours,
		HourlyRate:   e.HourlyRate,
		DailyWage:    e.DailyWage,
	}
}

func mapToListResponse(entries []TimeEntry) []TimeEntryResponse {
	res := make([]TimeEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapSettings(s EmployeeSettings) SettingsResponse {
	return SettingsResponse{
		EmployeeID: s.EmployeeID.String(),
		HourlyRate: s.HourlyRate,
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

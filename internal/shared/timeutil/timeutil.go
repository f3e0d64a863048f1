package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// WindowDays is the length of the trailing hours window, the report day
	// included.
	WindowDays = 7
)

// DateOf returns the calendar day of t in loc as midnight UTC. Calendar
// days are stored and compared in this form.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseClock parses a strict HH:MM value and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != len(ClockLayout) {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatDate(d time.Time) string { return d.Format(DateLayout) }

// TrailingWindow returns the first and last day of the WindowDays window
// ending on day.
func TrailingWindow(day time.Time) (time.Time, time.Time) {
	return day.AddDate(0, 0, -(WindowDays - 1)), day
}

// SameDay reports whether two calendar days are equal.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Hours converts d to hours rounded to two decimals.
func Hours(d time.Duration) float64 {
	return Round2(d.Hours())
}

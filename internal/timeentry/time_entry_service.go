package timeentry

import (
	"context"
	"math"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/database"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"
	timeentryerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=time_entry_service.go -destination=mock/time_entry_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID, employeeName, date, clockIn string) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, employeeID, date, clockOut string) (TimeEntryResponse, error)
	GetEmployeeStatus(ctx context.Context, employeeID, date string) (StatusResponse, error)
	GetEmployeeEntries(ctx context.Context, employeeID string, filter ListFilter) ([]TimeEntryResponse, error)
	SetEmployeeHourlyRate(ctx context.Context, employeeID string, rate float64) (SettingsResponse, error)
	GetAllEmployeeSettings(ctx context.Context) ([]SettingsResponse, error)
	EnsureDefaultSettings(ctx context.Context, employeeID string) (bool, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithLocation sets the zone used for default dates and times. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("timeentry.service")
		}
	}
}

type service struct {
	tx          database.TxManager
	repo        Repository
	outbox      kafka.OutboxRepository
	employees   employee.Repository
	defaultRate float64
	now         func() time.Time
	loc         *time.Location
	logger      *zap.Logger
}

// NewService wires the payroll ledger. defaultRate applies to employees
// without configured settings.
func NewService(tx database.TxManager, repo Repository, outbox kafka.OutboxRepository, employees employee.Repository, defaultRate float64, opts ...Option) Service {
	s := &service{
		tx:          tx,
		repo:        repo,
		outbox:      outbox,
		employees:   employees,
		defaultRate: defaultRate,
		now:         time.Now,
		loc:         time.UTC,
		logger:      zap.L().Named("timeentry.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClockIn opens the entry for date, stamping the employee's current rate on
// it. Empty date and clockIn default to now.
func (s *service) ClockIn(ctx context.Context, employeeID, employeeName, date, clockIn string) (TimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	date, clockIn = s.defaults(date, clockIn)
	if _, err := timeutil.ParseDate(date); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidFormat
	}
	if _, err := timeutil.ParseClock(clockIn); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidFormat
	}

	emp, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	if employeeName == "" {
		employeeName = emp.FullName
	}

	var entry TimeEntry
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindEntry(ctx, id, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return timeentryerrors.ErrAlreadyClockedIn
		}

		rate := s.defaultRate
		settings, err := repo.GetSettings(ctx, id)
		if err != nil {
			return err
		}
		if settings != nil {
			rate = settings.HourlyRate
		}

		entry = TimeEntry{
			ID:           uuid.New(),
			EmployeeID:   id,
			EmployeeName: employeeName,
			EntryDate:    date,
			ClockIn:      clockIn,
			HourlyRate:   rate,
		}
		return repo.CreateEntry(ctx, &entry)
	})
	if err != nil {
		return TimeEntryResponse{}, err
	}

	log.Info("employee clocked in",
		zap.String("employee_id", id.String()),
		zap.String("date", date),
		zap.String("clock_in", clockIn),
		zap.Float64("hourly_rate", entry.HourlyRate),
	)
	return mapToResponse(entry), nil
}

// ClockOut closes the entry for date. Hours are same-day only; the wage uses
// the rate captured at clock-in.
func (s *service) ClockOut(ctx context.Context, employeeID, date, clockOut string) (TimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	date, clockOut = s.defaults(date, clockOut)
	if _, err := timeutil.ParseDate(date); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidFormat
	}
	outMin, err := timeutil.ParseClock(clockOut)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidFormat
	}

	var entry TimeEntry
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		e, err := repo.FindEntry(ctx, id, date)
		if err != nil {
			return err
		}
		if e == nil || e.ClockOut != nil {
			return timeentryerrors.ErrNotClockedIn
		}

		inMin, err := timeutil.ParseClock(e.ClockIn)
		if err != nil {
			return apperror.Storage(err)
		}
		if outMin < inMin {
			return timeentryerrors.ErrInvalidTimestamp
		}

		hours := timeutil.Round2(float64(outMin-inMin) / 60)
		wage := timeutil.Round2(hours * e.HourlyRate)

		ok, err := repo.CloseEntry(ctx, e.ID, clockOut, hours, wage)
		if err != nil {
			return err
		}
		if !ok {
			return timeentryerrors.ErrNotClockedIn
		}

		entry = *e
		entry.ClockOut = &clockOut
		entry.TotalHours = &hours
		entry.DailyWage = &wage
		return nil
	})
	if err != nil {
		return TimeEntryResponse{}, err
	}

	log.Info("employee clocked out",
		zap.String("employee_id", id.String()),
		zap.String("date", date),
		zap.Float64("total_hours", *entry.TotalHours),
		zap.Float64("daily_wage", *entry.DailyWage),
	)
	return mapToResponse(entry), nil
}

func (s *service) GetEmployeeStatus(ctx context.Context, employeeID, date string) (StatusResponse, error) {
	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return StatusResponse{}, err
	}
	date, _ = s.defaults(date, "")
	if _, err := timeutil.ParseDate(date); err != nil {
		return StatusResponse{}, timeentryerrors.ErrInvalidFormat
	}

	e, err := s.repo.FindEntry(ctx, id, date)
	if err != nil {
		return StatusResponse{}, err
	}

	res := StatusResponse{EmployeeID: id.String(), Date: date}
	if e != nil {
		r := mapToResponse(*e)
		res.Entry = &r
		res.ClockedIn = e.ClockOut == nil
	}
	return res, nil
}

func (s *service) GetEmployeeEntries(ctx context.Context, employeeID string, filter ListFilter) ([]TimeEntryResponse, error) {
	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindEntries(ctx, id, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

// SetEmployeeHourlyRate replaces the rate used by future clock-ins.
func (s *service) SetEmployeeHourlyRate(ctx context.Context, employeeID string, rate float64) (SettingsResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return SettingsResponse{}, err
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return SettingsResponse{}, timeentryerrors.ErrInvalidRate
	}
	if _, err := s.employees.FindByID(ctx, id); err != nil {
		return SettingsResponse{}, err
	}

	settings := EmployeeSettings{
		EmployeeID: id,
		HourlyRate: rate,
		UpdatedAt:  s.now().UTC(),
	}
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		previous, err := repo.GetSettings(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.UpsertSettings(ctx, &settings); err != nil {
			return err
		}

		var oldRate *float64
		if previous != nil {
			oldRate = &previous.HourlyRate
		}
		return s.recordRateChange(ctx, tx, id, oldRate, rate)
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	log.Info("hourly rate updated",
		zap.String("employee_id", id.String()),
		zap.Float64("hourly_rate", rate),
	)
	return mapSettings(settings), nil
}

func (s *service) GetAllEmployeeSettings(ctx context.Context) ([]SettingsResponse, error) {
	rows, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SettingsResponse, len(rows))
	for i, r := range rows {
		res[i] = mapSettings(r)
	}
	return res, nil
}

// EnsureDefaultSettings provisions the default rate for a new employee. It
// reports false when settings already existed.
func (s *service) EnsureDefaultSettings(ctx context.Context, employeeID string) (bool, error) {
	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return false, err
	}
	return s.repo.CreateDefaultSettings(ctx, id, s.defaultRate)
}

func (s *service) defaults(date, clock string) (string, string) {
	now := s.now().In(s.loc)
	if date == "" {
		date = now.Format(timeutil.DateLayout)
	}
	if clock == "" {
		clock = now.Format(timeutil.ClockLayout)
	}
	return date, clock
}

func (s *service) recordRateChange(ctx context.Context, tx *gorm.DB, id uuid.UUID, oldRate *float64, newRate float64) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.HourlyRateChangedEvent{
		EventType:  events.EventTypeHourlyRateChanged,
		EmployeeID: id.String(),
		OldRate:    oldRate,
		NewRate:    newRate,
		ChangedBy:  contextutil.GetUserID(ctx),
		OccurredAt: s.now().UTC(),
	}

	evt, err := kafka.NewOutboxEvent(ctx, "employee_settings", id.String(), events.EventTypeHourlyRateChanged, events.PayrollSettingsTopic, payload)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func parseEmployeeID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}

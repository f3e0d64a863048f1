package attendance

import (
	"context"
	"time"

	attendanceerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/report"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/database"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	IsCheckedIn(ctx context.Context, employeeID string) (bool, error)
	GetStatus(ctx context.Context, employeeID string) (StatusResponse, error)
	CheckIn(ctx context.Context, employeeID string, at *time.Time) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, at *time.Time) (AttendanceResponse, error)
	GetEmployeeAttendance(ctx context.Context, employeeID string, filter ListFilter) ([]AttendanceResponse, error)
	GetAdminOverview(ctx context.Context, date *time.Time, department string) (report.Overview, error)
	GetAttendanceSummary(ctx context.Context, date *time.Time) (report.Summary, error)
	CloseStaleRecords(ctx context.Context) (int64, error)
}

type Option func(*service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithLocation sets the zone calendar days are taken in. Default UTC.
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
			s.logger = logger.Named("attendance.service")
		}
	}
}

type service struct {
	tx        database.TxManager
	repo      Repository
	outbox    kafka.OutboxRepository
	employees employee.Repository
	now       func() time.Time
	loc       *time.Location
	logger    *zap.Logger
	sf        *singleflight.Group
}

// NewService wires the ledger. outbox may be nil, in which case no lifecycle
// events are recorded.
func NewService(tx database.TxManager, repo Repository, outbox kafka.OutboxRepository, employees employee.Repository, opts ...Option) Service {
	s := &service{
		tx:        tx,
		repo:      repo,
		outbox:    outbox,
		employees: employees,
		now:       time.Now,
		loc:       time.UTC,
		logger:    zap.L().Named("attendance.service"),
		sf:        &singleflight.Group{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) today() time.Time {
	return timeutil.DateOf(s.now(), s.loc)
}

func (s *service) IsCheckedIn(ctx context.Context, employeeID string) (bool, error) {
	st, err := s.GetStatus(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return st.CheckedIn, nil
}

func (s *service) GetStatus(ctx context.Context, employeeID string) (StatusResponse, error) {
	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return StatusResponse{}, err
	}

	today := s.today()
	rec, err := s.repo.FindByEmployeeAndDate(ctx, id, today)
	if err != nil {
		return StatusResponse{}, err
	}

	res := StatusResponse{EmployeeID: id.String(), Date: timeutil.FormatDate(today)}
	if rec != nil {
		r := mapToResponse(*rec)
		res.Record = &r
		res.CheckedIn = rec.Status == StatusCheckedIn
	}
	return res, nil
}

func (s *service) CheckIn(ctx context.Context, employeeID string, at *time.Time) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, id); err != nil {
		return AttendanceResponse{}, err
	}

	checkIn := s.now()
	if at != nil {
		checkIn = *at
	}
	day := timeutil.DateOf(checkIn, s.loc)

	var created AttendanceRecord
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByEmployeeAndDate(ctx, id, day)
		if err != nil {
			return err
		}
		if existing != nil {
			switch existing.Status {
			case StatusCheckedIn:
				return attendanceerrors.ErrAlreadyCheckedIn
			case StatusCheckedOut, StatusIncomplete:
				return attendanceerrors.ErrAlreadyCheckedOut
			default:
				return attendanceerrors.ErrAlreadyCheckedIn
			}
		}

		created = AttendanceRecord{
			ID:             uuid.New(),
			EmployeeID:     id,
			AttendanceDate: day,
			CheckInTime:    checkIn,
			Status:         StatusCheckedIn,
		}
		if err := repo.Create(ctx, &created); err != nil {
			return err
		}

		return s.recordEvent(ctx, tx, events.EventTypeAttendanceCheckedIn, created)
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("employee checked in",
		zap.String("employee_id", id.String()),
		zap.String("record_id", created.ID.String()),
		zap.Time("check_in_time", checkIn),
	)
	return mapToResponse(created), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, at *time.Time) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	checkOut := s.now()
	if at != nil {
		checkOut = *at
	}
	day := s.today()

	var closed AttendanceRecord
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		rec, err := repo.FindByEmployeeAndDate(ctx, id, day)
		if err != nil {
			return err
		}
		if rec == nil || rec.Status != StatusCheckedIn {
			return attendanceerrors.ErrNotCheckedIn
		}
		if checkOut.Before(rec.CheckInTime) {
			return attendanceerrors.ErrInvalidTimestamp
		}

		hours := timeutil.Hours(checkOut.Sub(rec.CheckInTime))
		ok, err := repo.CloseOpen(ctx, rec.ID, checkOut, hours)
		if err != nil {
			return err
		}
		if !ok {
			return attendanceerrors.ErrNotCheckedIn
		}

		closed = *rec
		closed.CheckOutTime = &checkOut
		closed.TotalHours = &hours
		closed.Status = StatusCheckedOut

		return s.recordEvent(ctx, tx, events.EventTypeAttendanceCheckedOut, closed)
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("employee checked out",
		zap.String("employee_id", id.String()),
		zap.String("record_id", closed.ID.String()),
		zap.Float64("total_hours", *closed.TotalHours),
	)
	return mapToResponse(closed), nil
}

func (s *service) GetEmployeeAttendance(ctx context.Context, employeeID string, filter ListFilter) ([]AttendanceResponse, error) {
	id, err := parseEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployee(ctx, id, filter)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetAdminOverview(ctx context.Context, date *time.Time, department string) (report.Overview, error) {
	day := s.reportDay(date)
	from, to := timeutil.TrailingWindow(day)

	employees, records, err := s.loadReportInput(ctx, department, from, to)
	if err != nil {
		return report.Overview{}, err
	}
	return report.BuildOverview(employees, records, day, s.reportClock()), nil
}

func (s *service) GetAttendanceSummary(ctx context.Context, date *time.Time) (report.Summary, error) {
	day := s.reportDay(date)

	employees, records, err := s.loadReportInput(ctx, "", day, day)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(employees, records, day, s.reportClock()), nil
}

// CloseStaleRecords marks cycles never checked out on earlier days as
// incomplete.
func (s *service) CloseStaleRecords(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkIncompleteBefore(ctx, s.today())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		contextutil.GetLogger(ctx, s.logger).Info("stale attendance records closed", zap.Int64("count", n))
	}
	return n, nil
}

func (s *service) reportDay(date *time.Time) time.Time {
	if date != nil {
		return timeutil.DateOf(*date, time.UTC)
	}
	return s.today()
}

func (s *service) reportClock() report.Clock {
	now := s.now()
	return report.Clock{Now: now, Today: timeutil.DateOf(now, s.loc)}
}

type reportInput struct {
	employees []report.Employee
	records   []report.Record
}

// loadReportInput reads the directory and the records concurrently. Both
// reads hit the store; nothing is cached. Identical loads already in flight
// share one round trip.
func (s *service) loadReportInput(ctx context.Context, department string, from, to time.Time) ([]report.Employee, []report.Record, error) {
	key := department + "|" + timeutil.FormatDate(from) + "|" + timeutil.FormatDate(to)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.readReportInput(ctx, department, from, to)
	})
	if err != nil {
		return nil, nil, err
	}
	in := v.(reportInput)
	return in.employees, in.records, nil
}

func (s *service) readReportInput(ctx context.Context, department string, from, to time.Time) (reportInput, error) {
	var (
		emps []employee.Employee
		recs []AttendanceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emps, err = s.employees.FindAll(gctx, department)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = s.repo.FindByDateRange(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return reportInput{}, err
	}

	employees := make([]report.Employee, len(emps))
	for i, e := range emps {
		employees[i] = report.Employee{
			ID:         e.ID.String(),
			FullName:   e.FullName,
			Department: e.Department,
			Position:   e.Position,
		}
	}

	records := make([]report.Record, len(recs))
	for i, r := range recs {
		records[i] = report.Record{
			EmployeeID: r.EmployeeID.String(),
			Date:       r.AttendanceDate,
			CheckIn:    r.CheckInTime,
			CheckOut:   r.CheckOutTime,
			TotalHours: r.TotalHours,
			Status:     r.Status,
		}
	}
	return reportInput{employees: employees, records: records}, nil
}

func (s *service) recordEvent(ctx context.Context, tx *gorm.DB, eventType string, rec AttendanceRecord) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.AttendanceEvent{
		EventType:      eventType,
		RecordID:       rec.ID.String(),
		EmployeeID:     rec.EmployeeID.String(),
		AttendanceDate: timeutil.FormatDate(rec.AttendanceDate),
		CheckInTime:    rec.CheckInTime,
		CheckOutTime:   rec.CheckOutTime,
		TotalHours:     rec.TotalHours,
		ActorID:        contextutil.GetUserID(ctx),
		OccurredAt:     s.now().UTC(),
	}

	evt, err := kafka.NewOutboxEvent(ctx, "attendance", rec.EmployeeID.String(), eventType, events.AttendanceLifecycleTopic, payload)
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

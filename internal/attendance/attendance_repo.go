package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueEmployeeDate = "uq_attendance_employee_date"

// ListFilter bounds a per-employee history query. Nil dates are open ends.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *AttendanceRecord) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error)
	CloseOpen(ctx context.Context, id uuid.UUID, checkOut time.Time, totalHours float64) (bool, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter ListFilter) ([]AttendanceRecord, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error)
	MarkIncompleteBefore(ctx context.Context, date time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the repository to tx. A nil tx keeps the root connection.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Create inserts a new cycle. A second insert for the same employee and day
// loses on the unique index and reports ErrAlreadyCheckedIn.
func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(rec).Error)
}

// FindByEmployeeAndDate returns nil, nil when the employee has no cycle on
// date.
func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", timeutil.FormatDate(date)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &rec, nil
}

// CloseOpen checks out the cycle only if it is still open. false means
// another request closed it first.
func (r *repository) CloseOpen(ctx context.Context, id uuid.UUID, checkOut time.Time, totalHours float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("id = ? AND status = ?", id, StatusCheckedIn).
		Updates(map[string]any{
			"check_out_time": checkOut,
			"total_hours":    totalHours,
			"status":         StatusCheckedOut,
			"updated_at":     checkOut,
		})
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

// FindByEmployee lists an employee's cycles, most recent first.
func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter ListFilter) ([]AttendanceRecord, error) {
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if filter.StartDate != nil {
		q = q.Where("attendance_date >= ?", timeutil.FormatDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		q = q.Where("attendance_date <= ?", timeutil.FormatDate(*filter.EndDate))
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []AttendanceRecord
	err := q.Order("attendance_date DESC, check_in_time DESC").Find(&rows).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}

// FindByDateRange lists every cycle between from and to inclusive.
func (r *repository) FindByDateRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("attendance_date BETWEEN ? AND ?", timeutil.FormatDate(from), timeutil.FormatDate(to)).
		Order("attendance_date ASC, check_in_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}

// MarkIncompleteBefore closes cycles left open on days before date.
func (r *repository) MarkIncompleteBefore(ctx context.Context, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("status = ? AND attendance_date < ?", StatusCheckedIn, timeutil.FormatDate(date)).
		Updates(map[string]any{
			"status":     StatusIncomplete,
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return 0, mapRepositoryError(res.Error)
	}
	return res.RowsAffected, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmployeeDate {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeeDate) {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return apperror.Storage(err)
}

package timeentry

import (
	"context"
	"errors"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter bounds an entry listing. Nil dates are open ends.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

//go:generate mockgen -source=time_entry_repo.go -destination=mock/time_entry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateEntry(ctx context.Context, e *TimeEntry) error
	FindEntry(ctx context.Context, employeeID uuid.UUID, date string) (*TimeEntry, error)
	CloseEntry(ctx context.Context, id uuid.UUID, clockOut string, totalHours, dailyWage float64) (bool, error)
	FindEntries(ctx context.Context, employeeID uuid.UUID, filter ListFilter) ([]TimeEntry, error)
	GetSettings(ctx context.Context, employeeID uuid.UUID) (*EmployeeSettings, error)
	UpsertSettings(ctx context.Context, s *EmployeeSettings) error
	CreateDefaultSettings(ctx context.Context, employeeID uuid.UUID, rate float64) (bool, error)
	ListSettings(ctx context.Context) ([]EmployeeSettings, error)
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

func (r *repository) CreateEntry(ctx context.Context, e *TimeEntry) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(e).Error)
}

// FindEntry returns nil, nil when there is no entry for the date.
func (r *repository) FindEntry(ctx context.Context, employeeID uuid.UUID, date string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND entry_date = ?", employeeID, date).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &e, nil
}

// CloseEntry sets clock-out only while the entry is still open.
func (r *repository) CloseEntry(ctx context.Context, id uuid.UUID, clockOut string, totalHours, dailyWage float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Where("id = ? AND clock_out IS NULL", id).
		Updates(map[string]any{
			"clock_out":   clockOut,
			"total_hours": totalHours,
			"daily_wage":  dailyWage,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindEntries(ctx context.Context, employeeID uuid.UUID, filter ListFilter) ([]TimeEntry, error) {
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if filter.StartDate != nil {
		q = q.Where("entry_date >= ?", timeutil.FormatDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		q = q.Where("entry_date <= ?", timeutil.FormatDate(*filter.EndDate))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var entries []TimeEntry
	if err := q.Order("entry_date DESC").Find(&entries).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return entries, nil
}

// GetSettings returns nil, nil when no rate has been configured.
func (r *repository) GetSettings(ctx context.Context, employeeID uuid.UUID) (*EmployeeSettings, error) {
	var s EmployeeSettings
	err := r.db.WithContext(ctx).First(&s, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &s, nil
}

func (r *repository) UpsertSettings(ctx context.Context, s *EmployeeSettings) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hourly_rate", "updated_at"}),
		}).
		Create(s).Error
	return mapRepositoryError(err)
}

// CreateDefaultSettings inserts a rate unless one exists. It reports whether
// a row was written.
func (r *repository) CreateDefaultSettings(ctx context.Context, employeeID uuid.UUID, rate float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&EmployeeSettings{EmployeeID: employeeID, HourlyRate: rate})
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListSettings(ctx context.Context) ([]EmployeeSettings, error) {
	var settings []EmployeeSettings
	if err := r.db.WithContext(ctx).Order("employee_id ASC").Find(&settings).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return settings, nil
}

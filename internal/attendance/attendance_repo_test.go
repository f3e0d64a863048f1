package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO "attendance_records"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: uniqueEmployeeDate})

	err := repo.Create(context.Background(), &AttendanceRecord{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		AttendanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckInTime:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:         StatusCheckedIn,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CloseOpen(t *testing.T) {
	id := uuid.New()
	out := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	t.Run("open cycle", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "attendance_records" SET .* WHERE \(?id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := NewRepository(db).CloseOpen(context.Background(), id, out, 8.5)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already closed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "attendance_records"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := NewRepository(db).CloseOpen(context.Background(), id, out, 8.5)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "attendance_records"`).
			WillReturnError(errors.New("connection refused"))

		_, err := NewRepository(db).CloseOpen(context.Background(), id, out, 8.5)
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})
}

func TestRepository_FindByEmployeeAndDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	employeeID := uuid.New()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "attendance_records" WHERE employee_id = \$1 AND attendance_date = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "attendance_date", "check_in_time", "status"}))

	rec, err := repo.FindByEmployeeAndDate(context.Background(), employeeID, day)
	require.NoError(t, err)
	assert.Nil(t, rec)

	mock.ExpectQuery(`SELECT \* FROM "attendance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "attendance_date", "check_in_time", "status"}).
			AddRow(uuid.NewString(), employeeID.String(), day, day.Add(9*time.Hour), StatusCheckedIn))

	rec, err = repo.FindByEmployeeAndDate(context.Background(), employeeID, day)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, StatusCheckedIn, rec.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkIncompleteBefore(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "attendance_records" SET .*status.* WHERE \(?status = \$\d+ AND attendance_date < \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewRepository(db).MarkIncompleteBefore(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

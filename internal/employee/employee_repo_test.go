package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
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

func TestRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees" WHERE department = $1 ORDER BY full_name ASC`)).
		WithArgs("Engineering").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "department"}).
			AddRow(id.String(), "Alice", "Engineering"))

	got, err := repo.FindAll(context.Background(), " Engineering ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})
}

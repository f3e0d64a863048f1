package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

func contextFor(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?"+rawQuery, nil)
	return c
}

func TestParseRangeQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ParseRangeQuery(contextFor(""))
		require.NoError(t, err)
		assert.Nil(t, q.StartDate)
		assert.Nil(t, q.EndDate)
		assert.Equal(t, DefaultLimit, q.Limit)
	})

	t.Run("clamps numeric limit", func(t *testing.T) {
		q, err := ParseRangeQuery(contextFor("limit=5000"))
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, q.Limit)

		q, err = ParseRangeQuery(contextFor("limit=0"))
		require.NoError(t, err)
		assert.Equal(t, MinLimit, q.Limit)

		q, err = ParseRangeQuery(contextFor("limit=-3"))
		require.NoError(t, err)
		assert.Equal(t, MinLimit, q.Limit)
	})

	t.Run("clamps limit beyond int range", func(t *testing.T) {
		q, err := ParseRangeQuery(contextFor("limit=99999999999999999999"))
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, q.Limit)

		q, err = ParseRangeQuery(contextFor("limit=-99999999999999999999"))
		require.NoError(t, err)
		assert.Equal(t, MinLimit, q.Limit)
	})

	t.Run("rejects non numeric limit", func(t *testing.T) {
		_, err := ParseRangeQuery(contextFor("limit=ten"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "limit", appErr.Field)
	})

	t.Run("rejects non ISO dates", func(t *testing.T) {
		_, err := ParseRangeQuery(contextFor("start_date=03/04/2024"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "start_date", appErr.Field)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := ParseRangeQuery(contextFor("start_date=2024-03-05&end_date=2024-03-04"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "end_date", appErr.Field)
	})

	t.Run("parses range", func(t *testing.T) {
		q, err := ParseRangeQuery(contextFor("start_date=2024-03-01&end_date=2024-03-04&limit=10"))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", q.StartDate.Format("2006-01-02"))
		assert.Equal(t, "2024-03-04", q.EndDate.Format("2006-01-02"))
		assert.Equal(t, 10, q.Limit)
	})
}

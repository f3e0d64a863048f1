package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/timeutil"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 100
	MinLimit     = 1
	MaxLimit     = 1000
)

// RangeQuery is a parsed start_date / end_date / limit triple.
type RangeQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// ParseRangeQuery reads start_date, end_date and limit. Dates must be
// YYYY-MM-DD; a non-numeric limit is rejected, a numeric one is clamped to
// [MinLimit, MaxLimit].
func ParseRangeQuery(c *gin.Context) (RangeQuery, error) {
	q := RangeQuery{Limit: DefaultLimit}

	var err error
	if q.StartDate, err = OptionalDate(c, "start_date"); err != nil {
		return RangeQuery{}, err
	}
	if q.EndDate, err = OptionalDate(c, "end_date"); err != nil {
		return RangeQuery{}, err
	}
	if q.StartDate != nil && q.EndDate != nil && q.EndDate.Before(*q.StartDate) {
		return RangeQuery{}, apperror.InvalidField("end_date")
	}

	if raw, ok := c.GetQuery("limit"); ok {
		// out of range still yields the nearest int, which clamps below
		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil && !errors.Is(convErr, strconv.ErrRange) {
			return RangeQuery{}, apperror.InvalidField("limit")
		}
		q.Limit = ClampLimit(n)
	}

	return q, nil
}

// OptionalDate parses a YYYY-MM-DD query parameter. Absent or empty yields nil.
func OptionalDate(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := timeutil.ParseDate(raw)
	if err != nil {
		return nil, apperror.InvalidField(name)
	}
	return &d, nil
}

func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

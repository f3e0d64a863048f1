package timeentry_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	employeeMock "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/mock"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	kafkaMock "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka/mock"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry"
	timeentryerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry/errors"
	timeentryMock "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry/mock"
)

var (
	aliceID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bobID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedNow = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// memRepo mirrors the schema rules: one entry per employee and date, and a
// conditional close.
type memRepo struct {
	mu       sync.Mutex
	entries  map[uuid.UUID]*timeentry.TimeEntry
	settings map[uuid.UUID]timeentry.EmployeeSettings
}

func newMemRepo() *memRepo {
	return &memRepo{
		entries:  map[uuid.UUID]*timeentry.TimeEntry{},
		settings: map[uuid.UUID]timeentry.EmployeeSettings{},
	}
}

func (r *memRepo) WithTx(*gorm.DB) timeentry.Repository { return r }

func (r *memRepo) CreateEntry(_ context.Context, e *timeentry.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if existing.EmployeeID == e.EmployeeID && existing.EntryDate == e.EntryDate {
			return timeentryerrors.ErrAlreadyClockedIn
		}
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memRepo) FindEntry(_ context.Context, employeeID uuid.UUID, date string) (*timeentry.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.EntryDate == date {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) CloseEntry(_ context.Context, id uuid.UUID, clockOut string, totalHours, dailyWage float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.ClockOut != nil {
		return false, nil
	}
	e.ClockOut = &clockOut
	e.TotalHours = &totalHours
	e.DailyWage = &dailyWage
	return true, nil
}

func (r *memRepo) FindEntries(_ context.Context, employeeID uuid.UUID, filter timeentry.ListFilter) ([]timeentry.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []timeentry.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate > out[j].EntryDate })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memRepo) GetSettings(_ context.Context, employeeID uuid.UUID) (*timeentry.EmployeeSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[employeeID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memRepo) UpsertSettings(_ context.Context, s *timeentry.EmployeeSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[s.EmployeeID] = *s
	return nil
}

func (r *memRepo) CreateDefaultSettings(_ context.Context, employeeID uuid.UUID, rate float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.settings[employeeID]; ok {
		return false, nil
	}
	r.settings[employeeID] = timeentry.EmployeeSettings{EmployeeID: employeeID, HourlyRate: rate}
	return true, nil
}

func (r *memRepo) ListSettings(context.Context) ([]timeentry.EmployeeSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]timeentry.EmployeeSettings, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID.String() < out[j].EmployeeID.String() })
	return out, nil
}

func newDirectory(ctrl *gomock.Controller) *employeeMock.MockRepository {
	employees := employeeMock.NewMockRepository(ctrl)
	employees.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*employee.Employee, error) {
			switch id {
			case aliceID:
				return &employee.Employee{ID: id, FullName: "Alice"}, nil
			case bobID:
				return &employee.Employee{ID: id, FullName: "Bob"}, nil
			}
			return nil, employeeerrors.ErrEmployeeNotFound
		}).AnyTimes()
	return employees
}

func newService(ctrl *gomock.Controller, repo timeentry.Repository) timeentry.Service {
	return timeentry.NewService(passthroughTx{}, repo, nil, newDirectory(ctrl), 15,
		timeentry.WithClock(func() time.Time { return fixedNow }))
}

func TestService_WageIsCapturedAtClockIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemRepo()
	svc := newService(ctrl, repo)
	ctx := context.Background()

	_, err := svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 20)
	require.NoError(t, err)

	in, err := svc.ClockIn(ctx, aliceID.String(), "", "2025-03-10", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "Alice", in.EmployeeName)
	assert.Equal(t, 20.0, in.HourlyRate)
	assert.Nil(t, in.DailyWage)

	out, err := svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 8.0, *out.TotalHours)
	assert.Equal(t, 160.0, *out.DailyWage)

	_, err = svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 25)
	require.NoError(t, err)

	st, err := svc.GetEmployeeStatus(ctx, aliceID.String(), "2025-03-10")
	require.NoError(t, err)
	assert.False(t, st.ClockedIn)
	require.NotNil(t, st.Entry)
	assert.Equal(t, 160.0, *st.Entry.DailyWage)
	assert.Equal(t, 20.0, st.Entry.HourlyRate)
}

func TestService_ClockIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("default rate and explicit name", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		res, err := svc.ClockIn(ctx, bobID.String(), "Robert", "2025-03-10", "08:15")
		require.NoError(t, err)
		assert.Equal(t, 15.0, res.HourlyRate)
		assert.Equal(t, "Robert", res.EmployeeName)
	})

	t.Run("defaults to now", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		res, err := svc.ClockIn(ctx, bobID.String(), "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", res.Date)
		assert.Equal(t, "18:00", res.ClockIn)
	})

	t.Run("duplicate for date", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		_, err := svc.ClockIn(ctx, bobID.String(), "", "2025-03-10", "08:00")
		require.NoError(t, err)
		_, err = svc.ClockIn(ctx, bobID.String(), "", "2025-03-10", "09:00")
		assert.ErrorIs(t, err, timeentryerrors.ErrAlreadyClockedIn)
	})

	t.Run("malformed input", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		for _, tc := range []struct{ date, clock string }{
			{"10/03/2025", "09:00"},
			{"2025-03-10", "9am"},
			{"2025-03-10", "25:00"},
			{"2025-3-10", "09:00"},
		} {
			_, err := svc.ClockIn(ctx, bobID.String(), "", tc.date, tc.clock)
			assert.ErrorIs(t, err, timeentryerrors.ErrInvalidFormat, "%s %s", tc.date, tc.clock)
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		_, err := svc.ClockIn(ctx, uuid.NewString(), "", "2025-03-10", "09:00")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_ClockOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("not clocked in", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		_, err := svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "17:00")
		assert.ErrorIs(t, err, timeentryerrors.ErrNotClockedIn)
	})

	t.Run("earlier than clock-in", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		_, err := svc.ClockIn(ctx, aliceID.String(), "", "2025-03-10", "09:00")
		require.NoError(t, err)
		_, err = svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "08:59")
		assert.ErrorIs(t, err, timeentryerrors.ErrInvalidTimestamp)
	})

	t.Run("twice", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		_, err := svc.ClockIn(ctx, aliceID.String(), "", "2025-03-10", "09:00")
		require.NoError(t, err)
		res, err := svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "09:20")
		require.NoError(t, err)
		assert.Equal(t, 0.33, *res.TotalHours)
		assert.Equal(t, 4.95, *res.DailyWage)

		_, err = svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "10:00")
		assert.ErrorIs(t, err, timeentryerrors.ErrNotClockedIn)
	})

	t.Run("lost race on close", func(t *testing.T) {
		repo := timeentryMock.NewMockRepository(ctrl)
		svc := newService(ctrl, repo)
		entryID := uuid.New()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindEntry(gomock.Any(), aliceID, "2025-03-10").
			Return(&timeentry.TimeEntry{ID: entryID, EmployeeID: aliceID, EntryDate: "2025-03-10", ClockIn: "09:00", HourlyRate: 10}, nil)
		repo.EXPECT().CloseEntry(gomock.Any(), entryID, "17:00", 8.0, 80.0).Return(false, nil)

		_, err := svc.ClockOut(ctx, aliceID.String(), "2025-03-10", "17:00")
		assert.ErrorIs(t, err, timeentryerrors.ErrNotClockedIn)
	})
}

func TestService_SetEmployeeHourlyRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("rejects non-positive", func(t *testing.T) {
		svc := newService(ctrl, newMemRepo())

		for _, rate := range []float64{0, -5} {
			_, err := svc.SetEmployeeHourlyRate(ctx, aliceID.String(), rate)
			assert.ErrorIs(t, err, timeentryerrors.ErrInvalidRate)
		}
	})

	t.Run("emits rate change event", func(t *testing.T) {
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

		var captured []kafka.OutboxEvent
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				captured = append(captured, e)
				return nil
			}).Times(2)

		svc := timeentry.NewService(passthroughTx{}, newMemRepo(), outbox, newDirectory(ctrl), 15,
			timeentry.WithClock(func() time.Time { return fixedNow }))

		_, err := svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 20)
		require.NoError(t, err)
		res, err := svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 25)
		require.NoError(t, err)
		assert.Equal(t, 25.0, res.HourlyRate)

		require.Len(t, captured, 2)
		for _, e := range captured {
			assert.Equal(t, events.PayrollSettingsTopic, e.Topic)
			assert.Equal(t, events.EventTypeHourlyRateChanged, e.EventType)
		}
		assert.Contains(t, string(captured[1].Payload), `"old_rate":20`)
		assert.NotContains(t, string(captured[0].Payload), "old_rate")
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := timeentryMock.NewMockRepository(ctrl)
		svc := newService(ctrl, repo)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetSettings(gomock.Any(), aliceID).Return(nil, apperror.Storage(errors.New("timeout")))

		_, err := svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 20)
		assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	})
}

func TestService_SettingsAndEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := newMemRepo()
	svc := newService(ctrl, repo)

	created, err := svc.EnsureDefaultSettings(ctx, bobID.String())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureDefaultSettings(ctx, bobID.String())
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.SetEmployeeHourlyRate(ctx, aliceID.String(), 30)
	require.NoError(t, err)

	all, err := svc.GetAllEmployeeSettings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 30.0, all[0].HourlyRate)
	assert.Equal(t, 15.0, all[1].HourlyRate)

	for _, d := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		_, err := svc.ClockIn(ctx, bobID.String(), "", d, "09:00")
		require.NoError(t, err)
	}

	entries, err := svc.GetEmployeeEntries(ctx, bobID.String(), timeentry.ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-03-10", entries[0].Date)
	assert.Equal(t, "2025-03-09", entries[1].Date)

	_, err = svc.GetEmployeeEntries(ctx, "bob", timeentry.ListFilter{})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

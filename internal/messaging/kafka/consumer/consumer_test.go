package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

// fakeReader serves msgs once and then blocks until ctx is cancelled.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.msgs) == 0 {
		r.mu.Unlock()
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	r.mu.Unlock()
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeProvisioner struct {
	results map[string]error
	seen    map[string]bool
	calls   []string
}

func (p *fakeProvisioner) EnsureDefaultSettings(_ context.Context, employeeID string) (bool, error) {
	p.calls = append(p.calls, employeeID)
	if err := p.results[employeeID]; err != nil {
		return false, err
	}
	if p.seen[employeeID] {
		return false, nil
	}
	p.seen[employeeID] = true
	return true, nil
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	created := func(id string) events.EmployeeCreatedEvent {
		return events.EmployeeCreatedEvent{EventType: events.EventTypeEmployeeCreated, EmployeeID: id}
	}

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		message(t, 1, created("e-1")),
		message(t, 2, created("e-1")),
		{Offset: 3, Value: []byte("{not json")},
		message(t, 4, events.EmployeeCreatedEvent{EventType: "employee_renamed", EmployeeID: "e-2"}),
		message(t, 5, created("broken")),
		message(t, 6, created("db-down")),
	}}
	provisioner := &fakeProvisioner{
		seen: map[string]bool{},
		results: map[string]error{
			"broken":  employeeerrors.ErrInvalidEmployeeID,
			"db-down": apperror.Storage(errors.New("connection refused")),
		},
	}

	ConsumeEmployeeLifecycle(ctx, reader, provisioner, zap.NewNop())

	assert.Equal(t, []string{"e-1", "e-1", "broken", "db-down"}, provisioner.calls)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, reader.committed)
}

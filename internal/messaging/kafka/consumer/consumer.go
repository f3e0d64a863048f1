package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// SettingsProvisioner creates the default payroll settings of a new
// employee. It reports false when settings already existed.
type SettingsProvisioner interface {
	EnsureDefaultSettings(ctx context.Context, employeeID string) (bool, error)
}

// ConsumeEmployeeLifecycle provisions default hourly rates for new employees
// until ctx is done. Malformed and unrelated messages are committed and
// skipped; a failed provisioning is left uncommitted for redelivery.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	provisioner SettingsProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleEmployeeCreated(ctx, msg, provisioner, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleEmployeeCreated reports whether msg is done with and may be
// committed.
func handleEmployeeCreated(ctx context.Context, msg kafkago.Message, provisioner SettingsProvisioner, log *zap.Logger) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
		return true
	}
	if event.EventType != events.EventTypeEmployeeCreated {
		return true
	}

	created, err := provisioner.EnsureDefaultSettings(ctx, event.EmployeeID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			log.Warn("rejecting employee_created event",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return true
		}
		log.Error("provision default hourly rate failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return false
	}

	if !created {
		log.Warn("employee settings already exist, skipping",
			zap.String("employee_id", event.EmployeeID),
		)
		return true
	}

	log.Info("default hourly rate provisioned from employee_created event",
		zap.String("employee_id", event.EmployeeID),
	)
	return true
}

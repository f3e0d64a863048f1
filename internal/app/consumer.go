package app

import (
	"context"
	"errors"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/config"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/events"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka/consumer"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/connection"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/database"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const employeeSettingsGroup = "time-tracking-employee-settings"

// RunConsumer provisions default hourly rates for employees announced on the
// employee lifecycle topic. It returns when ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Postgres.DSN(), connectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	timeEntryService := timeentry.NewService(
		database.NewTxManager(db),
		timeentry.NewRepository(db),
		kafka.NewOutboxRepository(db),
		employee.NewRepository(db),
		cfg.Payroll.DefaultHourlyRate,
		timeentry.WithLocation(cfg.App.Location),
		timeentry.WithLogger(logger),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        employeeSettingsGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, timeEntryService, logger)

	log.Info("consumer shutting down")
	return nil
}

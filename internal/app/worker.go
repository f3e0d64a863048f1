package app

import (
	"context"
	"errors"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/config"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka/producer"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/connection"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/database"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	outboxPollInterval = 3 * time.Second
	staleSweepInterval = 15 * time.Minute
)

// RunWorker relays the outbox to Kafka and periodically closes attendance
// cycles left open on earlier days. It returns when ctx is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

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

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(db)
	attendanceService := attendance.NewService(
		database.NewTxManager(db),
		attendance.NewRepository(db),
		outboxRepo,
		employee.NewRepository(db),
		attendance.WithLocation(cfg.App.Location),
		attendance.WithLogger(logger),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		producer.ProcessOutboxEvents(gctx, outboxRepo, writer, logger, outboxPollInterval)
		return nil
	})
	g.Go(func() error {
		sweepStaleAttendance(gctx, attendanceService, log, staleSweepInterval)
		return nil
	})

	log.Info("worker started")
	err = g.Wait()
	log.Info("worker shutting down")
	return err
}

type staleCloser interface {
	CloseStaleRecords(ctx context.Context) (int64, error)
}

func sweepStaleAttendance(ctx context.Context, closer staleCloser, log *zap.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := closer.CloseStaleRecords(ctx)
			if err != nil {
				log.Error("close stale attendance failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("stale attendance closed", zap.Int64("count", n))
			}
		}
	}
}

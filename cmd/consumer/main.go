package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/app"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/bootstrap"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/config"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Logger.Level, cfg.App.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}

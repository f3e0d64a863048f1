package app

import (
	"net/http"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/access"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/config"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/messaging/kafka"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac/infra"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/database"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	cfg    *config.Config
	db     *gorm.DB
	redis  *redis.Client
	logger *zap.Logger
}

func registerModules(router *gin.Engine, m modules) error {
	// --- Session & RBAC Core ---
	sessions, err := session.NewManager(m.cfg.Session.Secret, m.cfg.Session.TTL, m.cfg.Session.CookieName)
	if err != nil {
		return err
	}
	cookie := session.CookieOptions{
		Name:   m.cfg.Session.CookieName,
		Secure: m.cfg.App.IsProduction(),
	}

	enforcer, err := infra.NewEnforcer(rbac.ModelText)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewStaticPolicy(), enforcer, m.logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Repositories ---
	txManager := database.NewTxManager(m.db)
	authRepo := auth.NewRepository(m.db)
	employeeRepo := employee.NewRepository(m.db)
	attendanceRepo := attendance.NewRepository(m.db)
	timeEntryRepo := timeentry.NewRepository(m.db)
	outboxRepo := kafka.NewOutboxRepository(m.db)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, sessions, m.cfg.Session.BcryptCost, m.logger)
	attendanceService := attendance.NewService(txManager, attendanceRepo, outboxRepo, employeeRepo,
		attendance.WithLocation(m.cfg.App.Location),
		attendance.WithLogger(m.logger),
	)
	timeEntryService := timeentry.NewService(txManager, timeEntryRepo, outboxRepo, employeeRepo, m.cfg.Payroll.DefaultHourlyRate,
		timeentry.WithLocation(m.cfg.App.Location),
		timeentry.WithLogger(m.logger),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cookie)
	attendanceHandler := attendance.NewHandler(attendanceService, rbacService)
	timeEntryHandler := timeentry.NewHandler(timeEntryService, rbacService)

	// --- Global Middleware ---
	gate := access.NewGate(access.DefaultPolicy(), sessions)
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(m.logger.Named("http")),
		middleware.Gate(gate, cookie),
	)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	var idempotencyStore redis.Cmdable
	if m.redis != nil {
		idempotencyStore = m.redis
	}

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authService, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, authService, rbacService, idempotencyStore)
		timeentry.RegisterRoutes(api, timeEntryHandler, authService, rbacService)
	}

	return nil
}

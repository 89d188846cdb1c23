package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go-leaveflow/internal/auth"
	"go-leaveflow/internal/config"
	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/leave"
	"go-leaveflow/internal/messaging/kafka"
	"go-leaveflow/internal/metrics"
	"go-leaveflow/internal/middleware"
	"go-leaveflow/internal/notification"
	"go-leaveflow/internal/rbac"
	"go-leaveflow/internal/report"
	"go-leaveflow/internal/supervisor"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	supervisorRepo := supervisor.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Shared collaborators ---
	ledger := employee.NewLedger(cfg.Leave.BaseAllocation, time.Now)
	hrPool := employee.NewHRPool(employeeRepo, rdb, cfg.Redis.HRPoolTTL, logger)
	mailer := notification.NewMailer(cfg.SMTP, logger)
	publisher := notification.NewPublisher(cfg.Leave.NotificationMode, outboxRepo, mailer, logger)

	// --- Services ---
	authService := auth.NewService(db, authRepo, employeeRepo, ledger, auth.TokenConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.AccessTokenTTL,
	}, logger)
	if err := seedHRAdmin(authService, cfg); err != nil {
		return err
	}
	employeeService := employee.NewService(db, employeeRepo, ledger, hrPool, logger)
	supervisorService := supervisor.NewService(db, supervisorRepo, employeeRepo, logger)
	leaveService := leave.NewService(leave.Deps{
		DB:              db,
		Repo:            leaveRepo,
		EmployeeRepo:    employeeRepo,
		Supervisors:     supervisorService,
		Ledger:          ledger,
		HRPool:          hrPool,
		Publisher:       publisher,
		OverdraftPolicy: cfg.Leave.OverdraftPolicy,
		Now:             time.Now,
	}, logger)
	reportService := report.NewService(reportRepo, employeeRepo, supervisorService, time.Now, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure: cfg.IsProduction(),
		MaxAge: int(cfg.JWT.AccessTokenTTL.Seconds()),
	}, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	supervisorHandler := supervisor.NewHandler(supervisorService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	authMiddleware := middleware.AuthMiddleware(cfg.JWT.Secret, storedIdentity(authService))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware, rbacService)
		employee.RegisterRoutes(api, employeeHandler, authMiddleware, rbacService, logger)
		supervisor.RegisterRoutes(api, supervisorHandler, authMiddleware, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, leave.RouteConfig{
			AuthMiddleware: authMiddleware,
			RBACService:    rbacService,
			Redis:          rdb,
			HRDepartment:   cfg.Leave.HRDepartment,
			Logger:         logger,
		})
		report.RegisterRoutes(api, reportHandler, authMiddleware, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}

func storedIdentity(authService auth.Service) middleware.IdentityLookup {
	return func(ctx context.Context, userID string) (middleware.Identity, error) {
		me, err := authService.GetMe(ctx, userID)
		if err != nil {
			return middleware.Identity{}, err
		}
		return middleware.Identity{Role: me.Role, IsStaff: me.IsStaff, Department: me.Department}, nil
	}
}

const seedTimeout = 30 * time.Second

// seedHRAdmin creates the configured HR account on first start. Signup only
// produces regular employees, so without it nobody could reach the HR routes.
func seedHRAdmin(authService auth.Service, cfg *config.Config) error {
	if cfg.Bootstrap.HRUsername == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	_, err := authService.EnsureHRAdmin(ctx, auth.HRAdminSeed{
		Username:   cfg.Bootstrap.HRUsername,
		Password:   cfg.Bootstrap.HRPassword,
		Email:      cfg.Bootstrap.HREmail,
		Department: cfg.Leave.HRDepartment,
	})
	if err != nil {
		return fmt.Errorf("bootstrap hr account: %w", err)
	}
	return nil
}

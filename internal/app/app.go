package app

import (
	"database/sql"
	"fmt"

	"go-leaveflow/internal/auth"
	"go-leaveflow/internal/config"
	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/leave"
	"go-leaveflow/internal/messaging/kafka"
	"go-leaveflow/internal/report"
	"go-leaveflow/internal/shared/connection"
	"go-leaveflow/internal/supervisor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// BuildApp connects the stores, migrates the schema and mounts every module
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	logger.Info("application modules registered")
	return cleanup, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return gormDB, sqlDB, nil
}

// Migrate creates or updates every table the service owns. Order matters:
// referenced tables come first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&supervisor.Supervisor{},
		&leave.LeaveRequest{},
		&report.DailyReport{},
		&kafka.OutboxRecord{},
	)
}

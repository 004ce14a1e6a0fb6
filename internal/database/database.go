// Package database opens the GORM connection and owns the schema.
package database

import (
	"fmt"
	"time"

	"dashboard/internal/config"
	"dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the configured database and sizes its connection pool.
func Open(cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if logger.Core().Enabled(zap.DebugLevel) {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: NewGormLogger(logger, logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// one writer; also keeps in-memory databases on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("Connected to database", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// Migrate creates or updates every table the dashboard uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Country{},
		&models.Product{},
		&models.Appearance{},
		&models.PaymentSettings{},
		&models.ActivityLog{},
		&models.Admin{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

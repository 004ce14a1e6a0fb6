package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard/internal/database"
	"dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel) (*database.GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return database.NewGormLogger(zap.New(core), level), logs
}

func query() (string, int64) { return "SELECT * FROM countries", 0 }

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_LogsFailedQuery(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)

	l.Trace(context.Background(), time.Now(), query, errors.New("no such table: countries"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "gorm", entry.LoggerName)
	assert.Equal(t, "SELECT * FROM countries", entry.ContextMap()["sql"])
}

func TestGormLogger_SlowQueryIsWarning(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestGormLogger_LevelGatesQueries(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)
	l.Trace(context.Background(), time.Now(), query, nil)
	assert.Zero(t, logs.Len())

	verbose := l.LogMode(gormlogger.Info)
	verbose.Trace(context.Background(), time.Now(), query, nil)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)

	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
	assert.Equal(t, 1, logs.Len())
}

func TestOpen_RoutesMissingRowsQuietly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	db := openMemory(t)
	db.Logger = database.NewGormLogger(zap.New(core), gormlogger.Warn)

	var admin models.Admin
	err := db.First(&admin, "email = ?", "nobody@example.com").Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len())
}

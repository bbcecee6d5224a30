package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
)

// DatabaseLogger is a custom GORM logger that routes query traffic onto the
// application's structured logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = gormlogger.Silent
	case "error":
		logLevel = gormlogger.Error
	case "warn":
		logLevel = gormlogger.Warn
	case "info":
		logLevel = gormlogger.Info
	default:
		logLevel = gormlogger.Warn
	}

	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: time.Second,
	}
}

// LogMode returns a copy of the logger with the given level
func (l *DatabaseLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs informational messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Info {
		l.coreLogger.Info(msg, map[string]any{"data": data})
	}
}

// Warn logs warning messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"data": data})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Error {
		l.coreLogger.Error(msg, map[string]any{"data": data})
	}
}

// Trace logs executed SQL with duration, flagging slow queries
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= gormlogger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("Database query failed", fields)
	case elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		fields["slow_threshold"] = l.slowThreshold.String()
		l.coreLogger.Warn("Slow database query detected", fields)
	case l.logLevel >= gormlogger.Info:
		l.coreLogger.Debug("Database query executed", fields)
	}
}

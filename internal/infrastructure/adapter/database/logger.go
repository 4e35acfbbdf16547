package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a custom GORM logger that uses our core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

// NewGormDatabaseLogger creates a new GORM database logger with the core
// logger. Queries running longer than slowThreshold are logged as warnings.
func NewGormDatabaseLogger(coreLogger coreport.Logger, level string, slowThreshold time.Duration) logger.Interface {
	var logLevel logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Info
	}

	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}

	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: slowThreshold,
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs SQL operations
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}

	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}

	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case elapsed > l.slowThreshold && l.slowThreshold > 0:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		// Regular SQL queries go to debug level to reduce noise
		l.coreLogger.Debug("SQL Query", fields)
	}
}

// extractQueryType determines the type of SQL query
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	switch {
	case strings.HasPrefix(sqlUpper, "SELECT"):
		return "SELECT"
	case strings.HasPrefix(sqlUpper, "INSERT"):
		return "INSERT"
	case strings.HasPrefix(sqlUpper, "UPDATE"):
		return "UPDATE"
	case strings.HasPrefix(sqlUpper, "DELETE"):
		return "DELETE"
	}
	return ""
}

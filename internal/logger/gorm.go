package logger

import (
	"context"
	"errors"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"gorm.io/gorm"
)

// GormLogger envia os logs do GORM para o zerolog.
type GormLogger struct {
	SlowThreshold time.Duration
	level         gormlogger.LogLevel
}

var _ gormlogger.Interface = (*GormLogger)(nil)

func NewGormLogger(slowThreshold time.Duration) *GormLogger {
	return &GormLogger{SlowThreshold: slowThreshold, level: gormlogger.Warn}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		Info().Interface("args", args).Msg(msg)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		Warn().Interface("args", args).Msg(msg)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		Error().Interface("args", args).Msg(msg)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_query_error")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_slow_query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_query")
	}
}

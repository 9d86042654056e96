package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"swiftauth/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Bound parameters are never rendered into the
// logged SQL because the auth tables carry password hashes and token digests.
type queryLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var (
	_ gormlogger.Interface = (*queryLogger)(nil)
	_ gorm.ParamsFilter    = (*queryLogger)(nil)
)

func newQueryLogger(logger *slog.Logger, cfg *config.Config) *queryLogger {
	ql := &queryLogger{
		logger:        logger.With(slog.String("component", "gorm")),
		level:         gormlogger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}

	if cfg == nil {
		return ql
	}
	if cfg.Env.Debug {
		ql.level = gormlogger.Info
	}
	if cfg.Database.SlowThreshold > 0 {
		ql.slowThreshold = cfg.Database.SlowThreshold
	}

	return ql
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

// ParamsFilter drops the bound values so only placeholders reach the log.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, at gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < at {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error:
		// Missing rows and duplicate keys are answered by the repositories, not failures.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		if isUniqueConstraintViolation(err) {
			l.logger.LogAttrs(ctx, slog.LevelDebug, "query hit unique constraint", queryAttrs(fc, elapsed)...)

			return
		}
		attrs := append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}

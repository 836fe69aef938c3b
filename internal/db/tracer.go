package db

import (
	"context"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5/tracelog"

	"usersvc/internal/logging"
)

// newQueryTracer routes pgx statement logs through the app logger.
func newQueryTracer(logger logging.Logger) *tracelog.TraceLog {
	l := logger.With("component", "pgx")
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			args := traceArgs(data)
			switch level {
			case tracelog.LogLevelError:
				l.Error(msg, args...)
			case tracelog.LogLevelWarn:
				l.Warn(msg, args...)
			case tracelog.LogLevelInfo:
				l.Info(msg, args...)
			default:
				l.Debug(msg, args...)
			}
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}

// traceArgs flattens data into key/value pairs ordered by key.
func traceArgs(data map[string]any) []any {
	args := make([]any, 0, len(data)*2)
	for _, k := range slices.Sorted(maps.Keys(data)) {
		args = append(args, k, data[k])
	}
	return args
}

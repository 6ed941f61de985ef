package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// tipe privat agar key tidak bentrok dengan package lain
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sourceKey    contextKey = "source"
	loggerKey    contextKey = "logger"
)

// Source values tell which entry point triggered an operation.
const (
	SourceHTTP     = "http"
	SourceWorker   = "worker"
	SourceConsumer = "consumer"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

func GetSource(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}

// WithLogger menyimpan logger yang sudah ditempeli metadata request.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger mengambil logger dari context, fallback ke defaultLogger lalu
// ke no-op logger supaya tidak pernah nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

type Metadata struct {
	RequestID string
	Source    string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		Source:    GetSource(ctx),
	}
}

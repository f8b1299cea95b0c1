package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Field keys shared by request, catalog and recommendation log lines.
const (
	KeyRequestID = "request_id"
	KeyMode      = "mode"
	KeyEngine    = "engine"
	KeyTopN      = "top_n"
	KeyTitle     = "title"
)

type ctxKey struct{}

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// With extends the context logger with fields and stores the result in the
// returned context. Layers below the caller log with the same fields.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	return ContextWithLogger(ctx, FromContext(ctx).With(fields...))
}

// FromContext returns the logger stored in ctx, or a nop logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// Recommendation returns the fields identifying a recommendation call.
func Recommendation(mode recommendation.Mode, engine recommendation.Engine, topN int) []zap.Field {
	return []zap.Field{
		zap.String(KeyMode, string(mode)),
		zap.String(KeyEngine, string(engine)),
		zap.Int(KeyTopN, topN),
	}
}

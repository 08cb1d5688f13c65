package logging

import (
	"context"
	"log/slog"

	"marquee/internal/services"
)

// FieldRequestID carries the per-run correlation identifier.
const FieldRequestID = "request_id"

// ContextFields extracts structured logging attrs from context values set by
// the services package.
func ContextFields(ctx context.Context) []Attr {
	if ctx == nil {
		return nil
	}
	var fields []Attr
	if id, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, String(FieldRequestID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context. If no recognized values are present the logger is
// returned unchanged.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}

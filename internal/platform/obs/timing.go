package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying id for later Time calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts timing op and returns a func that logs its duration and,
// if *errp is non-nil, the error. Intended for use with defer.
func Time(ctx context.Context, logger *slog.Logger, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.WarnContext(ctx, "op failed", "req_id", reqID, "op", op, "dur", dur, "err", *errp)
			return
		}
		logger.DebugContext(ctx, "op done", "req_id", reqID, "op", op, "dur", dur)
	}
}

package logging

import (
	"context"
	"time"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
)

// RequestLoggingMiddleware injects logger into the context of every request and
// records the request name, duration and outcome
func RequestLoggingMiddleware(logger Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if logger == nil {
			return next(ctx, request)
		}
		ctx = WithLogger(ctx, logger)

		name := mediator.RequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		metadata := map[string]interface{}{
			"request":     name,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log(LevelWarn, "request failed", metadata)
		} else {
			logger.Log(LevelDebug, "request handled", metadata)
		}

		return response, err
	}
}

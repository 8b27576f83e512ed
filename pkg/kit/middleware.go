package kit

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrUnauthorized is returned by RequireAdmin when the request did not pass
// the credential gate. Transports map it to 401.
var ErrUnauthorized = errors.New("unauthorized")

// RequireAdmin rejects requests that do not carry verified admin
// credentials in the context.
func RequireAdmin() Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			if !IsAdmin(ctx) {
				return nil, ErrUnauthorized
			}
			return next(ctx, request)
		}
	}
}

// Logging logs every endpoint invocation with its request id, transport,
// and duration.
func Logging(logger *slog.Logger, name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			attrs := []any{
				"endpoint", name,
				"transport", GetTransport(ctx),
				"request_id", GetRequestID(ctx),
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Warn("endpoint failed", append(attrs, "error", err)...)
			} else {
				logger.Debug("endpoint ok", attrs...)
			}
			return resp, err
		}
	}
}

package kit

import "context"

type contextKey string

const (
	AdminKey     contextKey = "kit_admin"
	SubmitterKey contextKey = "kit_submitter"
	TransportKey contextKey = "kit_transport" // "http", "mcp"
	RequestIDKey contextKey = "kit_request_id"
)

// WithAdmin marks the request as carrying verified admin credentials.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, AdminKey, true)
}

// IsAdmin reports whether the request passed the admin credential gate.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(AdminKey).(bool)
	return v
}

// WithSubmitter records the identity of whoever submitted a suggestion
// (resolved hostname or IP). Empty means unknown.
func WithSubmitter(ctx context.Context, who string) context.Context {
	return context.WithValue(ctx, SubmitterKey, who)
}

// GetSubmitter returns the submitter identity, or "" when unknown.
func GetSubmitter(ctx context.Context) string {
	v, _ := ctx.Value(SubmitterKey).(string)
	return v
}

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

package middleware

import "context"

type contextKey string

const (
	ctxUserEmail     contextKey = "user_email"
	ctxUserName      contextKey = "user_name"
	ctxAuthSessionID contextKey = "auth_session_id"
	ctxCartSessionID contextKey = "cart_session_id"
)

func UserEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserEmail).(string); ok {
		return v
	}
	return ""
}

func UserNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserName).(string); ok {
		return v
	}
	return ""
}

// AuthSessionIDFromContext returns the admin token's jti, the handle used to
// revoke the session on logout.
func AuthSessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAuthSessionID).(string); ok {
		return v
	}
	return ""
}

// CartSessionIDFromContext returns the shopper's cart session ID.
func CartSessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartSessionID).(string); ok {
		return v
	}
	return ""
}

// WithCartSessionID injects the cart session ID, used by handler tests.
func WithCartSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartSessionID, sessionID)
}

// WithAuthSession injects the admin identity, used by handler tests.
func WithAuthSession(ctx context.Context, sessionID, email string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxAuthSessionID, sessionID)
	return context.WithValue(ctx, ctxUserEmail, email)
}

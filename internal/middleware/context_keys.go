package middleware

import "context"

// userIDKey is the key used to store the authenticated caller's ID in the request context.
const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the caller id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromCtx retrieves the authenticated caller ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated caller's identity string.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated caller identity, or "" when
// the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

package auth

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// WithUser stores the verified token claims on the request context.
func WithUser(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKeyUser, claims)
}

func UserFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKeyUser).(*Claims)
	return claims, ok && claims != nil
}

// UserField names the authenticated caller in a log line, or is skipped
// when the request carries no claims.
func UserField(ctx context.Context) zap.Field {
	if claims, ok := UserFromContext(ctx); ok {
		return zap.Int64("user_id", claims.ID)
	}
	return zap.Skip()
}

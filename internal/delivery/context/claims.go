package context

import (
	"context"

	"aeon/internal/domain/service"
)

// KeyClaims is the key for storing verified access token claims in context.
const KeyClaims ContextKey = "claims"

// WithClaims returns a new context carrying the caller's claims.
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// GetClaims returns the caller's claims, or nil for anonymous requests.
func GetClaims(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}

package middleware

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the caller's identity in the request context.
const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromCtx returns the identity stored by the auth middleware.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok && identity != nil
}

// GetIdentityFromContext retrieves the authenticated caller from the Gin context.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	return IdentityFromCtx(c.Request.Context())
}

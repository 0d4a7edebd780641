package middleware

import (
	"context"

	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

type contextKey string

const (
	ctxUser contextKey = "session_user"
)

// UserFromContext returns the authenticated user seeded by Guard, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	if ctx == nil {
		return models.User{}, false
	}
	if u, ok := ctx.Value(ctxUser).(models.User); ok {
		return u, true
	}
	return models.User{}, false
}

// RoleFromContext returns the authenticated role, or the zero Role when the
// request carries no session.
func RoleFromContext(ctx context.Context) enums.Role {
	u, ok := UserFromContext(ctx)
	if !ok {
		return enums.Role("")
	}
	return u.Role
}

// WithUser injects the session user into the context.
func WithUser(ctx context.Context, user models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}

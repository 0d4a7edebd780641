package middleware

import (
	"net/http"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/pkg/auth/session"
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
)

// Guard resolves the bearer token to a session and seeds the request
// context with the user. No session means a 401 pointing the client at the
// login route; the decision is made fresh on every request.
func Guard(sessions *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, unauthenticated())
				return
			}

			sess, err := sessions.Lookup(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving session"))
				return
			}
			if sess == nil {
				responses.WriteError(r.Context(), logg, w, unauthenticated())
				return
			}

			ctx := WithUser(r.Context(), sess.User)
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    sess.User.ID,
					"actor_role": string(sess.User.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated users whose role is not in the allow
// list, redirecting them to their own home route rather than the login page.
func RequireRole(logg *logger.Logger, allowed ...enums.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[enums.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, unauthenticated())
				return
			}

			if _, permitted := allowedSet[user.Role]; !permitted {
				err := pkgerrors.New(pkgerrors.CodeForbidden, "access denied").
					WithDetails(map[string]string{"redirect": user.Role.HomeRoute()})
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthenticated() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required").
		WithDetails(map[string]string{"redirect": enums.LoginRoute})
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

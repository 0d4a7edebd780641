package controllers

import (
	"net/http"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/api/validators"
	"github.com/ensigotrace/ensigotrace-backend/internal/auth"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
)

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, m *metrics.APIMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			m.IncLogin("failure")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncLogin("success")
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the bearer session. The token may arrive in the
// Authorization header or the request body; revoking an unknown token still
// succeeds.
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := bearerToken(r)
		if token == "" {
			var body auth.LogoutRequest
			if err := validators.DecodeJSONBody(r, &body); err == nil {
				token = body.Token
			}
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
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

package controllers

import (
	"net/http"

	"github.com/ensigotrace/ensigotrace-backend/api/middleware"
	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/visibility"
)

// Menu returns the sidebar views visible to the authenticated role.
func Menu(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := middleware.RoleFromContext(r.Context())
		responses.WriteSuccess(w, visibility.MenuFor(role))
	}
}

package middleware

import (
	"context"
	"net/http"

	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

// RoleLookup resolves the role granted to an email address
type RoleLookup interface {
	RoleForEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin only lets users whose role is admin through. It must run
// after AuthMiddleware. Failed lookups are logged to log.
func RequireAdmin(next http.HandlerFunc, roles RoleLookup, log *logger.Logger) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := utils.GetEmailFromContext(r.Context())
		if !ok {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Admin role required")
			return
		}

		role, err := roles.RoleForEmail(r.Context(), email)
		if err != nil {
			log.Error("role lookup failed", "email", email, "err", err, "request_id", r.Header.Get(RequestIDHeader))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not check role")
			return
		}
		if role != models.RoleAdmin {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Admin role required")
			return
		}

		next.ServeHTTP(w, r)
	}
}

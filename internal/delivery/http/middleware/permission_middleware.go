package middleware

import (
	"net/http"

	"clinic-management-api/internal/authz"
	"clinic-management-api/pkg/response"
)

// RequirePermission gates a route on the permission matrix. Usecases run the
// same check again before touching any store, so a route that cannot name a
// single operation (role-dependent reads) may rely on the usecase alone.
func RequirePermission(op authz.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := authz.ActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Identity not found")
				return
			}

			if !authz.Allowed(actor.Role, op) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

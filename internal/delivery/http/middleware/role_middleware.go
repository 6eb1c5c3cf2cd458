package middleware

import (
	"net/http"

	"clinic-records/internal/domain/entity"
	"clinic-records/pkg/response"
)

// RequireRole lets the request through only when the role placed in the
// context by AuthMiddleware is one of allowed.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireOperator admits any signed-in operator, admin or clerk.
func RequireOperator(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleClerk)(next)
}

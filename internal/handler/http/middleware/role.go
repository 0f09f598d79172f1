package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleAdmin)
}

// RequireManager requires the manager or admin role.
func RequireManager(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleManager, user.RoleAdmin)
}

func requireRoles(next http.Handler, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		for _, allowed := range roles {
			if role == string(allowed) {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.HandleError(w, user.ErrForbidden)
	})
}

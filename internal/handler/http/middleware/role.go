package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
)

// RequireSuperAdmin requires the top privilege tier. Navigation filtering in
// the view layer is cosmetic; this is the enforcement point.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrSuperAdminRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrSuperAdminRequired)
			return
		}

		if hrm.Role(role) != hrm.RoleSuperAdmin {
			response.HandleError(w, auth.ErrSuperAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

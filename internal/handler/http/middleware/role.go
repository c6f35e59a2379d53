package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
)

func roleFromContext(r *http.Request) (jwt.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return jwt.Role(role), true
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != jwt.RoleAdmin {
			response.HandleError(w, jwt.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireGateway requires gateway or admin role
func RequireGateway(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != jwt.RoleGateway && role != jwt.RoleAdmin) {
			response.HandleError(w, jwt.ErrGatewayAccess)
			return
		}

		next.ServeHTTP(w, r)
	})
}

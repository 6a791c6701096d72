package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/heating-backoffice/application/user"
	"github.com/muhammadheryan/heating-backoffice/constant"
	utilsContext "github.com/muhammadheryan/heating-backoffice/utils/context"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
)

// AuthMiddleware validates the Bearer token through UserApp and stores the caller identity
// in the request context. Public endpoints pass through untouched.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity.UserID, identity.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleMiddleware rejects callers whose role is not listed.
func RoleMiddleware(roles ...constant.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utilsContext.GetUserRole(r.Context())
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	switch path {
	case "/api/auth/login", "/api/auth/register", "/healthz", "/metrics":
		return true
	}
	return false
}

package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/auth"
	"github.com/presensi-magang/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly guards the admin surface. The app has exactly one privileged
// role, so token validation and the privilege check live in one middleware:
// the token must be a verified access token carrying the is_admin claim set
// by the login endpoint. Mount below jwtauth.Verifier.
func AdminOnly(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if typ, _ := claims["type"].(string); typ != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if isAdmin, _ := claims["is_admin"].(bool); !isAdmin {
				response.HandleError(w, auth.ErrAdminPrivilegeRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

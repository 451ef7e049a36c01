package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"

	"github.com/hiqsoft/routecore/pkg/composables"
	"github.com/hiqsoft/routecore/pkg/httpapi"
)

// TokenClaims is the session token payload issued by the auth service.
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the HS256 token from the Authorization header and
// stores the acting user's id in the context. Clients may send the raw token
// or the conventional "Bearer " prefix.
func RequireAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
			if raw == "" {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "AUTH_TOKEN_REQUIRED", "Token required")
				return
			}

			claims := &TokenClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "AUTH_TOKEN_INVALID", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(composables.WithUserID(r.Context(), claims.UserID)))
		})
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/sstmlab/nfc-redirect/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// ClaimsKey is the key used to store and retrieve verified token claims from
// the context.
const ClaimsKey ContextKey = "claims"

// ClaimsFromContext returns the verified claims injected by WithAuth.
func ClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*service.Claims)
	return claims, ok
}

// WithAuth requires a valid credential token on the request: either the
// Authorization header or the claim-handoff cookie set during resolution.
// Verified claims are injected into the request context. An expired token is
// rejected, never silently reissued.
func WithAuth(codec service.CodecIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				if cookie, err := r.Cookie(service.ClaimCookie); err == nil {
					token = cookie.Value
				}
			}

			if token == "" {
				http.Error(w, "Access token missing", http.StatusUnauthorized)
				return
			}

			claims, err := codec.Verify(token)
			if err != nil {
				if errors.Is(err, service.ErrTokenExpired) {
					http.Error(w, "Token expired", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Invalid token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

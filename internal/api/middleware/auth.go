package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/remib/phonestore/internal/service"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// Auth guards protected routes. A missing or malformed Authorization
// header is 401; a token that fails verification (bad signature or past
// expiry) is 403 with a session-expired message.
func Auth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				writeMessage(w, http.StatusUnauthorized, "Access denied. Please log in.")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				writeMessage(w, http.StatusUnauthorized, "Access denied. Please log in.")
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				writeMessage(w, http.StatusForbidden, "Session expired. Please log in again.")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the identity attached by Auth.
func GetIdentity(ctx context.Context) (*service.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*service.Identity)
	return identity, ok
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

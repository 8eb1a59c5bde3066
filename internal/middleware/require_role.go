package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"barangay-animal-tracking/internal/ports/recordstore"
)

// RoleResolver devuelve el rol del perfil del usuario.
type RoleResolver func(ctx context.Context, userID string) (string, error)

// RequireRole corta con 401 sin claims y 403 si el rol no está permitido
// (o el usuario no tiene perfil).
func RequireRole(resolve RoleResolver, allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			role, err := resolve(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, recordstore.ErrNotFound) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			for _, a := range allowed {
				if strings.EqualFold(role, a) {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// Package identity carries the caller identity supplied by the presentation
// layer. Authentication itself happens upstream; this layer only requires
// that a well-formed identity is present on ownership-gated routes.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is set by the presentation/auth tier in front of the API.
const Header = "X-User-ID"

type contextKey struct{}

// Require rejects requests without a well-formed caller identity and stores
// the parsed id on the request context.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(Header))
		if err != nil {
			http.Error(w, "missing or invalid caller identity", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, id)))
	})
}

// FromContext returns the caller id stored by Require.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}

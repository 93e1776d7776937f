package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fundraise/internal/http/identity"
)

func TestRequire(t *testing.T) {
	callerID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := identity.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, callerID, got)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("ValidHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(identity.Header, callerID.String())
		rec := httptest.NewRecorder()

		identity.Require(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		identity.Require(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(identity.Header, "not-a-uuid")
		rec := httptest.NewRecorder()

		identity.Require(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := identity.FromContext(req.Context())
	assert.False(t, ok)
}

package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripflow/config"
	domainerrors "tripflow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerifier(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func newTestVerifier(t *testing.T, url string) *verifier {
	cfg := &config.Config{
		Supabase: &config.SupabaseConfig{
			URL:            url,
			ServiceRoleKey: "service-key",
		},
	}
	v, err := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return v.(*verifier)
}

func TestVerifier_ForwardsCredentialAndTrustsBody(t *testing.T) {
	var gotAuth, gotAPIKey, gotPath string
	server := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "uuid-1",
			"email": "alice@example.com",
			"role":  "authenticated",
		})
	})

	v := newTestVerifier(t, server.URL)

	identity, err := v.Verify(context.Background(), "end-user-token")
	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/user", gotPath)
	assert.Equal(t, "Bearer end-user-token", gotAuth)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "uuid-1", identity.ID)
	assert.Equal(t, "alice@example.com", identity.Username)
	assert.Equal(t, "authenticated", identity.Claims["role"])
}

func TestVerifier_RejectsNon200(t *testing.T) {
	server := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	v := newTestVerifier(t, server.URL)

	_, err := v.Verify(context.Background(), "expired-token")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestVerifier_RejectsBodyWithoutID(t *testing.T) {
	server := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"email": "alice@example.com"})
	})

	v := newTestVerifier(t, server.URL)

	_, err := v.Verify(context.Background(), "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerifier_TransportFailureIsNotACredentialVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	v := newTestVerifier(t, server.URL)

	_, err := v.Verify(context.Background(), "token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestVerifier_KeepsExistingBearerPrefix(t *testing.T) {
	assert.Equal(t, "Bearer tok", bearer("tok"))
	assert.Equal(t, "Bearer tok", bearer("Bearer tok"))
}

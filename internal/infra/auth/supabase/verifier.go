// Package supabase implements identity verification against the remote
// managed backend's auth endpoint.
package supabase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"tripflow/config"
	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"
)

const verifyTimeout = 10 * time.Second

// verifier forwards the end-user's bearer credential to the remote identity
// endpoint and trusts its 200-status body as the identity. Every request
// re-verifies; there is no caching.
type verifier struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewVerifier is the constructor for the remote identity verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, errors.New("supabase url must be provided for the remote identity verifier")
	}

	return &verifier{
		baseURL: strings.TrimSuffix(cfg.Supabase.URL, "/"),
		apiKey:  cfg.Supabase.ServiceRoleKey,
		httpClient: &http.Client{
			Timeout: verifyTimeout,
		},
		logger: logger,
	}, nil
}

// Verify performs one outbound call to the identity endpoint. Any non-200
// response is an invalid credential from this layer's perspective; a
// transport failure is an upstream fault, never a credential verdict.
func (v *verifier) Verify(ctx context.Context, credential string) (*entity.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build identity request")
	}
	req.Header.Set("Authorization", bearer(credential))
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProviderFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Debug("Identity endpoint rejected credential", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrInvalidToken.WithDetails("identity endpoint rejected the credential")
	}

	var claims map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to decode identity response")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("identity response did not include an id")
	}
	username, _ := claims["email"].(string)

	return &entity.Identity{
		ID:       id,
		Username: username,
		Claims:   claims,
	}, nil
}

func bearer(credential string) string {
	if strings.HasPrefix(credential, "Bearer ") {
		return credential
	}

	return "Bearer " + credential
}

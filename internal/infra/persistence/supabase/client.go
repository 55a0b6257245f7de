// Package supabase contains the concrete implementation of the persistence
// layer against the remote managed REST backend.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripflow/config"
	domainerrors "tripflow/internal/domain/errors"

	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

// Client is a thin PostgREST-style client. Every call carries the service
// role key, so the service always acts with elevated privilege; ownership
// filters are applied in the query string by the repositories.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, errors.New("supabase url must be provided for the remote backend")
	}
	if cfg.Supabase.ServiceRoleKey == "" {
		return nil, errors.New("supabase service role key must be provided for the remote backend")
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.Supabase.URL, "/"),
		serviceKey: cfg.Supabase.ServiceRoleKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}, nil
}

// do issues one REST call and decodes the response into out (when non-nil).
// A non-2xx status becomes a StorageError carrying the upstream status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	// Ask the backend to echo affected rows so empty matches are detectable.
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewStorageError(err, "remote backend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Remote backend returned non-success status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.NewUpstreamStorageError(resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewStorageError(err, "failed to decode remote backend response")
	}

	return nil
}

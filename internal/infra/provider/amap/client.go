// Package amap implements the gateway to the Amap driving-direction API.
package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tripflow/config"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://restapi.amap.com/v3/direction/driving"
	requestTimeout = 10 * time.Second
)

type client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the map gateway.
func New(cfg *config.Config, logger *slog.Logger) service.RouteService {
	var key, baseURL string
	if cfg.Amap != nil {
		key = cfg.Amap.Key
		baseURL = cfg.Amap.BaseURL
	}

	return newClient(key, baseURL, logger)
}

func newClient(key, baseURL string, logger *slog.Logger) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		key:     key,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// Route queries one driving route between two (lng, lat) points and returns
// the provider's parsed body untouched.
func (c *client) Route(ctx context.Context, origin, destination orb.Point) (map[string]any, error) {
	if c.key == "" {
		return nil, domainerrors.ErrProviderUnavailable.WithDetails("map provider key is not configured")
	}

	params := url.Values{}
	params.Set("key", c.key)
	params.Set("origin", formatPoint(origin))
	params.Set("destination", formatPoint(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build route request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProviderFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Map provider returned non-success status", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrProviderFailed.WithDetails(
			fmt.Sprintf("map provider returned status %d", resp.StatusCode))
	}

	var route map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return nil, domainerrors.ErrProviderFailed.WrapMessage("failed to decode route response")
	}

	return route, nil
}

func formatPoint(point orb.Point) string {
	return fmt.Sprintf("%g,%g", point.Lon(), point.Lat())
}

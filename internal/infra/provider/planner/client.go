// Package planner implements the gateway to the LLM itinerary-generation
// agent. One request, one response, no retries.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tripflow/config"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"

	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

type client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the planner gateway.
func New(cfg *config.Config, logger *slog.Logger) service.PlanGenerator {
	gateway := &client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
	if cfg.Planner != nil {
		gateway.url = cfg.Planner.URL
		gateway.apiKey = cfg.Planner.APIKey
	}

	return gateway
}

// GeneratePlan builds a prompt from the trip parameters and returns the
// agent's parsed JSON body untouched. Semantic validation of the itinerary
// is deliberately left to the caller side of the contract.
func (c *client) GeneratePlan(ctx context.Context, basicInfo map[string]any) (map[string]any, error) {
	if c.url == "" {
		return nil, domainerrors.ErrProviderUnavailable.WithDetails("planner endpoint is not configured")
	}

	encoded, err := json.Marshal(basicInfo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode basic info")
	}
	payload, err := json.Marshal(map[string]string{
		"prompt": fmt.Sprintf("Generate a TravelPlan JSON matching the schema given BasicInfo: %s", encoded),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode planner request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build planner request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProviderFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Planner returned non-success status", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrProviderFailed.WithDetails(
			fmt.Sprintf("planner returned status %d", resp.StatusCode))
	}

	var plan map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return nil, domainerrors.ErrProviderFailed.WrapMessage("failed to decode planner response")
	}

	return plan, nil
}

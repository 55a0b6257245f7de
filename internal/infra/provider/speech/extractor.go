package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tripflow/config"
	"tripflow/internal/domain/entity"
	"tripflow/internal/domain/service"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const extractTimeout = 30 * time.Second

type extractor struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewExtractor is the constructor for the LLM extraction gateway. It
// returns nil when no extraction endpoint is configured; the pipeline then
// relies on the heuristic fallback alone.
func NewExtractor(cfg *config.Config, logger *slog.Logger) service.BasicInfoExtractor {
	if cfg.Speech == nil || cfg.Speech.ExtractionURL == "" {
		return nil
	}

	return &extractor{
		url:    cfg.Speech.ExtractionURL,
		apiKey: cfg.Speech.APIKey,
		httpClient: &http.Client{
			Timeout: extractTimeout,
		},
		logger: logger,
	}
}

// Extract asks the LLM endpoint to derive trip parameters from the
// transcript. Errors here are advisory: the caller swallows them and
// substitutes the heuristic derivation.
func (e *extractor) Extract(ctx context.Context, text string) (*entity.BasicInfo, error) {
	payload, err := json.Marshal(map[string]string{
		"input": text,
		"task":  "extract_basic_info",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode extraction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build extraction request")
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "extraction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("extraction endpoint returned status %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode extraction response")
	}

	raw := basicInfoFromBody(body)
	if raw == nil {
		return nil, errors.New("extraction response did not include basic info")
	}

	var info entity.BasicInfo
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &info,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build basic info decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode basic info")
	}
	if info.Destination == "" {
		return nil, errors.New("extracted basic info is missing a destination")
	}

	return &info, nil
}

// basicInfoFromBody probes the two known response shapes:
// {"basic_info": {...}} and {"result": {"basic_info": {...}}}.
func basicInfoFromBody(body map[string]any) map[string]any {
	if raw, ok := body["basic_info"].(map[string]any); ok {
		return raw
	}
	if result, ok := body["result"].(map[string]any); ok {
		if raw, ok := result["basic_info"].(map[string]any); ok {
			return raw
		}
	}

	return nil
}

// Package speech implements the gateways to the speech-recognition
// provider and its optional LLM extraction endpoint.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"tripflow/config"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"

	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

type transcriber struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTranscriber is the constructor for the speech-recognition gateway.
func NewTranscriber(cfg *config.Config, logger *slog.Logger) service.Transcriber {
	gateway := &transcriber{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
	if cfg.Speech != nil {
		gateway.url = cfg.Speech.RecognitionURL
		gateway.apiKey = cfg.Speech.APIKey
	}

	return gateway
}

// Transcribe uploads the audio as multipart form data and extracts the
// transcript from either of the provider's two known response shapes:
// a top-level "text" field or a nested "data.text" field.
func (t *transcriber) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if t.url == "" {
		return "", domainerrors.ErrSpeechUnavailable
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("audio", "recording."+format)
	if err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := part.Write(audio); err != nil {
		return "", errors.Wrap(err, "failed to write audio payload")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to build transcription request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.ErrTranscriptionFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.logger.Warn("Speech provider returned non-success status", slog.Int("status", resp.StatusCode))

		return "", domainerrors.ErrTranscriptionFailed.WithDetails(
			fmt.Sprintf("speech provider returned status %d", resp.StatusCode))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domainerrors.ErrUnrecognizedResponseShape.WrapMessage(err.Error())
	}

	if text, ok := payload["text"].(string); ok && text != "" {
		return text, nil
	}
	if data, ok := payload["data"].(map[string]any); ok {
		if text, ok := data["text"].(string); ok && text != "" {
			return text, nil
		}
	}

	return "", domainerrors.ErrUnrecognizedResponseShape
}

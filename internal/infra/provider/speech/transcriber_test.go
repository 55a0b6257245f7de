package speech

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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTranscriber(t *testing.T, handler http.HandlerFunc) *transcriber {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Speech: &config.SpeechConfig{RecognitionURL: server.URL},
	}

	return NewTranscriber(cfg, discardLogger()).(*transcriber)
}

func TestTranscriber_TopLevelTextShape(t *testing.T) {
	var gotField, gotFilename string
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("audio")
		require.NoError(t, err)
		defer file.Close()
		gotField = "audio"
		gotFilename = header.Filename
		json.NewEncoder(w).Encode(map[string]any{"text": "a week in Kyoto"})
	})

	text, err := tr.Transcribe(context.Background(), []byte("pcm"), "wav")

	require.NoError(t, err)
	assert.Equal(t, "a week in Kyoto", text)
	assert.Equal(t, "audio", gotField)
	assert.Equal(t, "recording.wav", gotFilename)
}

func TestTranscriber_NestedDataTextShape(t *testing.T) {
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"text": "three days in Osaka"},
		})
	})

	text, err := tr.Transcribe(context.Background(), []byte("pcm"), "mp3")

	require.NoError(t, err)
	assert.Equal(t, "three days in Osaka", text)
}

func TestTranscriber_UnrecognizedShape(t *testing.T) {
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"transcript": "missing"})
	})

	_, err := tr.Transcribe(context.Background(), []byte("pcm"), "wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedResponseShape)
}

func TestTranscriber_ProviderFailure(t *testing.T) {
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := tr.Transcribe(context.Background(), []byte("pcm"), "wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTranscriptionFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestTranscriber_Unconfigured(t *testing.T) {
	tr := NewTranscriber(&config.Config{}, discardLogger())

	_, err := tr.Transcribe(context.Background(), []byte("pcm"), "wav")

	assert.ErrorIs(t, err, domainerrors.ErrSpeechUnavailable)
}

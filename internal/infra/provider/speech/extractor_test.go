package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *extractor {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Speech: &config.SpeechConfig{ExtractionURL: server.URL},
	}

	return NewExtractor(cfg, discardLogger()).(*extractor)
}

func TestNewExtractor_NilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewExtractor(&config.Config{}, discardLogger()))
	assert.Nil(t, NewExtractor(&config.Config{Speech: &config.SpeechConfig{}}, discardLogger()))
}

func TestExtractor_TopLevelShape(t *testing.T) {
	var gotBody map[string]string
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"basic_info": map[string]any{
				"destination": "Osaka",
				"travelers":   2,
				"days":        "3",
			},
		})
	})

	info, err := e.Extract(context.Background(), "three days in Osaka for two")

	require.NoError(t, err)
	assert.Equal(t, "three days in Osaka for two", gotBody["input"])
	assert.Equal(t, "Osaka", info.Destination)
	assert.Equal(t, 2, info.Travelers)
	assert.Equal(t, 3, info.Days)
}

func TestExtractor_NestedResultShape(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"basic_info": map[string]any{"destination": "Nara"},
			},
		})
	})

	info, err := e.Extract(context.Background(), "day trip to Nara")

	require.NoError(t, err)
	assert.Equal(t, "Nara", info.Destination)
}

func TestExtractor_MissingBasicInfo(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	_, err := e.Extract(context.Background(), "anything")

	assert.Error(t, err)
}

func TestExtractor_MissingDestination(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"basic_info": map[string]any{"travelers": 2},
		})
	})

	_, err := e.Extract(context.Background(), "anything")

	assert.Error(t, err)
}

func TestExtractor_UpstreamFailure(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := e.Extract(context.Background(), "anything")

	assert.Error(t, err)
}

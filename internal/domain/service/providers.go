package service

import (
	"context"

	"tripflow/internal/domain/entity"

	"github.com/paulmach/orb"
)

// PlanGenerator is the LLM itinerary-generation gateway: one request, one
// response, no retries. The returned document is the provider's parsed JSON
// body, untouched; semantic validation of its contents is out of scope.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, basicInfo map[string]any) (map[string]any, error)
}

// RouteService is the mapping provider gateway. Points are (lng, lat).
type RouteService interface {
	Route(ctx context.Context, origin, destination orb.Point) (map[string]any, error)
}

// Transcriber turns raw audio bytes into a transcript via the external
// speech provider.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}

// BasicInfoExtractor derives structured trip parameters from a transcript
// using the optional LLM extraction endpoint. Callers treat any error as a
// signal to fall back to the heuristic derivation.
type BasicInfoExtractor interface {
	Extract(ctx context.Context, text string) (*entity.BasicInfo, error)
}

package usecase

import (
	"context"

	"tripflow/internal/domain/entity"
)

// RecognizeOutput is the pipeline's public result: the transcript plus the
// structured trip parameters derived from it. The basic info is always
// present; when the extraction provider is absent or misbehaving it comes
// from the heuristic fallback.
type RecognizeOutput struct {
	Text      string            `json:"text"`
	BasicInfo *entity.BasicInfo `json:"basicInfo"`
}

// SpeechUsecase defines the transcription-and-extraction pipeline.
type SpeechUsecase interface {
	Recognize(ctx context.Context, audio []byte, format string) (*RecognizeOutput, error)
}

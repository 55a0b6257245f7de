package impl

import (
	"context"
	"log/slog"

	"tripflow/internal/domain/entity"
	"tripflow/internal/domain/service"
	"tripflow/internal/usecase"

	"github.com/pkg/errors"
)

// speechService implements the SpeechUsecase interface. The extractor is
// optional; when it is nil or fails, the heuristic derivation stands in.
type speechService struct {
	transcriber service.Transcriber
	extractor   service.BasicInfoExtractor
	logger      *slog.Logger
}

// NewSpeechService is the constructor for speechService.
func NewSpeechService(
	transcriber service.Transcriber,
	extractor service.BasicInfoExtractor,
	logger *slog.Logger,
) usecase.SpeechUsecase {
	return &speechService{
		transcriber: transcriber,
		extractor:   extractor,
		logger:      logger,
	}
}

// Recognize transcribes the audio and derives trip parameters from the
// transcript. Transcription errors abort the pipeline; extraction errors
// do not, since the heuristic result is always available.
func (srv *speechService) Recognize(ctx context.Context, audio []byte, format string) (*usecase.RecognizeOutput, error) {
	text, err := srv.transcriber.Transcribe(ctx, audio, format)
	if err != nil {
		return nil, errors.Wrap(err, "failed to transcribe audio")
	}

	info := heuristicBasicInfo(text)
	if srv.extractor != nil {
		extracted, err := srv.extractor.Extract(ctx, text)
		if err != nil {
			srv.logger.Warn("Extraction failed, keeping heuristic basic info", "error", err)
		} else {
			info = extracted
		}
	}

	return &usecase.RecognizeOutput{
		Text:      text,
		BasicInfo: info,
	}, nil
}

// heuristicBasicInfo derives minimal trip parameters from a transcript
// without any provider involvement. The full transcript becomes the
// destination so nothing the user said is lost.
func heuristicBasicInfo(text string) *entity.BasicInfo {
	return &entity.BasicInfo{
		Destination: text,
		Travelers:   1,
		Days:        1,
		Budget:      0,
		Preferences: []string{},
	}
}

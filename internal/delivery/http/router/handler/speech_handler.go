package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"tripflow/internal/delivery/http/response"
	"tripflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultAudioFormat = "wav"

// SpeechHandler holds dependencies for the voice input endpoint.
type SpeechHandler struct {
	uc     usecase.SpeechUsecase
	logger *slog.Logger
}

// NewSpeechHandler is the constructor for SpeechHandler, injected by Fx.
func NewSpeechHandler(uc usecase.SpeechUsecase, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{
		uc:     uc,
		logger: logger,
	}
}

// Recognize accepts an uploaded audio file and runs it through the
// transcription-and-extraction pipeline. The audio format is taken from
// the uploaded filename's extension.
func (h *SpeechHandler) Recognize(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to open uploaded file")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded file")
	}

	format := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	if format == "" {
		format = defaultAudioFormat
	}

	output, err := h.uc.Recognize(c.Request().Context(), audio, format)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Speech recognized successfully")
}

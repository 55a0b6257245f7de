package handler

import (
	"log/slog"
	"net/http"

	"tripflow/internal/delivery/http/response"
	"tripflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AIHandler holds dependencies for the LLM plan generation endpoint.
type AIHandler struct {
	generator service.PlanGenerator
	logger    *slog.Logger
}

// NewAIHandler is the constructor for AIHandler, injected by Fx.
func NewAIHandler(generator service.PlanGenerator, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		generator: generator,
		logger:    logger,
	}
}

type generatePlanInput struct {
	BasicInfo map[string]any `json:"basicInfo"`
}

// GeneratePlan asks the LLM provider for a full plan document from the
// given trip parameters. The document is returned untouched.
func (h *AIHandler) GeneratePlan(c echo.Context) error {
	var input *generatePlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan generation input")
	}
	if input == nil || len(input.BasicInfo) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "basicInfo is required")
	}

	plan, err := h.generator.GeneratePlan(c.Request().Context(), input.BasicInfo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan generated successfully")
}

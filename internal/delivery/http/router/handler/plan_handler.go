package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tripflow/internal/delivery/http/response"
	"tripflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for travel plan handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every plan owned by the caller.
func (h *PlanHandler) List(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from request context")
	}

	plans, err := h.uc.ListPlans(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "Plans retrieved successfully")
}

// Create persists a new plan document under the caller's ownership.
func (h *PlanHandler) Create(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from request context")
	}

	var input *usecase.CreatePlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid travel plan input")
	}

	plan, err := h.uc.CreatePlan(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "Plan created successfully")
}

// Update applies a partial document to an existing plan owned by the caller.
func (h *PlanHandler) Update(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from request context")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Plan id must be an integer")
	}

	var doc map[string]any
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid travel plan document")
	}

	plan, err := h.uc.UpdatePlan(c.Request().Context(), id, identity.ID, doc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan updated successfully")
}

// Delete removes a plan owned by the caller.
func (h *PlanHandler) Delete(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from request context")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Plan id must be an integer")
	}

	if err := h.uc.DeletePlan(c.Request().Context(), id, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"ok": true}, "Plan deleted successfully")
}

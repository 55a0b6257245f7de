package handler

import (
	"log/slog"
	"net/http"

	"tripflow/internal/delivery/http/response"
	"tripflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// MapHandler holds dependencies for the driving route endpoint.
type MapHandler struct {
	routes service.RouteService
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler, injected by Fx.
func NewMapHandler(routes service.RouteService, logger *slog.Logger) *MapHandler {
	return &MapHandler{
		routes: routes,
		logger: logger,
	}
}

type routeInput struct {
	Origin      []float64 `json:"origin"`
	Destination []float64 `json:"destination"`
}

// Route forwards a driving route request to the map provider. Coordinates
// are lon/lat pairs.
func (h *MapHandler) Route(c echo.Context) error {
	var input *routeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if input == nil || len(input.Origin) != 2 || len(input.Destination) != 2 {
		return response.BadRequest(c, "INVALID_INPUT", "origin and destination must be [lng,lat] pairs")
	}

	origin := orb.Point{input.Origin[0], input.Origin[1]}
	destination := orb.Point{input.Destination[0], input.Destination[1]}

	route, err := h.routes.Route(c.Request().Context(), origin, destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route retrieved successfully")
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"tripflow/internal/delivery/http/middleware"
	"tripflow/internal/delivery/http/response"
	"tripflow/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// callerIdentity extracts the verified identity placed on the context by
// the auth middleware.
func callerIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(middleware.IdentityKey).(*entity.Identity)

	return identity, ok
}

// Me returns the identity of the calling user as reported by the external
// identity provider. Registered only when the remote backend is active.
func Me(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from request context")
	}

	return response.Success(c, http.StatusOK, identity, "Identity retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

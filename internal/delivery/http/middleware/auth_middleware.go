package middleware

import (
	"net/http"
	"strings"

	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityKey is the context key under which the verified caller identity
// is stored for handlers.
const IdentityKey = "identity"

// AuthMiddleware provides middleware for bearer-token authentication. The
// injected verifier decides whether the credential is checked locally or
// forwarded to the external identity provider.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			// Upstream faults (e.g. the remote identity endpoint being
			// unreachable) are not credential verdicts; let the error
			// handler map them instead of reporting an invalid token.
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() != http.StatusUnauthorized {
				return errors.WithStack(err)
			}

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(IdentityKey, identity)

		return next(c)
	}
}

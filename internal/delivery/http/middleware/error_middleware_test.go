package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripflow/internal/delivery/http/response"
	domainerrors "tripflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/travel/plans", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrPlanNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "boom", body.Error.Details)
}

func TestErrorMiddleware_StorageError(t *testing.T) {
	err := domainerrors.NewUpstreamStorageError(http.StatusServiceUnavailable, "overloaded")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORAGE_ERROR", body.Error.Code)
}

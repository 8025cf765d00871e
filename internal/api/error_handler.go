package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mernapp/mern-api/internal/api/handler"
	"github.com/mernapp/mern-api/internal/api/metrics"
	"github.com/mernapp/mern-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and client messages.
//   - Logs 5xx errors internally with the request context.
//   - Renders the response envelope with success=false. The raw error text is
//     included only when exposeDetail is set (development).
func NewHTTPErrorHandler(log zerolog.Logger, exposeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, kind := resolveError(err)
		metrics.APIErrorsTotal.WithLabelValues(kind).Inc()

		resp := handler.Envelope{Success: false, Message: msg}
		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
			if exposeDetail {
				resp.Error = rootCause(err).Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error) (code int, msg, kind string) {
	// Known domain errors → deterministic HTTP codes.
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error(), "validation"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists", "duplicate_email"
	case errors.Is(err, domain.ErrAuthorNotFound):
		return http.StatusBadRequest, "Author not found", "author_not_found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", "not_found"
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid user id", "invalid_id"
	case errors.Is(err, domain.ErrSeedInProgress):
		return http.StatusConflict, "Seed already in progress", "seed_conflict"
	}

	// Echo's own errors (router misses, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, "Route not found", "route_not_found"
		}
		if he.Code >= http.StatusInternalServerError {
			return he.Code, "Internal server error", "internal"
		}
		return he.Code, fmt.Sprintf("%v", he.Message), "bad_request"
	}

	// Unexpected failure from a handler operation.
	var op *handler.OpError
	if errors.As(err, &op) {
		return http.StatusInternalServerError, op.Message, "internal"
	}
	return http.StatusInternalServerError, "Internal server error", "internal"
}

// rootCause strips the operation tag so the exposed detail is the store error.
func rootCause(err error) error {
	var op *handler.OpError
	if errors.As(err, &op) && op.Err != nil {
		return op.Err
	}
	return err
}

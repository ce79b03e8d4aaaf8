package http

import (
	"context"
	"errors"
	"net/http"

	"calendar-assistant/internal/event"
	pkgErrors "calendar-assistant/pkg/errors"
)

// statusClientClosedRequest is reported when the caller went away mid-request.
const statusClientClosedRequest = 499

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	switch {
	case errors.Is(err, event.ErrEmptyInput),
		errors.Is(err, event.ErrInvalidMode),
		errors.Is(err, event.ErrInvalidMonth):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, event.MessageNotConfigured)
	case errors.Is(err, event.ErrScreenshotDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, event.ErrMalformedResponse):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, event.MessageMalformedResponse)
	case errors.Is(err, event.ErrUpstreamFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, event.MessageUpstreamFailed)
	case errors.Is(err, context.Canceled):
		return pkgErrors.NewHTTPError(statusClientClosedRequest, event.MessageCancelled)
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package event

import (
	"context"
	"errors"
)

var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrInvalidMode        = errors.New("mode must be TRANSCRIPT or TASK")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrNotConfigured      = errors.New("no language model is configured")
	ErrMalformedResponse  = errors.New("model response is not a valid event list")
	ErrUpstreamFailed     = errors.New("language model request failed")
	ErrEventNotFound      = errors.New("event not found")
	ErrScreenshotDisabled = errors.New("screenshot capture is disabled")
)

// User-facing messages stored in the processing state.
const (
	MessageNotConfigured     = "Failed to process transcript. Please check your API Key and try again."
	MessageMalformedResponse = "The assistant returned something that is not a list of events. Please try again."
	MessageUpstreamFailed    = "The assistant could not be reached. Please try again."
	MessageCancelled         = "The request was cancelled before the events arrived."
)

// MessageFor returns the processing-state message of an extraction error.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return MessageNotConfigured
	case errors.Is(err, ErrMalformedResponse):
		return MessageMalformedResponse
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MessageCancelled
	default:
		return MessageUpstreamFailed
	}
}

package repository

import (
	"time"

	"calendar-assistant/internal/model"
)

// AppendEventsOptions holds a batch to add to a session.
type AppendEventsOptions struct {
	SessionID string
	Events    []model.CalendarEvent
}

// ListEventsOptions filters a session's events. A zero Month lists everything.
type ListEventsOptions struct {
	SessionID string
	Year      int
	Month     time.Month
}

// GetEventOptions selects one event of a session.
type GetEventOptions struct {
	SessionID string
	ID        string
}

// FinishProcessingOptions records the outcome of one extraction.
type FinishProcessingOptions struct {
	SessionID string
	Status    model.ProcessingStatus
	Message   string
}

package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the per-session working set of extracted events.
type Repository interface {
	EventRepository
	StateRepository
}

// EventRepository holds the append-only event list of each session.
type EventRepository interface {
	// AppendEvents adds a batch to the end of the session's list and returns
	// the stored events. Missing or colliding ids are replaced.
	AppendEvents(ctx context.Context, opt AppendEventsOptions) ([]model.CalendarEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.CalendarEvent, error)
	// GetEvent returns the zero event (ID == "") when nothing matches.
	GetEvent(ctx context.Context, opt GetEventOptions) (model.CalendarEvent, error)
}

// StateRepository tracks in-flight extractions per session.
type StateRepository interface {
	BeginProcessing(ctx context.Context, sessionID string) error
	FinishProcessing(ctx context.Context, opt FinishProcessingOptions) error
	GetState(ctx context.Context, sessionID string) (model.ProcessingState, error)
}

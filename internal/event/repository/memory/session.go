package memory

import (
	"sync"

	"calendar-assistant/internal/model"
)

type session struct {
	mu       sync.Mutex
	events   []model.CalendarEvent
	ids      map[string]struct{}
	inFlight int
	outcome  model.ProcessingState
}

func newSession() *session {
	return &session{
		ids:     make(map[string]struct{}),
		outcome: model.ProcessingState{Status: model.StatusIdle},
	}
}

// state is PROCESSING while any extraction is outstanding, otherwise the
// outcome of the last one to finish.
func (s *session) state() model.ProcessingState {
	if s.inFlight > 0 {
		return model.ProcessingState{Status: model.StatusProcessing}
	}
	return s.outcome
}

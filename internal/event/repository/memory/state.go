package memory

import (
	"context"

	repo "calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// BeginProcessing marks one more extraction in flight for the session. The
// session survives eviction until the matching FinishProcessing.
func (r *implRepository) BeginProcessing(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return repo.ErrMissingSession
	}

	s, _ := r.session(sessionID, true)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight++
	if s.inFlight == 1 {
		r.setPinned(sessionID, s, true)
	}
	return nil
}

// FinishProcessing records the outcome of one extraction.
func (r *implRepository) FinishProcessing(ctx context.Context, opt repo.FinishProcessingOptions) error {
	if opt.SessionID == "" {
		return repo.ErrMissingSession
	}
	if opt.Status != model.StatusSuccess && opt.Status != model.StatusError {
		return repo.ErrInvalidOutcome
	}

	s, _ := r.session(opt.SessionID, true)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight == 0 {
		r.l.Warnf(ctx, "%s: %v", r.dsn("FinishProcessing"), repo.ErrNotProcessing)
		return repo.ErrNotProcessing
	}
	s.inFlight--
	s.outcome = model.ProcessingState{Status: opt.Status, Message: opt.Message}
	if s.inFlight == 0 {
		r.setPinned(opt.SessionID, s, false)
	}
	return nil
}

// GetState returns IDLE for unknown sessions.
func (r *implRepository) GetState(ctx context.Context, sessionID string) (model.ProcessingState, error) {
	if sessionID == "" {
		return model.ProcessingState{}, repo.ErrMissingSession
	}

	s, ok := r.session(sessionID, false)
	if !ok {
		return model.ProcessingState{Status: model.StatusIdle}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(), nil
}

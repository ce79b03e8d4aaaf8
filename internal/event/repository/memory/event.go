package memory

import (
	"context"

	"calendar-assistant/internal/calendar"
	repo "calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// AppendEvents concatenates the batch to the session's list.
func (r *implRepository) AppendEvents(ctx context.Context, opt repo.AppendEventsOptions) ([]model.CalendarEvent, error) {
	if opt.SessionID == "" {
		return nil, repo.ErrMissingSession
	}

	s, _ := r.session(opt.SessionID, true)
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CalendarEvent, 0, len(opt.Events))
	for _, e := range opt.Events {
		if _, taken := s.ids[e.ID]; e.ID == "" || taken {
			old := e.ID
			e.ID = r.newUniqueID(s)
			if old != "" {
				r.l.Debugf(ctx, "%s: id %q already used, assigned %s", r.dsn("AppendEvents"), old, e.ID)
			}
		}
		s.ids[e.ID] = struct{}{}
		stored = append(stored, e)
	}
	s.events = append(s.events, stored...)

	return stored, nil
}

func (r *implRepository) newUniqueID(s *session) string {
	for {
		id := r.newID()
		if _, taken := s.ids[id]; !taken {
			return id
		}
	}
}

// ListEvents returns a copy of the session's events in insertion order.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.CalendarEvent, error) {
	if opt.SessionID == "" {
		return nil, repo.ErrMissingSession
	}

	s, ok := r.session(opt.SessionID, false)
	if !ok {
		return []model.CalendarEvent{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if opt.Month != 0 {
		return calendar.EventsInMonth(s.events, opt.Year, opt.Month), nil
	}
	out := make([]model.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}

// GetEvent returns the zero event when the session or id is unknown.
func (r *implRepository) GetEvent(ctx context.Context, opt repo.GetEventOptions) (model.CalendarEvent, error) {
	if opt.SessionID == "" {
		return model.CalendarEvent{}, repo.ErrMissingSession
	}

	s, ok := r.session(opt.SessionID, false)
	if !ok {
		return model.CalendarEvent{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == opt.ID {
			return e, nil
		}
	}
	return model.CalendarEvent{}, nil
}

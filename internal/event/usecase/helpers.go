package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// parseEvents validates the model payload. Missing title or startDate fails
// the whole batch; bad optional fields are dropped with a warning.
func (uc *implUseCase) parseEvents(ctx context.Context, text string) ([]model.CalendarEvent, error) {
	raws, err := decodeEventArray(text)
	if err != nil {
		return nil, err
	}

	events := make([]model.CalendarEvent, 0, len(raws))
	for i, raw := range raws {
		e, err := uc.toEvent(ctx, i, raw)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (uc *implUseCase) toEvent(ctx context.Context, i int, raw rawEvent) (model.CalendarEvent, error) {
	title := raw.Title.trimmed()
	if title == "" {
		return model.CalendarEvent{}, fmt.Errorf("event %d: title is required", i)
	}
	start, err := datemath.ParseDate(raw.StartDate.trimmed())
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("event %d (%q): startDate: %w", i, title, err)
	}

	e := model.CalendarEvent{
		ID:           raw.ID.trimmed(),
		Title:        title,
		StartDate:    start,
		Type:         model.ParseEventType(raw.Type.trimmed()),
		Color:        optional(raw.Color),
		Location:     optional(raw.Location),
		Description:  optional(raw.Description),
		IsRecurring:  bool(raw.IsRecurring),
		RecurrenceID: optional(raw.RecurrenceID),
	}

	if v := raw.EndDate.trimmed(); v != "" {
		end, err := datemath.ParseDate(v)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Extract: event %d (%q): dropping endDate: %v", i, title, err)
		} else {
			e.EndDate = &end
		}
	}

	if v := raw.Time.trimmed(); v != "" {
		clock, err := datemath.ParseClock(v)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Extract: event %d (%q): dropping time: %v", i, title, err)
		} else {
			e.Time = &clock
		}
	}

	if raw.Duration.Valid && raw.Duration.Value > 0 {
		d := raw.Duration.Value
		e.Duration = &d
	}

	if guests, ok := decodeGuests(raw.Guests); ok {
		e.Guests = guests
	} else {
		uc.l.Warnf(ctx, "uc.Extract: event %d (%q): dropping malformed guests", i, title)
	}

	if notes, ok := decodeNotifications(raw.Notifications); ok {
		for _, n := range notes {
			if !n.TimeBefore.Valid || n.TimeBefore.Value < 0 {
				uc.l.Warnf(ctx, "uc.Extract: event %d (%q): dropping notification without timeBefore", i, title)
				continue
			}
			e.Notifications = append(e.Notifications, model.Notification{
				Kind:          model.ParseNotificationKind(n.Type.trimmed()),
				MinutesBefore: n.TimeBefore.Value,
			})
		}
	} else {
		uc.l.Warnf(ctx, "uc.Extract: event %d (%q): dropping malformed notifications", i, title)
	}

	return e, nil
}

// optional returns nil for blank values.
func optional(s flexString) *string {
	v := s.trimmed()
	if v == "" {
		return nil
	}
	return &v
}

// resolveMonth fills a zero year or month from the current one and checks the range.
func resolveMonth(input event.MonthInput, curYear int, curMonth time.Month) (int, time.Month, error) {
	year, month := input.Year, input.Month
	if year == 0 {
		year = curYear
	}
	if month == 0 {
		month = curMonth
	}
	if err := event.ValidateMonth(int(month)); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

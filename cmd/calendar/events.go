package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// readEvents loads a JSON array of events. "-" reads stdin; "" means none.
func readEvents(path string, stdin io.Reader) ([]model.CalendarEvent, error) {
	if path == "" {
		return nil, nil
	}
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var events []model.CalendarEvent
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	for i := range events {
		if err := normalizeEvent(i, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// normalizeEvent rejects events without a title or start date and rewrites
// the time as 24-hour "HH:MM" so cells sort by it.
func normalizeEvent(i int, e *model.CalendarEvent) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return fmt.Errorf("event %d: title is required", i)
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("event %d (%q): startDate is required", i, e.Title)
	}
	if e.Time == nil {
		return nil
	}
	if strings.TrimSpace(*e.Time) == "" {
		e.Time = nil
		return nil
	}
	clock, err := datemath.ParseClock(*e.Time)
	if err != nil {
		return fmt.Errorf("event %d (%q): time: %w", i, e.Title, err)
	}
	e.Time = &clock
	return nil
}

// resolveMonth fills a missing year or month from today.
func resolveMonth(year, month int, today datemath.Date) (int, time.Month, error) {
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		return year, today.Month, nil
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	return year, time.Month(month), nil
}

func parseToday(s string, fallback datemath.Date) (datemath.Date, error) {
	if s == "" {
		return fallback, nil
	}
	return datemath.ParseDate(s)
}

package calendar

import (
	"sort"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// EventsForDay returns the events placed on day, in display order.
//
// An event is placed on its start date and, when it has an end date, on every
// date of the inclusive range [start, end]. Events without a time come first;
// timed events follow in lexicographic "HH:MM" order. Ties keep input order.
func EventsForDay(events []model.CalendarEvent, day datemath.Date) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, e := range events {
		if e.OccursOn(day) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessByTime(out[i], out[j])
	})
	return out
}

// lessByTime is a strict weak ordering: untimed < timed, timed by string.
func lessByTime(a, b model.CalendarEvent) bool {
	switch {
	case !a.HasTime():
		return b.HasTime()
	case !b.HasTime():
		return false
	default:
		return *a.Time < *b.Time
	}
}

// EventsInMonth returns the events placed on at least one day of the month,
// keeping input order.
func EventsInMonth(events []model.CalendarEvent, year int, month time.Month) []model.CalendarEvent {
	first := datemath.NewDate(year, month, 1)
	last := datemath.NewDate(year, month, datemath.DaysInMonth(year, month))

	var out []model.CalendarEvent
	for _, e := range events {
		if e.StartDate.Compare(last) <= 0 && e.LastDate().Compare(first) >= 0 {
			out = append(out, e)
		}
	}
	return out
}

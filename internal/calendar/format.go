package calendar

import (
	"fmt"
	"time"

	"calendar-assistant/internal/model"
)

const minutesPerDay = 1440

// FormatReminder renders a notification lead time, in days from one day up.
func FormatReminder(n model.Notification) string {
	if n.MinutesBefore >= minutesPerDay {
		return fmt.Sprintf("%g day(s) before", float64(n.MinutesBefore)/minutesPerDay)
	}
	return fmt.Sprintf("%d mins before", n.MinutesBefore)
}

// FormatTime returns the event time or "All Day".
func FormatTime(e model.CalendarEvent) string {
	if e.HasTime() {
		return *e.Time
	}
	return "All Day"
}

// FormatDuration returns the duration in minutes or a placeholder.
func FormatDuration(e model.CalendarEvent) string {
	if e.Duration != nil && *e.Duration > 0 {
		return fmt.Sprintf("%d minutes", *e.Duration)
	}
	return "No duration set"
}

// FormatGuestCount renders "1 guest" or "n guests", empty without guests.
func FormatGuestCount(e model.CalendarEvent) string {
	switch len(e.Guests) {
	case 0:
		return ""
	case 1:
		return "1 guest"
	default:
		return fmt.Sprintf("%d guests", len(e.Guests))
	}
}

// FormatLongDate renders the start date as "Monday, July 28, 2025".
func FormatLongDate(e model.CalendarEvent) string {
	return e.StartDate.Time(time.UTC).Format("Monday, January 2, 2006")
}

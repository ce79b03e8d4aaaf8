package model

import (
	"strings"

	"calendar-assistant/pkg/datemath"
)

// EventType is the category used for default colour coding.
type EventType string

const (
	EventTypeMeeting     EventType = "MEETING"
	EventTypeHoliday     EventType = "HOLIDAY"
	EventTypeAppointment EventType = "APPOINTMENT"
	EventTypeParty       EventType = "PARTY"
	EventTypeReminder    EventType = "REMINDER"
	EventTypeOther       EventType = "OTHER"
)

// EventTypes lists the closed set of categories in display order.
var EventTypes = []EventType{
	EventTypeMeeting,
	EventTypeHoliday,
	EventTypeAppointment,
	EventTypeParty,
	EventTypeReminder,
	EventTypeOther,
}

// ParseEventType maps a free-form category to the closed set. Unknown values become OTHER.
func ParseEventType(s string) EventType {
	t := EventType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range EventTypes {
		if t == known {
			return t
		}
	}
	return EventTypeOther
}

// NotificationKind is the delivery channel of a reminder.
type NotificationKind string

const (
	NotificationEmail NotificationKind = "EMAIL"
	NotificationPopup NotificationKind = "POPUP"
)

// ParseNotificationKind maps a free-form channel name. Anything but EMAIL is a popup.
func ParseNotificationKind(s string) NotificationKind {
	if strings.EqualFold(strings.TrimSpace(s), string(NotificationEmail)) {
		return NotificationEmail
	}
	return NotificationPopup
}

// Notification is a reminder fired MinutesBefore the event starts.
type Notification struct {
	Kind          NotificationKind `json:"type"`
	MinutesBefore int              `json:"timeBefore"`
}

// CalendarEvent is one concrete occurrence shown on the calendar.
// Optional fields are nil when the producer did not supply them.
type CalendarEvent struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	StartDate     datemath.Date  `json:"startDate"`
	EndDate       *datemath.Date `json:"endDate,omitempty"`
	Time          *string        `json:"time,omitempty"` // "HH:MM", 24-hour
	Duration      *int           `json:"duration,omitempty"`
	Type          EventType      `json:"type"`
	Color         *string        `json:"color,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Guests        []string       `json:"guests,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	IsRecurring   bool           `json:"isRecurring,omitempty"`
	RecurrenceID  *string        `json:"recurrenceId,omitempty"`
}

// HasTime reports whether the event is scheduled at a wall-clock time.
func (e CalendarEvent) HasTime() bool {
	return e.Time != nil && *e.Time != ""
}

// LastDate returns the inclusive last day of the event. An end before the start
// collapses the range to the start date.
func (e CalendarEvent) LastDate() datemath.Date {
	if e.EndDate == nil || e.EndDate.Before(e.StartDate) {
		return e.StartDate
	}
	return *e.EndDate
}

// OccursOn reports whether the event is placed on d.
func (e CalendarEvent) OccursOn(d datemath.Date) bool {
	if d.Equal(e.StartDate) {
		return true
	}
	return e.EndDate != nil && d.Between(e.StartDate, *e.EndDate)
}
